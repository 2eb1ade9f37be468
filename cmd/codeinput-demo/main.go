// codeinput-demo runs a single segmented code input in the terminal and
// prints the submitted code on exit.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	codeinput "github.com/iw2rmb/codeinput"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, fs, err := parseOptions(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(fs)
			return nil
		}
		return err
	}
	if opts.showHelp {
		printHelp(fs)
		return nil
	}
	if opts.showVersion {
		fmt.Println(codeinput.VersionTag())
		return nil
	}

	logger, closeLog, err := newLogger(opts.logFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	m, err := newModel(opts, logger)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.submitted != "" {
		logger.Info("submitted", "value", fm.submitted)
		fmt.Println(fm.submitted)
	}
	return nil
}

func printHelp(fs *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `codeinput-demo: enter a fixed-length code cell by cell.

Usage:
  codeinput-demo [flags]

Flags:
%s`, fs.FlagUsages())
}
