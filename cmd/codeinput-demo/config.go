package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the flags that shape the input. Flags win over the file.
type fileConfig struct {
	Length      int    `yaml:"length"`
	Policy      string `yaml:"policy"`
	Value       string `yaml:"value"`
	Mask        string `yaml:"mask"`
	Placeholder string `yaml:"placeholder"`
	Gap         string `yaml:"gap"`
}

type options struct {
	fileConfig

	configPath  string
	logFile     string
	showVersion bool
	showHelp    bool
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Length:      6,
		Policy:      "digits",
		Placeholder: "·",
		Gap:         " ",
	}
}

func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("codeinput-demo", pflag.ContinueOnError)
	fs.IntVarP(&opts.Length, "length", "n", opts.Length, "number of cells")
	fs.StringVarP(&opts.Policy, "policy", "p", opts.Policy, "allowed characters: digits, alphanumeric, alpha, hex or regex:<expr>")
	fs.StringVar(&opts.Value, "value", opts.Value, "initial value")
	fs.StringVar(&opts.Mask, "mask", opts.Mask, "render filled cells with this character (PIN entry)")
	fs.StringVar(&opts.Placeholder, "placeholder", opts.Placeholder, "character shown in empty cells")
	fs.StringVar(&opts.Gap, "gap", opts.Gap, "text placed between cells")
	fs.StringVarP(&opts.configPath, "config", "c", "", "YAML file with the same keys as the flags")
	fs.StringVar(&opts.logFile, "log-file", "", "append event log records to this file")
	fs.BoolVar(&opts.showVersion, "version", false, "print the version and exit")
	fs.BoolVarP(&opts.showHelp, "help", "h", false, "show help")
	return fs
}

// parseOptions applies defaults, then the config file, then explicit flags.
func parseOptions(args []string) (options, *pflag.FlagSet, error) {
	opts := options{fileConfig: defaultFileConfig()}
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return opts, fs, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if opts.configPath == "" {
		return opts, fs, nil
	}

	fromFile, err := loadConfigFile(opts.configPath, defaultFileConfig())
	if err != nil {
		return opts, fs, err
	}
	merged := fromFile
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "length":
			merged.Length = opts.Length
		case "policy":
			merged.Policy = opts.Policy
		case "value":
			merged.Value = opts.Value
		case "mask":
			merged.Mask = opts.Mask
		case "placeholder":
			merged.Placeholder = opts.Placeholder
		case "gap":
			merged.Gap = opts.Gap
		}
	})
	opts.fileConfig = merged
	return opts, fs, nil
}

// loadConfigFile reads path over base, so keys missing from the file keep
// their base value.
func loadConfigFile(path string, base fileConfig) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Length <= 0 {
		return base, errors.New("config: length must be positive")
	}
	return cfg, nil
}
