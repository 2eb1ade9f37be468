package cells

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/iw2rmb/codeinput/internal/grapheme"
)

// Policy decides which single grapheme clusters a cell may hold.
type Policy struct {
	name  string
	allow func(g string) bool
}

// PolicyFunc builds a Policy from a predicate over one grapheme cluster.
func PolicyFunc(name string, allow func(g string) bool) Policy {
	return Policy{name: name, allow: allow}
}

// Digits accepts ASCII 0-9.
func Digits() Policy {
	return PolicyFunc("digits", func(g string) bool {
		return len(g) == 1 && g[0] >= '0' && g[0] <= '9'
	})
}

// Alphanumeric accepts Unicode letters and decimal digits.
func Alphanumeric() Policy {
	return PolicyFunc("alphanumeric", allRunes(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}))
}

// Alpha accepts Unicode letters.
func Alpha() Policy {
	return PolicyFunc("alpha", allRunes(unicode.IsLetter))
}

// Hex accepts 0-9, a-f and A-F.
func Hex() Policy {
	return PolicyFunc("hex", func(g string) bool {
		if len(g) != 1 {
			return false
		}
		c := g[0]
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	})
}

// Pattern compiles expr and matches it against the whole grapheme cluster.
func Pattern(expr string) (Policy, error) {
	if expr == "" {
		return Policy{}, fmt.Errorf("%w: empty pattern", ErrInvalidPolicy)
	}
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return Policy{}, fmt.Errorf("%w: %w", ErrInvalidPolicy, err)
	}
	return PolicyFunc("regex:"+expr, re.MatchString), nil
}

// ParsePolicy resolves a descriptor: digits, alphanumeric, alpha, hex or
// regex:<expr>. Matching of preset names is case-insensitive.
func ParsePolicy(descriptor string) (Policy, error) {
	d := strings.TrimSpace(descriptor)
	if expr, ok := strings.CutPrefix(d, "regex:"); ok {
		return Pattern(expr)
	}
	switch strings.ToLower(d) {
	case "digits", "numeric":
		return Digits(), nil
	case "alphanumeric", "alnum":
		return Alphanumeric(), nil
	case "alpha":
		return Alpha(), nil
	case "hex":
		return Hex(), nil
	default:
		return Policy{}, fmt.Errorf("%w: unknown descriptor %q", ErrInvalidPolicy, descriptor)
	}
}

// Name returns the descriptor-style name of the policy.
func (p Policy) Name() string { return p.name }

// IsZero reports whether p was never configured.
func (p Policy) IsZero() bool { return p.allow == nil }

// Allows reports whether g is a single grapheme cluster accepted by p.
func (p Policy) Allows(g string) bool {
	if p.allow == nil || !grapheme.IsSingle(g) {
		return false
	}
	return p.allow(g)
}

// Filter returns the clusters of text that p accepts, in order.
func (p Policy) Filter(text string) []string {
	var out []string
	for _, g := range grapheme.Split(text) {
		if p.Allows(g) {
			out = append(out, g)
		}
	}
	return out
}

func allRunes(fn func(r rune) bool) func(g string) bool {
	return func(g string) bool {
		for _, r := range g {
			if !fn(r) {
				return false
			}
		}
		return true
	}
}
