package cells

import (
	"fmt"
	"strings"
)

// Cell is a read-only view of one slot.
type Cell struct {
	Index int
	Char  string
	// Valid is derived on read: the slot is empty or its Char passes the policy.
	Valid bool
}

// Filled reports whether the cell holds a character.
func (c Cell) Filled() bool { return c.Char != "" }

// Cells is the authoritative per-position character state of a code input.
type Cells struct {
	chars   []string
	policy  Policy
	version uint64
}

// New creates n empty cells guarded by policy.
func New(n int, policy Policy) (*Cells, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if policy.IsZero() {
		return nil, fmt.Errorf("%w: no policy configured", ErrInvalidPolicy)
	}
	return &Cells{
		chars:  make([]string, n),
		policy: policy,
	}, nil
}

func (c *Cells) Len() int { return len(c.chars) }

func (c *Cells) Policy() Policy { return c.policy }

// Version increases on every effective mutation.
func (c *Cells) Version() uint64 { return c.version }

// SetCharacter replaces the character at index and returns the new
// consolidated value. An empty ch clears the cell.
func (c *Cells) SetCharacter(index int, ch string) (string, error) {
	if index < 0 {
		return c.Value(), NewInputError(ReasonOutOfRange, index, ch)
	}
	if index >= len(c.chars) {
		return c.Value(), NewInputError(ReasonOverflow, index, ch)
	}
	if ch != "" && !c.policy.Allows(ch) {
		return c.Value(), NewInputError(ReasonInvalidCharacter, index, ch)
	}
	if c.chars[index] != ch {
		c.chars[index] = ch
		c.version++
	}
	return c.Value(), nil
}

// Clear empties the cell at index.
func (c *Cells) Clear(index int) (string, error) {
	return c.SetCharacter(index, "")
}

// Reset empties every cell.
func (c *Cells) Reset() {
	changed := false
	for i := range c.chars {
		if c.chars[i] != "" {
			c.chars[i] = ""
			changed = true
		}
	}
	if changed {
		c.version++
	}
}

// Snapshot returns a copy of all N characters; empty cells are "".
func (c *Cells) Snapshot() []string {
	return append([]string(nil), c.chars...)
}

// Cell returns the slot at index. ok is false for an index outside 0..N-1.
func (c *Cells) Cell(index int) (Cell, bool) {
	if index < 0 || index >= len(c.chars) {
		return Cell{}, false
	}
	ch := c.chars[index]
	return Cell{
		Index: index,
		Char:  ch,
		Valid: ch == "" || c.policy.Allows(ch),
	}, true
}

// Value concatenates the non-empty cells in index order.
func (c *Cells) Value() string {
	var sb strings.Builder
	for _, ch := range c.chars {
		sb.WriteString(ch)
	}
	return sb.String()
}

// Filled reports whether every cell holds a character.
func (c *Cells) Filled() bool {
	return c.FirstEmpty() == len(c.chars)
}

// FirstEmpty returns the lowest empty index, or N when all cells are filled.
func (c *Cells) FirstEmpty() int {
	for i, ch := range c.chars {
		if ch == "" {
			return i
		}
	}
	return len(c.chars)
}

// Filter returns the clusters of text the policy accepts.
func (c *Cells) Filter(text string) []string {
	return c.policy.Filter(text)
}
