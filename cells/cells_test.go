package cells

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func mustNew(t *testing.T, n int, p Policy) *Cells {
	t.Helper()
	c, err := New(n, p)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}
	return c
}

func TestNew_RejectsMisconfiguration(t *testing.T) {
	if _, err := New(0, Digits()); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("New(0): got %v, want %v", err, ErrInvalidLength)
	}
	if _, err := New(-3, Digits()); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("New(-3): got %v, want %v", err, ErrInvalidLength)
	}
	if _, err := New(4, Policy{}); !errors.Is(err, ErrInvalidPolicy) {
		t.Fatalf("New with zero policy: got %v, want %v", err, ErrInvalidPolicy)
	}
}

func TestSetCharacter_WritesAndReturnsValue(t *testing.T) {
	c := mustNew(t, 4, Digits())

	v, err := c.SetCharacter(1, "7")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if v != "7" {
		t.Fatalf("value after set: got %q, want %q", v, "7")
	}
	if got, want := c.Snapshot(), []string{"", "7", "", ""}; !reflect.DeepEqual(got, want) {
		t.Fatalf("snapshot: got %q, want %q", got, want)
	}
	if got := c.Version(); got != 1 {
		t.Fatalf("version: got %d, want %d", got, 1)
	}

	// Same character again is not a mutation.
	if _, err := c.SetCharacter(1, "7"); err != nil {
		t.Fatalf("set same: %v", err)
	}
	if got := c.Version(); got != 1 {
		t.Fatalf("version after no-op: got %d, want %d", got, 1)
	}
}

func TestSetCharacter_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		index int
		ch    string
		want  error
	}{
		{name: "letter under digits", index: 0, ch: "a", want: ErrInvalidCharacter},
		{name: "two characters", index: 0, ch: "12", want: ErrInvalidCharacter},
		{name: "past last cell", index: 3, ch: "1", want: ErrOverflow},
		{name: "negative index", index: -1, ch: "1", want: ErrOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := mustNew(t, 3, Digits())
			_, _ = c.SetCharacter(0, "5")
			before := c.Snapshot()

			_, err := c.SetCharacter(tc.index, tc.ch)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err: got %v, want %v", err, tc.want)
			}
			var ie *InputError
			if !errors.As(err, &ie) || ie.Index != tc.index || ie.Input != tc.ch {
				t.Fatalf("input error: got %#v", err)
			}
			if got := c.Snapshot(); !reflect.DeepEqual(got, before) {
				t.Fatalf("snapshot changed: got %q, want %q", got, before)
			}
		})
	}
}

func TestClear_EmptiesCell(t *testing.T) {
	c := mustNew(t, 3, Digits())
	_, _ = c.SetCharacter(0, "1")
	_, _ = c.SetCharacter(1, "2")

	v, err := c.Clear(0)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if v != "2" {
		t.Fatalf("value after clear: got %q, want %q", v, "2")
	}
	if got := c.FirstEmpty(); got != 0 {
		t.Fatalf("first empty: got %d, want %d", got, 0)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	c := mustNew(t, 2, Digits())
	s := c.Snapshot()
	s[0] = "x"
	if got := c.Snapshot()[0]; got != "" {
		t.Fatalf("snapshot aliasing: got %q, want empty", got)
	}
}

func TestFilledAndFirstEmpty(t *testing.T) {
	c := mustNew(t, 2, Digits())
	if c.Filled() {
		t.Fatalf("empty cells reported filled")
	}
	_, _ = c.SetCharacter(0, "1")
	_, _ = c.SetCharacter(1, "2")
	if !c.Filled() {
		t.Fatalf("full cells reported not filled")
	}
	if got := c.FirstEmpty(); got != 2 {
		t.Fatalf("first empty when full: got %d, want %d", got, 2)
	}

	c.Reset()
	if got := c.Value(); got != "" {
		t.Fatalf("value after reset: got %q, want empty", got)
	}
}

func TestCell_DerivesValidity(t *testing.T) {
	c := mustNew(t, 2, Digits())
	_, _ = c.SetCharacter(0, "9")

	cell, ok := c.Cell(0)
	if !ok || cell.Char != "9" || !cell.Valid || !cell.Filled() {
		t.Fatalf("cell 0: got %+v ok=%v", cell, ok)
	}
	cell, ok = c.Cell(1)
	if !ok || cell.Filled() || !cell.Valid {
		t.Fatalf("cell 1: got %+v ok=%v", cell, ok)
	}
	if _, ok := c.Cell(2); ok {
		t.Fatalf("cell 2 should not exist")
	}
}

func TestSnapshotLength_HoldsUnderRandomWrites(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []string{"", "0", "1", "9", "a", "Z", "12", "-"}

	for n := 1; n <= 8; n++ {
		c := mustNew(t, n, Digits())
		for i := 0; i < 200; i++ {
			_, _ = c.SetCharacter(rng.Intn(n+2)-1, alphabet[rng.Intn(len(alphabet))])
			snap := c.Snapshot()
			if len(snap) != n {
				t.Fatalf("n=%d step=%d: snapshot len=%d", n, i, len(snap))
			}
			for j, ch := range snap {
				if ch != "" && !c.Policy().Allows(ch) {
					t.Fatalf("n=%d step=%d: cell %d holds %q", n, i, j, ch)
				}
			}
		}
	}
}
