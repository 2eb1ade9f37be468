package grapheme

import "github.com/rivo/uniseg"

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// IsSingle reports whether text is exactly one grapheme cluster.
func IsSingle(text string) bool {
	if text == "" {
		return false
	}
	_, rest, _, _ := uniseg.FirstGraphemeClusterInString(text, -1)
	return rest == ""
}

// Width returns the terminal cell width of a cluster, never less than zero.
func Width(cluster string) int {
	w := uniseg.StringWidth(cluster)
	if w < 0 {
		return 0
	}
	return w
}
