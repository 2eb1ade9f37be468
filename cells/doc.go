// Package cells implements the pure, grapheme-accurate cell array behind a
// segmented code input.
//
// A Cells value holds exactly N single-grapheme slots. Every write is checked
// against a Policy, so a cell never holds a character the policy rejects.
// Indexes are 0-based.
package cells
