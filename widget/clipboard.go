package widget

// Clipboard provides paste integration for hosts without bracketed paste.
//
// Read errors are ignored; the cells stay untouched.
type Clipboard interface {
	ReadText() (string, error)
}
