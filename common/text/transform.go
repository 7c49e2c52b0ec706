package text

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Line trims surrounding white space from s and terminates it with a single
// newline. An empty or blank s stays empty.
func Line(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return s + "\n"
}

// RemoveAccents strips combining marks from b, e.g. "é" becomes "e".
// The result may share storage with b.
func RemoveAccents(b []byte) []byte {
	t := stripMarks.Get().(transform.Transformer)
	defer stripMarks.Put(t)
	t.Reset()

	out, _, err := transform.Bytes(t, b)
	if err != nil {
		return b
	}
	return out
}

// RemoveAccentsString is RemoveAccents for strings.
func RemoveAccentsString(s string) string {
	return string(RemoveAccents([]byte(s)))
}

// Decompose, drop the nonspacing marks, recompose.
var stripMarks = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}
