// Package highlight provides code highlighting.
package highlight

import (
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultConfig holds the default highlight configuration.
var DefaultConfig = Config{
	Style:     "github-dark",
	NoClasses: true,
	TabWidth:  4,
}

// Config holds the highlight configuration.
type Config struct {
	// The style used, e.g. "github-dark".
	Style string

	// Wrap long lines instead of letting them overflow.
	WrapLongLines bool

	// Use inline CSS styles instead of CSS classes.
	NoClasses bool

	// Enable line numbers.
	LineNos bool

	TabWidth int
}

// StyleExists reports whether name is a known chroma style. Unknown styles
// fall back to chroma's fallback style when highlighting.
func StyleExists(name string) bool {
	_, found := styles.Registry[name]
	return found
}
