// Package goldmark_config holds Goldmark related configuration.
package goldmark_config

const (
	AutoHeadingIDTypeGitHub      = "github"
	AutoHeadingIDTypeGitHubAscii = "github-ascii"
)

// Default holds the default Goldmark configuration.
var Default = Config{
	Extensions: Extensions{
		Typographer:   false,
		Footnote:      true,
		Table:         true,
		Strikethrough: true,
		Linkify:       true,
		TaskList:      true,
	},
	Renderer: Renderer{
		Unsafe: true,
	},
	Parser: Parser{
		AutoHeadingID:     true,
		AutoHeadingIDType: AutoHeadingIDTypeGitHub,
	},
}

// Config configures Goldmark.
type Config struct {
	Renderer   Renderer
	Parser     Parser
	Extensions Extensions
}

type Renderer struct {
	// Allow raw HTML etc.
	Unsafe bool
}

type Parser struct {
	// Enables custom heading ids and
	// auto generated heading ids.
	AutoHeadingID bool

	// The strategy to use when generating heading IDs.
	// Available options are "github", "github-ascii".
	// Default is "github", which will create GitHub-compatible anchor names.
	AutoHeadingIDType string
}

type Extensions struct {
	// Smart quotes, dashes and ellipses.
	Typographer bool
	Footnote    bool

	// GitHub flavored markdown
	Table         bool
	Strikethrough bool
	Linkify       bool
	TaskList      bool
}

// SetGitHubFlavored toggles the GitHub flavored markdown extensions.
func (e *Extensions) SetGitHubFlavored(enable bool) {
	e.Table = enable
	e.Strikethrough = enable
	e.Linkify = enable
	e.TaskList = enable
}

// GitHubFlavored reports whether all the GitHub flavored markdown
// extensions are enabled.
func (e Extensions) GitHubFlavored() bool {
	return e.Table && e.Strikethrough && e.Linkify && e.TaskList
}
