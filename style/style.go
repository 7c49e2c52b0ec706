// Package style produces the stylesheet entry of the styling extension.
package style

import (
	"strings"

	"github.com/sunwei/siteconf/siteconfig"
)

// Layers of the utility-first stylesheet, in cascade order.
const (
	LayerBase       = "base"
	LayerComponents = "components"
	LayerUtilities  = "utilities"
)

const (
	// DefaultFilename is the entry's name relative to the publish root.
	DefaultFilename = "styles/base.css"

	// MediaType of the entry.
	MediaType = "text/css"
)

// Stylesheet is the entry stylesheet handed to the styling toolchain.
type Stylesheet struct {
	Layers []string

	// Injected reports whether the base layer is part of the entry.
	Injected bool
}

// Entry returns the stylesheet entry for opts. The base layer is left out
// when the project provides its own base styles.
func Entry(opts siteconfig.StyleOptions) Stylesheet {
	s := Stylesheet{Injected: opts.InjectBaseStyles}
	if opts.InjectBaseStyles {
		s.Layers = append(s.Layers, LayerBase)
	}
	s.Layers = append(s.Layers, LayerComponents, LayerUtilities)
	return s
}

// String returns the CSS source of s, one directive per line.
func (s Stylesheet) String() string {
	var sb strings.Builder
	for _, layer := range s.Layers {
		sb.WriteString("@tailwind ")
		sb.WriteString(layer)
		sb.WriteString(";\n")
	}
	return sb.String()
}

// Bytes returns the CSS source of s.
func (s Stylesheet) Bytes() []byte {
	return []byte(s.String())
}
