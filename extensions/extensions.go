// Package extensions holds the registry of build-time extensions a site
// declaration may activate, and the typed options each of them accepts.
package extensions

import (
	"sort"
	"strings"

	"github.com/sunwei/siteconf/common/maps"
)

// Kind tells where in the build an extension does its work.
type Kind int

const (
	// KindContent extensions transform source content, e.g. MDX.
	KindContent Kind = iota
	// KindStyle extensions contribute stylesheets.
	KindStyle
	// KindOutput extensions scan the final output, e.g. the sitemap.
	KindOutput
)

func (k Kind) String() string {
	switch k {
	case KindContent:
		return "content"
	case KindStyle:
		return "style"
	case KindOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Provider describes an extension known to the host environment.
type Provider interface {
	// Name is the canonical, lower case identifier.
	Name() string
	Kind() Kind

	// Decode validates opts and returns the typed options record.
	// opts may be nil.
	Decode(opts maps.Params) (any, error)
}

// NewProvider creates a new Provider with the given name.
func NewProvider(name string, kind Kind, decode func(opts maps.Params) (any, error)) Provider {
	return newProvider{
		name:   strings.ToLower(name),
		kind:   kind,
		decode: decode,
	}
}

type newProvider struct {
	name   string
	kind   Kind
	decode func(opts maps.Params) (any, error)
}

func (p newProvider) Name() string {
	return p.name
}

func (p newProvider) Kind() Kind {
	return p.kind
}

func (p newProvider) Decode(opts maps.Params) (any, error) {
	return p.decode(opts)
}

// Activation is an extension enabled in a site, with its options as
// declared and decoded.
type Activation struct {
	Name    string
	Kind    Kind
	Options maps.Params
	Decoded any
}

// Registry maps extension identifiers to providers.
type Registry struct {
	// Maps name (tailwind, style etc.) to a provider.
	// Note that this is also used for aliasing, so the same provider
	// may be registered multiple times.
	// All names are lower case.
	providers map[string]Provider
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds p under its name and the given aliases.
func (r *Registry) Register(p Provider, aliases ...string) {
	aliases = append(aliases, p.Name())
	for _, alias := range aliases {
		r.providers[strings.ToLower(alias)] = p
	}
}

// Get returns the provider for name, or nil if name is unknown.
func (r *Registry) Get(name string) Provider {
	return r.providers[strings.ToLower(strings.TrimSpace(name))]
}

// Names returns the registered identifiers, aliases included, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns a Registry with the built-in extensions.
func Default() *Registry {
	r := NewRegistry()
	r.Register(NewProvider(MDX, KindContent, decodeMDXOptions))
	r.Register(NewProvider(Sitemap, KindOutput, decodeSitemapOptions))
	r.Register(NewProvider(Style, KindStyle, decodeStyleOptions), "tailwind")
	return r
}
