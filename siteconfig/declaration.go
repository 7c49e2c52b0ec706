package siteconfig

import (
	"fmt"
	"sort"

	"github.com/sunwei/siteconf/common/maps"
	"github.com/sunwei/siteconf/config"
	"github.com/sunwei/siteconf/types"
)

// Declaration is a site configuration as authored. Nil pointer fields are
// unset and get defaults in Resolve.
type Declaration struct {
	SiteURL    string
	Extensions []ExtensionDeclaration
	Markdown   MarkdownDeclaration
	Style      StyleDeclaration
}

// ExtensionDeclaration activates the extension Name with Options.
type ExtensionDeclaration struct {
	Name    string
	Options maps.Params
}

type MarkdownDeclaration struct {
	SyntaxTheme            *string
	WrapLongLines          *bool
	EnableExtendedMarkdown *bool
	Smartypants            *bool
	HeadingIDType          *string
}

type StyleDeclaration struct {
	InjectBaseStyles *bool
}

// String returns a pointer to s.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Ext is shorthand for an ExtensionDeclaration.
func Ext(name string, options ...maps.Params) ExtensionDeclaration {
	e := ExtensionDeclaration{Name: name}
	if len(options) > 0 {
		e.Options = options[0]
	}
	return e
}

// Config keys, canonical key first.
var (
	siteURLKeys                = []string{"siteURL", "site", "baseURL"}
	extensionsKeys             = []string{"extensions", "integrations"}
	syntaxThemeKeys            = []string{"markdown.syntaxTheme", "markdown.shikiConfig.theme"}
	wrapLongLinesKeys          = []string{"markdown.wrapLongLines", "markdown.shikiConfig.wrap"}
	enableExtendedMarkdownKeys = []string{"markdown.enableExtendedMarkdown", "markdown.gfm"}
	injectBaseStylesKeys       = []string{"style.injectBaseStyles", "style.applyBaseStyles"}
	smartypantsKeys            = []string{"markdown.smartypants"}
	headingIDTypeKeys          = []string{"markdown.headingIDType"}

	aliasedKeys = [][]string{
		siteURLKeys,
		extensionsKeys,
		syntaxThemeKeys,
		wrapLongLinesKeys,
		enableExtendedMarkdownKeys,
		injectBaseStylesKeys,
	}
)

// DecodeDeclaration reads a Declaration from cfg. Values of the wrong type
// are reported as InvalidConfigError; missing values are left unset.
func DecodeDeclaration(cfg config.Provider) (Declaration, error) {
	var d Declaration

	if v, key, found := config.GetFirst(cfg, siteURLKeys...); found {
		s, err := types.ToStringE(v)
		if err != nil {
			return d, invalidErr(key, v, err)
		}
		d.SiteURL = s
	}

	if v, key, found := config.GetFirst(cfg, extensionsKeys...); found {
		exts, err := decodeExtensions(key, v)
		if err != nil {
			return d, err
		}
		d.Extensions = exts
	}

	var err error
	if d.Markdown.SyntaxTheme, err = getString(cfg, syntaxThemeKeys...); err != nil {
		return d, err
	}
	if d.Markdown.WrapLongLines, err = getBool(cfg, wrapLongLinesKeys...); err != nil {
		return d, err
	}
	if d.Markdown.EnableExtendedMarkdown, err = getBool(cfg, enableExtendedMarkdownKeys...); err != nil {
		return d, err
	}
	if d.Markdown.Smartypants, err = getBool(cfg, smartypantsKeys...); err != nil {
		return d, err
	}
	if d.Markdown.HeadingIDType, err = getString(cfg, headingIDTypeKeys...); err != nil {
		return d, err
	}
	if d.Style.InjectBaseStyles, err = getBool(cfg, injectBaseStylesKeys...); err != nil {
		return d, err
	}

	return d, nil
}

func decodeExtensions(key string, v any) ([]ExtensionDeclaration, error) {
	var list []any
	switch vv := v.(type) {
	case nil:
		return nil, nil
	case []any:
		list = vv
	case []maps.Params, []map[string]any:
		ps, err := maps.ToSliceParams(vv)
		if err != nil {
			return nil, invalidErr(key, v, err)
		}
		for _, p := range ps {
			list = append(list, p)
		}
	default:
		return nil, invalid(key, v, fmt.Sprintf("expected a list, got %T", v))
	}

	exts := make([]ExtensionDeclaration, len(list))
	for i, entry := range list {
		field := fmt.Sprintf("%s[%d]", key, i)
		switch e := entry.(type) {
		case string:
			exts[i] = ExtensionDeclaration{Name: e}
		case maps.Params, map[string]any, map[any]any:
			ext, err := decodeExtension(field, maps.MustToParamsAndPrepare(e))
			if err != nil {
				return nil, err
			}
			exts[i] = ext
		default:
			return nil, invalid(field, entry, fmt.Sprintf("expected a name or a table, got %T", entry))
		}
	}
	return exts, nil
}

func decodeExtension(field string, p maps.Params) (ExtensionDeclaration, error) {
	var ext ExtensionDeclaration
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := p[k]
		switch k {
		case "name":
			name, err := types.ToStringE(v)
			if err != nil {
				return ext, invalidErr(field+".name", v, err)
			}
			ext.Name = name
		case "options":
			if v == nil {
				continue
			}
			opts, ok := v.(maps.Params)
			if !ok {
				return ext, invalid(field+".options", v, fmt.Sprintf("expected a table, got %T", v))
			}
			ext.Options = opts
		default:
			return ext, invalid(field+"."+k, v, "unknown key, extension options belong in the options table")
		}
	}
	if _, found := p["name"]; !found {
		return ext, invalid(field+".name", nil, "must be set")
	}
	return ext, nil
}

func getString(cfg config.Provider, keys ...string) (*string, error) {
	v, key, found := config.GetFirst(cfg, keys...)
	if !found {
		return nil, nil
	}
	s, err := types.ToStringE(v)
	if err != nil {
		return nil, invalidErr(key, v, err)
	}
	return &s, nil
}

func getBool(cfg config.Provider, keys ...string) (*bool, error) {
	v, key, found := config.GetFirst(cfg, keys...)
	if !found {
		return nil, nil
	}
	b, err := types.ToBoolE(v)
	if err != nil {
		return nil, invalidErr(key, v, err)
	}
	return &b, nil
}
