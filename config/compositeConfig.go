package config

import "github.com/sunwei/siteconf/common/maps"

// NewCompositeConfig creates a Provider that reads through a stack of
// layers on top of a read-only base. The last layer wins, so flags given
// after the config file shadow it key by key. Writes go to the top layer.
func NewCompositeConfig(base Provider, layers ...Provider) Provider {
	if len(layers) == 0 {
		layers = []Provider{New()}
	}
	return &compositeConfig{
		stack: append([]Provider{base}, layers...),
	}
}

type compositeConfig struct {
	// base first, top last.
	stack []Provider
}

func (c *compositeConfig) top() Provider {
	return c.stack[len(c.stack)-1]
}

// lookup returns the topmost provider that has key set, or the base.
func (c *compositeConfig) lookup(key string) Provider {
	for i := len(c.stack) - 1; i > 0; i-- {
		if c.stack[i].IsSet(key) {
			return c.stack[i]
		}
	}
	return c.stack[0]
}

func (c *compositeConfig) GetBool(key string) bool {
	return c.lookup(key).GetBool(key)
}

func (c *compositeConfig) GetInt(key string) int {
	return c.lookup(key).GetInt(key)
}

func (c *compositeConfig) GetString(key string) string {
	return c.lookup(key).GetString(key)
}

func (c *compositeConfig) GetStringSlice(key string) []string {
	return c.lookup(key).GetStringSlice(key)
}

func (c *compositeConfig) Get(key string) any {
	return c.lookup(key).Get(key)
}

// GetParams merges the tables found at key, upper layers overriding
// lower ones.
func (c *compositeConfig) GetParams(key string) maps.Params {
	var merged maps.Params
	for _, p := range c.stack {
		if !p.IsSet(key) {
			continue
		}
		pp := p.GetParams(key)
		if pp == nil {
			continue
		}
		if merged == nil {
			merged = pp.Clone()
			continue
		}
		merged.Set(pp.Clone())
	}
	return merged
}

func (c *compositeConfig) IsSet(key string) bool {
	for _, p := range c.stack {
		if p.IsSet(key) {
			return true
		}
	}
	return false
}

func (c *compositeConfig) Set(key string, value any) {
	c.top().Set(key, value)
}

func (c *compositeConfig) SetDefaults(params maps.Params) {
	c.top().SetDefaults(params)
}
