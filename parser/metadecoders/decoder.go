package metadecoders

import (
	"bytes"
	"encoding/json"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/sunwei/siteconf/common/maps"
	yaml "gopkg.in/yaml.v2"
)

// Decoder provides some configuration options for the decoders.
type Decoder struct{}

// Default is a Decoder in its default configuration.
var Default = Decoder{}

// UnmarshalToMap will unmarshall data in format f into a new map. This is
// what's needed for config files. All keys are lower cased and nested maps
// are turned into maps.Params.
func (d Decoder) UnmarshalToMap(data []byte, f Format) (map[string]any, error) {
	m := make(map[string]any)
	if data == nil {
		return m, nil
	}

	err := d.UnmarshalTo(data, f, &m)
	if err != nil {
		return nil, err
	}

	maps.PrepareParams(m)

	return m, nil
}

// UnmarshalFileToMap is the same as UnmarshalToMap, but reads the data from
// the given filename.
func (d Decoder) UnmarshalFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	format := FormatFromString(filename)
	if format == "" {
		return nil, fmt.Errorf("%q is not a valid configuration format", filename)
	}

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}
	return d.UnmarshalToMap(data, format)
}

// UnmarshalTo unmarshals data in format f into v.
func (d Decoder) UnmarshalTo(data []byte, f Format, v any) error {
	var err error

	switch f {
	case JSON:
		err = json.Unmarshal(data, v)
	case TOML:
		err = toml.Unmarshal(data, v)
	case YAML:
		err = yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unmarshal of format %q is not supported", f)
	}

	if err != nil {
		return fmt.Errorf("unmarshal failed: %w", err)
	}

	return nil
}

// Marshal writes in to a new byte slice in format f.
func (d Decoder) Marshal(in any, f Format) ([]byte, error) {
	switch f {
	case JSON:
		b, err := json.MarshalIndent(in, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(in); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case YAML:
		return yaml.Marshal(in)
	default:
		return nil, fmt.Errorf("marshal of format %q is not supported", f)
	}
}
