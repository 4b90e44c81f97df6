// Package emitter serializes a package descriptor for the packaging toolchain.
package emitter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/appmode/nbpack/internal/descriptor"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format is an output encoding for descriptors.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported encodings in display order.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat converts s to a Format. Empty input yields FormatJSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case "yml":
		return FormatYAML, nil
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want json, yaml or toml)", s)
	}
}

// Encode serializes d in the requested format. The output always ends in a newline.
func Encode(d *descriptor.Descriptor, format Format) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatJSON, "":
		out, err = json.MarshalIndent(d, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(d)
	case FormatTOML:
		out, err = toml.Marshal(d)
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode descriptor as %s: %w", format, err)
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return out, nil
}
