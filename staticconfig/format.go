package staticconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the decoder for a config file.
type Format int

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	FormatYAML
	FormatTOML
	FormatJSON
)

var ErrUnknownFormat = errors.New("unknown config format")

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor maps a file extension to its Format.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}
