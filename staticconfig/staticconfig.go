// Package staticconfig loads a configuration file into a staticcell.Cell during startup
// and hands back the proof that it is there.
//
// Decoding picks YAML, TOML or JSON by file extension, then overlays environment
// variables named by `env` struct tags. Load writes the result with staticcell.Init, so it
// carries the same contract: call it at most once per Static type, before any reader
// starts.
package staticconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/comalice/staticcell"
	"github.com/comalice/staticcell/internal/fingerprint"
	"gopkg.in/yaml.v3"
)

// Load decodes path into a T and writes it into the cell bound to S.
//
// On error nothing is written and the returned proof must not be used. On success the
// proof is the one returned by staticcell.Init.
func Load[S staticcell.Static[T], T any](path string, opts ...Option) (staticcell.Inited[S, T], error) {
	o := newOptions(opts)
	value, format, err := decode[T](path, o)
	if err != nil {
		return staticcell.Inited[S, T]{}, err
	}

	proof := staticcell.Init[S](value)
	o.logger.Info().
		Stringer("cell", proof).
		Str("path", path).
		Stringer("format", format).
		Str("fingerprint", fingerprint.Compute(value)).
		Msg("static value initialized")
	return proof, nil
}

// Decode reads path into a T and applies the environment overlay without touching any
// cell.
func Decode[T any](path string, opts ...Option) (T, error) {
	value, _, err := decode[T](path, newOptions(opts))
	return value, err
}

func decode[T any](path string, o *options) (T, Format, error) {
	var out T

	format := o.format
	if format == FormatAuto {
		f, err := FormatFor(path)
		if err != nil {
			return out, format, err
		}
		format = f
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return out, format, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	if err := decodeBytes(data, format, o, &out); err != nil {
		return out, format, fmt.Errorf("config parse failed (%s): %w", path, err)
	}

	if o.env && reflect.TypeFor[T]().Kind() == reflect.Struct {
		envOpts := env.Options{Prefix: o.envPrefix, Environment: o.environ}
		if err := env.ParseWithOptions(&out, envOpts); err != nil {
			return out, format, fmt.Errorf("config env overlay (%s): %w", path, err)
		}
	}
	return out, format, nil
}

func decodeBytes(data []byte, format Format, o *options, out any) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(o.strict)
		if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("yaml: %w", err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), out)
		if err != nil {
			return fmt.Errorf("toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			if o.strict {
				return fmt.Errorf("toml: unknown keys %s", strings.Join(keys, ", "))
			}
			o.logger.Warn().Strs("keys", keys).Msg("config keys ignored")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if o.strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("json: %w", err)
		}
	default:
		return fmt.Errorf("%s: %w", format, ErrUnknownFormat)
	}
	return nil
}
