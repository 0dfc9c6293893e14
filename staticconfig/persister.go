package staticconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/comalice/staticcell"
	"gopkg.in/yaml.v3"
)

// Persister stores named snapshots of static values. Path returns a file that Load and
// Decode read back with the matching format.
type Persister interface {
	Save(ctx context.Context, name string, value any) error
	Load(ctx context.Context, name string, out any) error
	Path(name string) string
}

// Persist saves the value behind proof under name.
func Persist[S staticcell.Static[T], T any](ctx context.Context, p Persister, name string, proof staticcell.Inited[S, T]) error {
	return p.Save(ctx, name, proof.Get())
}

// filePersister writes one file per snapshot into dir.
type filePersister struct {
	dir       string
	ext       string
	format    Format
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

func newFilePersister(dir, ext string, format Format, marshal func(any) ([]byte, error)) (*filePersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	p := &filePersister{dir: dir, ext: ext, format: format, marshal: marshal}
	p.unmarshal = func(data []byte, out any) error {
		return decodeBytes(data, format, newOptions(nil), out)
	}
	return p, nil
}

func (p *filePersister) Path(name string) string {
	return filepath.Join(p.dir, name+p.ext)
}

func (p *filePersister) Save(ctx context.Context, name string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := p.marshal(value)
	if err != nil {
		return fmt.Errorf("%s marshal: %w", p.format, err)
	}
	fn := p.Path(name)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (p *filePersister) Load(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fn := p.Path(name)
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("snapshot %q: %w", name, os.ErrNotExist)
		}
		return fmt.Errorf("read %s: %w", fn, err)
	}
	if err := p.unmarshal(data, out); err != nil {
		return fmt.Errorf("%s unmarshal: %w", p.format, err)
	}
	return nil
}

// JSONPersister stores snapshots as indented JSON.
type JSONPersister struct {
	*filePersister
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	fp, err := newFilePersister(dir, ".json", FormatJSON, func(v any) ([]byte, error) {
		return json.MarshalIndent(v, "", "  ")
	})
	if err != nil {
		return nil, err
	}
	return &JSONPersister{fp}, nil
}

// YAMLPersister stores snapshots as YAML.
type YAMLPersister struct {
	*filePersister
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	fp, err := newFilePersister(dir, ".yaml", FormatYAML, yaml.Marshal)
	if err != nil {
		return nil, err
	}
	return &YAMLPersister{fp}, nil
}

// TOMLPersister stores snapshots as TOML. Values must encode to a TOML table, so
// structs and maps only.
type TOMLPersister struct {
	*filePersister
}

// NewTOMLPersister creates a TOMLPersister, ensuring the directory exists.
func NewTOMLPersister(dir string) (*TOMLPersister, error) {
	fp, err := newFilePersister(dir, ".toml", FormatTOML, func(v any) ([]byte, error) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return nil, err
	}
	return &TOMLPersister{fp}, nil
}
