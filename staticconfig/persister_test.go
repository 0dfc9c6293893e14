package staticconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func persisters(t *testing.T) map[string]Persister {
	t.Helper()
	dir := t.TempDir()

	jp, err := NewJSONPersister(filepath.Join(dir, "json"))
	require.NoError(t, err)
	yp, err := NewYAMLPersister(filepath.Join(dir, "yaml"))
	require.NoError(t, err)
	tp, err := NewTOMLPersister(filepath.Join(dir, "toml"))
	require.NoError(t, err)

	return map[string]Persister{"json": jp, "yaml": yp, "toml": tp}
}

func TestPersistRoundTrip(t *testing.T) {
	resetServerCell(t)
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

	proof, err := Load[serverStatic, serverConfig](path, WithoutEnv())
	require.NoError(t, err)

	for name, p := range persisters(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, Persist(ctx, p, "server", proof))

			var loaded serverConfig
			require.NoError(t, p.Load(ctx, "server", &loaded))
			assert.Equal(t, wantServer, loaded)

			decoded, err := Decode[serverConfig](p.Path("server"), WithoutEnv(), WithStrict())
			require.NoError(t, err)
			assert.Equal(t, wantServer, decoded)
		})
	}
}

func TestPersisterLoadMissing(t *testing.T) {
	for name, p := range persisters(t) {
		var out serverConfig
		err := p.Load(context.Background(), "absent", &out)
		assert.ErrorIs(t, err, os.ErrNotExist, name)
	}
}

func TestPersisterHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, p := range persisters(t) {
		assert.ErrorIs(t, p.Save(ctx, "server", wantServer), context.Canceled, name)
		var out serverConfig
		assert.ErrorIs(t, p.Load(ctx, "server", &out), context.Canceled, name)
	}
}

func TestPersisterPath(t *testing.T) {
	dir := t.TempDir()
	p, err := NewYAMLPersister(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "limits.yaml"), p.Path("limits"))

	format, err := FormatFor(p.Path("limits"))
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)
}
