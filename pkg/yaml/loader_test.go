package yaml

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-yamlite/pkg/value"
)

func newTestLoader(t *testing.T, files map[string]string, opts ...LoaderOption) (*Loader, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	l, err := NewLoader(fs, opts...)
	require.NoError(t, err)
	return l, fs
}

func TestLoaderLoad(t *testing.T) {
	l, _ := newTestLoader(t, map[string]string{"/app.yaml": "name: api\nport: 8080\n"})

	r, err := l.Load("/app.yaml")
	require.NoError(t, err)
	require.NoError(t, r.Err())
	assert.True(t, r.Value.Equal(value.MappingOf("name", value.String("api"), "port", value.Int(8080))))
}

func TestLoaderMissingFile(t *testing.T) {
	l, _ := newTestLoader(t, nil)

	_, err := l.Load("/missing.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoaderCacheHit(t *testing.T) {
	var logs bytes.Buffer
	l, _ := newTestLoader(t,
		map[string]string{"/app.yaml": "a:\n  b: 1\n"},
		WithLoaderLogger(zerolog.New(&logs)),
	)

	first, err := l.Load("/app.yaml")
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "yaml cache hit")

	second, err := l.Load("/app.yaml")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "yaml cache hit")
	assert.True(t, first.Value.Equal(second.Value))
}

func TestLoaderReturnsIndependentCopies(t *testing.T) {
	l, _ := newTestLoader(t, map[string]string{"/app.yaml": "a:\n  b: 1\n"})

	first, err := l.Load("/app.yaml")
	require.NoError(t, err)
	inner, _ := first.Value.Get("a")
	inner.Mapping().Set("b", value.Int(99))

	second, err := l.Load("/app.yaml")
	require.NoError(t, err)
	b, _ := second.Value.Lookup("a", "b")
	assert.True(t, b.Equal(value.Int(1)), "cached document was modified through a returned result")

	inner, _ = second.Value.Get("a")
	inner.Mapping().Set("c", value.Int(2))
	third, err := l.Load("/app.yaml")
	require.NoError(t, err)
	_, ok := third.Value.Lookup("a", "c")
	assert.False(t, ok)
}

func TestLoaderNoticesModification(t *testing.T) {
	l, fs := newTestLoader(t, map[string]string{"/app.yaml": "v: 1\n"})

	r, err := l.Load("/app.yaml")
	require.NoError(t, err)
	v, _ := r.Value.Get("v")
	assert.True(t, v.Equal(value.Int(1)))

	// Same size, later modification time.
	require.NoError(t, afero.WriteFile(fs, "/app.yaml", []byte("v: 2\n"), 0o644))
	later := time.Now().Add(time.Hour)
	require.NoError(t, fs.Chtimes("/app.yaml", later, later))

	r, err = l.Load("/app.yaml")
	require.NoError(t, err)
	v, _ = r.Value.Get("v")
	assert.True(t, v.Equal(value.Int(2)))

	// Different size.
	require.NoError(t, afero.WriteFile(fs, "/app.yaml", []byte("v: 300\n"), 0o644))
	require.NoError(t, fs.Chtimes("/app.yaml", later, later))

	r, err = l.Load("/app.yaml")
	require.NoError(t, err)
	v, _ = r.Value.Get("v")
	assert.True(t, v.Equal(value.Int(300)))
}

func TestLoaderInvalidate(t *testing.T) {
	l, _ := newTestLoader(t, map[string]string{"/app.yaml": "v: 1\n"})

	_, err := l.Load("/app.yaml")
	require.NoError(t, err)
	assert.True(t, l.cache.Contains("/app.yaml"))

	l.Invalidate("/app.yaml")
	assert.False(t, l.cache.Contains("/app.yaml"))
}

func TestLoaderCacheSize(t *testing.T) {
	files := map[string]string{}
	for i := 0; i < 4; i++ {
		files[fmt.Sprintf("/f%d.yaml", i)] = fmt.Sprintf("n: %d\n", i)
	}
	l, _ := newTestLoader(t, files, WithCacheSize(2))

	for i := 0; i < 4; i++ {
		_, err := l.Load(fmt.Sprintf("/f%d.yaml", i))
		require.NoError(t, err)
	}
	assert.Equal(t, 2, l.cache.Len())
	assert.False(t, l.cache.Contains("/f0.yaml"))
	assert.True(t, l.cache.Contains("/f3.yaml"))
}

func TestLoaderKeepsDiagnostics(t *testing.T) {
	l, _ := newTestLoader(t, map[string]string{"/bad.yaml": "a: *nope\nb: 1\n"})

	for i := 0; i < 2; i++ {
		r, err := l.Load("/bad.yaml")
		require.NoError(t, err)
		require.Len(t, r.Errors, 1)
		assert.ErrorIs(t, r.Err(), ErrUnknownReference)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	files := map[string]string{}
	var paths []string
	for i := 0; i < 20; i++ {
		path := fmt.Sprintf("/conf/%02d.yaml", i)
		files[path] = fmt.Sprintf("base: &b\n  id: %d\ncopy: *b\n", i)
		paths = append(paths, path)
	}
	l, _ := newTestLoader(t, files, WithConcurrency(4))

	results, err := l.LoadAll(context.Background(), paths...)
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i, r := range results {
		require.NoError(t, r.Err())
		id, ok := r.Value.Lookup("copy", "id")
		require.True(t, ok)
		assert.True(t, id.Equal(value.Int(int64(i))), "result %d out of order: %s", i, r.Value)
	}
}

func TestLoaderLoadAllFailure(t *testing.T) {
	l, _ := newTestLoader(t, map[string]string{"/a.yaml": "a: 1\n"})

	results, err := l.LoadAll(context.Background(), "/a.yaml", "/missing.yaml")
	require.Error(t, err)
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "/missing.yaml")
}

func TestLoaderLoadAllCanceled(t *testing.T) {
	l, _ := newTestLoader(t, map[string]string{"/a.yaml": "a: 1\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.LoadAll(ctx, "/a.yaml")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLoaderErrors(t *testing.T) {
	_, err := NewLoader(afero.NewMemMapFs(), WithCacheSize(0))
	assert.Error(t, err)

	_, err = NewLoader(afero.NewMemMapFs(), WithConcurrency(0))
	assert.Error(t, err)
}
