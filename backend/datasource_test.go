package backend

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, path string, ds Dataset) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, EncodeDataset(&buf, ds))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestDatasourceSample(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := NewDatasource("", testDay).Stream(ctx)
	loaded, ok := receive(t, ch)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Equal(t, SampleDataset(testDay), loaded.Dataset)
	_, ok = receive(t, ch)
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day.json")
	writeDataset(t, path, SampleDataset(testDay))
	ds, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, ds.Points, 25)

	_, err = LoadFile(filepath.Join(dir, "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o644))
	_, err = LoadFile(broken)
	assert.ErrorContains(t, err, "broken.json")
}

func TestDatasourceWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.json")
	ds := SampleDataset(testDay)
	writeDataset(t, path, ds)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := NewDatasource(path, testDay).Stream(ctx)

	first, ok := receive(t, ch)
	require.True(t, ok)
	require.NoError(t, first.Err)
	assert.Len(t, first.Dataset.Points, 25)
	assert.Equal(t, path, first.Source)

	trimmed := ds
	trimmed.Points = ds.Points[:6]
	writeDataset(t, path, trimmed)

	// A rewrite may surface a partially written file before the final contents.
	for {
		loaded, ok := receive(t, ch)
		require.True(t, ok)
		if loaded.Err == nil && len(loaded.Dataset.Points) == 6 {
			break
		}
	}

	cancel()
	for {
		if _, ok := receive(t, ch); !ok {
			break
		}
	}
}

func TestReadChosen(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeDataset(&buf, SampleDataset(testDay)))
	loaded := readChosen(io.NopCloser(&buf))
	require.NoError(t, loaded.Err)
	assert.Equal(t, "picker", loaded.Source)
	assert.Len(t, loaded.Dataset.Highlights, 8)

	bad := readChosen(io.NopCloser(bytes.NewBufferString("[]")))
	assert.Error(t, bad.Err)
}
