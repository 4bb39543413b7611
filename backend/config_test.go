package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	dir := t.TempDir()

	t.Run("defaults", func(t *testing.T) {
		b, err := configure("", "", 0, false, testDay)
		require.NoError(t, err)
		assert.Equal(t, DefaultNowRefresh, b.NowRefresh)
		assert.False(t, b.Live)
		assert.Empty(t, b.Datasource.Path)
		assert.Equal(t, testDay, b.Datasource.Day)
		assert.Equal(t, DefaultBands, b.Options.Bands)
	})

	t.Run("theme", func(t *testing.T) {
		path := filepath.Join(dir, "theme.hcl")
		require.NoError(t, os.WriteFile(path, []byte(testTheme), 0o644))
		b, err := configure("data.json", path, 30*time.Second, true, testDay)
		require.NoError(t, err)
		assert.Equal(t, "data.json", b.Datasource.Path)
		assert.Equal(t, 30*time.Second, b.NowRefresh)
		assert.True(t, b.Live)
		assert.Equal(t, 0.75, b.Options.Bands.HighAt)
	})

	t.Run("bad theme is an error", func(t *testing.T) {
		path := filepath.Join(dir, "broken.hcl")
		require.NoError(t, os.WriteFile(path, []byte("label_stride_hours = 0\n"), 0o644))
		_, err := configure("", path, 0, false, testDay)
		assert.ErrorContains(t, err, "failed loading theme")

		_, err = configure("", filepath.Join(dir, "missing.hcl"), 0, false, testDay)
		assert.Error(t, err)
	})
}
