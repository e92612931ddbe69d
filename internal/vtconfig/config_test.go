package vtconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoaderDefaults(t *testing.T) {
	l := NewLoader()
	l.SetConfigFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	cfg, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, 80, cfg.Cols)
	require.Equal(t, 24, cfg.Rows)
	require.Equal(t, 4096, cfg.HistorySize)
}

func TestLoaderReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shell: /bin/bash\ncols: 132\nrows: 43\n"), 0o600))

	l := NewLoader()
	l.SetConfigFile(path)

	cfg, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, "/bin/bash", cfg.Shell)
	require.Equal(t, 132, cfg.Cols)
	require.Equal(t, 43, cfg.Rows)
}
