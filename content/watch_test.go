package content

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestWatchReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte("Welcome."), 0o644))

	lib, err := New(os.DirFS(dir), zap.NewNop())
	require.NoError(t, err)
	var reloads atomic.Int32
	w, err := Watch(lib, dir, 20*time.Millisecond, func(err error) {
		if err == nil {
			reloads.Add(1)
		}
	})
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "getting-started"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "twitter.md"), []byte("+++\ntitle = \"Twitter\"\n+++\n"), 0o644))

	assert.Eventually(t, func() bool {
		_, ok := lib.Lookup("twitter")
		return ok
	}, 5*time.Second, 20*time.Millisecond)

	// files in folders created after Watch started are picked up too
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "getting-started", "index.md"), []byte("Start."), 0o644))
	assert.Eventually(t, func() bool {
		_, ok := lib.Lookup("getting-started")
		return ok
	}, 5*time.Second, 20*time.Millisecond)

	assert.GreaterOrEqual(t, reloads.Load(), int32(2))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "Close is idempotent")
}
