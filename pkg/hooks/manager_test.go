package hooks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/boxfetch/pkg/errors"
	"github.com/glorpus-work/boxfetch/pkg/hooks"
)

func TestAddAndExecuteHook(t *testing.T) {
	manager := hooks.NewManager()
	ctx := hooks.Context{
		ItemName:   "Report.pdf",
		ItemType:   "file",
		ItemSize:   2048,
		SharedLink: "https://app.box.com/s/abc123",
		DestPath:   "/dl/Report.pdf",
	}

	err := manager.AddHook(hooks.Hook{
		Type:    hooks.PreDownload,
		Content: `// no-op`,
	})
	require.NoError(t, err)

	require.NoError(t, manager.Execute(hooks.PreDownload, ctx))
}

func TestExecute_ScriptSeesContext(t *testing.T) {
	manager := hooks.NewManager()

	// The script fails unless the context variables carry the expected
	// values, so a passing Execute proves they were wired in.
	script := `
err := ""
if itemName != "Report.pdf" { err = "wrong name" }
if itemSize != 2048 { err = "wrong size" }
`
	require.NoError(t, manager.AddHook(hooks.Hook{Type: hooks.PostDownload, Content: script}))
	require.NoError(t, manager.Execute(hooks.PostDownload, hooks.Context{
		ItemName: "Report.pdf",
		ItemSize: 2048,
	}))
}

func TestExecute_ScriptError(t *testing.T) {
	manager := hooks.NewManager()
	require.NoError(t, manager.AddHook(hooks.Hook{
		Type:    hooks.PreDownload,
		Content: `err := "disk is full"`,
	}))

	err := manager.Execute(hooks.PreDownload, hooks.Context{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrHookScript))
	assert.Contains(t, err.Error(), "disk is full")
}

func TestExecute_UnregisteredTypeIsNoop(t *testing.T) {
	manager := hooks.NewManager()
	assert.NoError(t, manager.Execute(hooks.PostDownload, hooks.Context{}))
}

func TestHasAndRemoveHook(t *testing.T) {
	manager := hooks.NewManager()

	assert.False(t, manager.HasHook(hooks.PreDownload))

	require.NoError(t, manager.AddHook(hooks.Hook{Type: hooks.PreDownload, Content: `// x`}))
	assert.True(t, manager.HasHook(hooks.PreDownload))

	require.NoError(t, manager.RemoveHook(hooks.PreDownload))
	assert.False(t, manager.HasHook(hooks.PreDownload))

	assert.Error(t, manager.AddHook(hooks.Hook{Type: "", Content: `// x`}))
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pre-download.tengo"), []byte(`// pre`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post-download.tengo"), []byte(`// post`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.tengo"), []byte(`// skip`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`skip`), 0o644))

	manager := hooks.NewManager()
	require.NoError(t, hooks.LoadFromDir(manager, dir))

	assert.True(t, manager.HasHook(hooks.PreDownload))
	assert.True(t, manager.HasHook(hooks.PostDownload))
	assert.False(t, manager.HasHook(hooks.HookType("unrelated")))
}

func TestLoadFromDir_MissingDir(t *testing.T) {
	manager := hooks.NewManager()
	assert.NoError(t, hooks.LoadFromDir(manager, filepath.Join(t.TempDir(), "nope")))
}
