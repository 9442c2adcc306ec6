package hooks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/boxfetch/pkg/errors"
)

// scriptExtension is the only supported hook file extension.
const scriptExtension = ".tengo"

// LoadFromDir loads hook scripts from a directory into the manager.
// Files are matched by name: <hook-type>.tengo. Unknown names and other
// extensions are skipped. A missing directory is not an error.
func LoadFromDir(manager Manager, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(errors.ErrHookLoad, "failed to read hooks directory %s: %v", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != scriptExtension {
			continue
		}

		hookType := HookType(strings.TrimSuffix(entry.Name(), scriptExtension))
		switch hookType {
		case PreDownload, PostDownload:
		default:
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return errors.Wrapf(errors.ErrHookLoad, "error reading hook file %s: %v", entry.Name(), err)
		}

		if err := manager.AddHook(Hook{Type: hookType, Content: string(content)}); err != nil {
			return errors.Wrapf(errors.ErrHookLoad, "error adding hook %s: %v", hookType, err)
		}
	}

	return nil
}
