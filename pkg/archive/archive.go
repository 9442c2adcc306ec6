// Package archive extracts downloaded folder archives. Box delivers
// folder downloads as zip files; extraction uses format detection so a
// renamed or differently-packed archive still works.
package archive

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"

	"github.com/glorpus-work/boxfetch/pkg/errors"
	"github.com/glorpus-work/boxfetch/pkg/fsutil"
)

// Manager handles archive extraction.
type Manager struct{}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// ExtractAll extracts all entries from an archive into destDir.
func (am *Manager) ExtractAll(ctx context.Context, archivePath, destDir string) error {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to open archive %s", archivePath)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	if err := os.MkdirAll(destDir, fsutil.DirModeDefault); err != nil {
		return errors.Wrap(err, "failed to create destination directory")
	}

	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return am.extractEntry(fsys, path, destDir, d)
	})
}

// extractEntry processes a single archive entry and writes it to destDir.
func (am *Manager) extractEntry(fsys fs.FS, path, destDir string, d fs.DirEntry) error {
	if path == "." {
		return nil
	}

	// The archive comes from a remote server; refuse entries that would
	// escape the destination directory.
	targetPath := filepath.Join(destDir, path)
	if !strings.HasPrefix(targetPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return errors.Wrapf(errors.ErrInvalidPath, "archive entry escapes destination: %s", path)
	}

	if d.IsDir() {
		return os.MkdirAll(targetPath, fsutil.DirModeDefault)
	}

	info, err := d.Info()
	if err != nil {
		return errors.Wrapf(err, "failed to stat archive entry %s", path)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		return am.writeSymlink(fsys, path, targetPath)
	}
	return am.writeRegularFile(fsys, path, targetPath, info)
}

// writeSymlink creates a symlink at targetPath whose target is the
// archive entry's content.
func (am *Manager) writeSymlink(fsys fs.FS, path, targetPath string) error {
	entry, err := fsys.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read symlink %s", path)
	}
	defer func() { _ = entry.Close() }()

	targetBytes, err := io.ReadAll(entry)
	if err != nil {
		return errors.Wrapf(err, "failed to read symlink target %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), fsutil.DirModeDefault); err != nil {
		return errors.Wrapf(err, "failed to create parent directory for %s", path)
	}

	_ = os.Remove(targetPath)
	return os.Symlink(string(targetBytes), targetPath)
}

// writeRegularFile writes a regular file entry to targetPath preserving
// its permission bits.
func (am *Manager) writeRegularFile(fsys fs.FS, path, targetPath string, info fs.FileInfo) error {
	srcFile, err := fsys.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open archive entry %s", path)
	}
	defer func() { _ = srcFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(targetPath), fsutil.DirModeDefault); err != nil {
		return errors.Wrapf(err, "failed to create parent directory for %s", path)
	}

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = fsutil.FileModeDefault
	}
	dstFile, err := fsutil.CreateFilePerm(targetPath, perm)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %s", targetPath)
	}
	defer func() { _ = dstFile.Close() }()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return errors.Wrapf(err, "failed to extract %s", path)
	}
	return nil
}
