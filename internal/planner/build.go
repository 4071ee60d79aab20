package planner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/danieljhkim/omnicopy/internal/fsops"
)

// BuildCopyPlan plans copying src into the directory dst.
func BuildCopyPlan(fs fsops.FS, src, dst string) (*CopyPlan, error) {
	srcInfo, err := fs.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("failed to stat source: %w", err)
	}

	plan := NewCopyPlan(src, dst)
	b := &builder{fs: fs, plan: plan, root: dst}

	if err := b.mkdir(dst, fsops.DefaultDirMode); err != nil {
		return nil, err
	}

	if srcInfo.IsDir() {
		if err := b.dir(src, dst); err != nil {
			return nil, err
		}
		return plan, nil
	}

	if err := b.file(src, filepath.Join(dst, filepath.Base(src)), srcInfo); err != nil {
		return nil, err
	}
	return plan, nil
}

// ownerWrite keeps copied files writable so the next build can overwrite them.
const ownerWrite os.FileMode = 0200

type builder struct {
	fs   fsops.FS
	plan *CopyPlan
	root string
}

// dir plans the contents of srcDir into dstDir, which is already planned.
func (b *builder) dir(srcDir, dstDir string) error {
	entries, err := b.fs.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("failed to read source directory: %w", err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(srcDir, entry.Name())
		dstPath := filepath.Join(dstDir, entry.Name())

		// Follow symlinks so the target content is copied.
		info, err := b.fs.Stat(srcPath)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", srcPath, err)
		}

		// Destination directories do not inherit source permissions, so a
		// read-only source tree still yields a writable output tree.
		if info.IsDir() {
			if err := b.mkdir(dstPath, fsops.DefaultDirMode); err != nil {
				return err
			}
			if err := b.dir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		if err := b.file(srcPath, dstPath, info); err != nil {
			return err
		}
	}

	return nil
}

// mkdir plans a directory, removing a non-directory that occupies its path.
func (b *builder) mkdir(path string, mode os.FileMode) error {
	info, err := b.existing(path)
	if err != nil {
		return err
	}
	if info != nil && !info.IsDir() {
		b.remove(path)
	}

	b.plan.AddOperation(Operation{
		Type:     OpMkdir,
		DestPath: path,
		RelPath:  b.rel(path),
		Mode:     mode,
	})
	return nil
}

// file plans a file copy, removing a directory that occupies its path.
// A source that already is its destination entry is left alone; copying it
// would truncate it first.
func (b *builder) file(src, dst string, srcInfo os.FileInfo) error {
	info, err := b.existing(dst)
	if err != nil {
		return err
	}

	overwrite := false
	if info != nil {
		if info.IsDir() {
			b.remove(dst)
		} else {
			if filepath.Clean(src) == filepath.Clean(dst) || os.SameFile(srcInfo, info) {
				return nil
			}
			overwrite = true
		}
	}

	b.plan.AddOperation(Operation{
		Type:       OpCopy,
		SourcePath: src,
		DestPath:   dst,
		RelPath:    b.rel(dst),
		Mode:       srcInfo.Mode().Perm() | ownerWrite,
		Overwrite:  overwrite,
	})
	return nil
}

func (b *builder) remove(path string) {
	b.plan.AddOperation(Operation{
		Type:     OpRemove,
		DestPath: path,
		RelPath:  b.rel(path),
	})
}

// existing returns the info of path, or nil if nothing is there.
func (b *builder) existing(path string) (os.FileInfo, error) {
	info, err := b.fs.Stat(path)
	if err != nil {
		// ENOTDIR: a parent in the path is a file that the plan replaces.
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat destination: %w", err)
	}
	return info, nil
}

func (b *builder) rel(path string) string {
	rel, err := filepath.Rel(b.root, path)
	if err != nil {
		return path
	}
	return rel
}
