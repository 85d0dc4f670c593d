// SPDX-License-Identifier: MIT
// Package: sigmix/recipe
//
// export.go - all-or-nothing flat-file exports for Cook.
//
// Every requested table is first written to a temp file next to its
// target; targets are replaced only after all of them were staged. A
// failure removes the temp files, so a failing Cook leaves no new files.

package recipe

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sigmix/table"
	"go.uber.org/zap"
)

// exportTarget is one requested export; an empty path is skipped.
type exportTarget struct {
	path string
	cols []table.Column
}

// staged is a fully written temp file waiting for its rename.
type staged struct {
	exportTarget
	tmp string
}

// exportAll writes every target or none of them.
func exportAll(log *zap.Logger, targets ...exportTarget) (err error) {
	var done []staged
	defer func() {
		if err == nil {
			return
		}
		for _, s := range done {
			_ = os.Remove(s.tmp)
		}
	}()

	for _, t := range targets {
		if t.path == "" {
			continue
		}
		// rename(2) cannot replace a directory; refuse before writing anything.
		if fi, serr := os.Stat(t.path); serr == nil && fi.IsDir() {
			return fmt.Errorf("Cook: %w: %s is a directory", ErrExport, t.path)
		}
	}

	for _, t := range targets {
		if t.path == "" {
			continue
		}
		tmp, serr := stage(t.path, t.cols)
		if serr != nil {
			return fmt.Errorf("Cook: %w: %w", ErrExport, serr)
		}
		done = append(done, staged{exportTarget: t, tmp: tmp})
	}

	var committed []string
	for _, s := range done {
		if rerr := os.Rename(s.tmp, s.path); rerr != nil {
			for _, path := range committed {
				_ = os.Remove(path)
			}
			return fmt.Errorf("Cook: %w: %w", ErrExport, rerr)
		}
		committed = append(committed, s.path)
		log.Debug("exported table", zap.String("path", s.path), zap.Int("columns", len(s.cols)))
	}

	return nil
}

// stage writes cols into a temp file in path's directory (created as
// needed) and returns the temp file name.
func stage(path string, cols []table.Column) (_ string, err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export(%s): %w", path, err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("export(%s): %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export(%s): %w", path, cerr)
		}
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = table.Write(f, cols); err != nil {
		return "", fmt.Errorf("export(%s): %w", path, err)
	}
	if err = f.Chmod(0o644); err != nil {
		return "", fmt.Errorf("export(%s): %w", path, err)
	}

	return tmp, nil
}
