// Package site assembles many reference pages into a browsable set: source
// discovery, the shared name-to-location map, parallel page builds, the
// index page, and incremental updates.
package site

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Discoverer scans directory roots for documentable source files.
type Discoverer struct {
	ignored []string
}

// NewDiscoverer creates a discoverer. The defaults always apply; extra
// directory names extend them.
func NewDiscoverer(extra ...string) *Discoverer {
	d := &Discoverer{ignored: []string{".git", "private", "+internal", "resources"}}
	d.ignored = append(d.ignored, extra...)
	return d
}

// Scan walks root and streams every .m file path through onFile, keeping
// memory flat for large trees.
func (d *Discoverer) Scan(root string, onFile func(path string)) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			for _, ign := range d.ignored {
				if entry.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if strings.HasSuffix(entry.Name(), ".m") {
			onFile(path)
		}
		return nil
	})
}

// Dirs returns root plus every non-ignored subdirectory, for watchers that
// need explicit registration per directory.
func (d *Discoverer) Dirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		for _, ign := range d.ignored {
			if entry.Name() == ign {
				return filepath.SkipDir
			}
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs, err
}
