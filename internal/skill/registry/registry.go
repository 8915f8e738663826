// Package registry indexes the skills found directly under a skills root.
//
// Every call re-reads the filesystem. Lookups are linear in the number of
// skills, which is fine for fleets of tens to low hundreds of skills.
package registry

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/harunnryd/skillref/internal/errors"
	"github.com/harunnryd/skillref/internal/pathutil"
	"github.com/harunnryd/skillref/internal/skill/domain"
	"github.com/harunnryd/skillref/internal/skill/parser"
)

// Entry is a parsed skill found under the root.
type Entry struct {
	Dir      string
	Metadata domain.SkillMetadata
}

func (e Entry) Name() string {
	return e.Metadata.Name()
}

// DirName is the entry's directory base name, the index sort key.
func (e Entry) DirName() string {
	return filepath.Base(e.Dir)
}

type SkillLoadError struct {
	Path  string
	Cause error
}

func (e *SkillLoadError) Error() string {
	return fmt.Sprintf("failed to load skill from %s: %v", e.Path, e.Cause)
}

func (e *SkillLoadError) Unwrap() error {
	return e.Cause
}

// Index is an ordered snapshot of a skills root, sorted by directory name.
// Duplicate skill names are kept; lookups return the first in order.
type Index struct {
	root     string
	entries  []Entry
	failures []*SkillLoadError
}

// Scan parses every immediate subdirectory of root that holds a SKILL.md.
// Unparseable skills are recorded as failures, never returned as an error.
func Scan(root string) (*Index, error) {
	idx := &Index{root: root}

	err := walk(root, func(dir string) bool {
		meta, err := parser.LoadDescriptor(dir)
		if err != nil {
			slog.Debug("Skill skipped", "path", dir, "category", apperrors.Category(err), "error", err)
			idx.failures = append(idx.failures, &SkillLoadError{Path: dir, Cause: err})
			return true
		}
		idx.entries = append(idx.entries, Entry{Dir: dir, Metadata: meta})
		return true
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Skills scanned", "count", idx.Len(), "errors", len(idx.failures), "path", root)
	return idx, nil
}

// FindSkillByName scans root and returns the first skill, by directory name
// order, whose parsed name matches. Parse failures count as "not this one".
func FindSkillByName(root, name string) (Entry, bool) {
	var found Entry
	ok := false

	err := walk(root, func(dir string) bool {
		meta, err := parser.LoadDescriptor(dir)
		if err != nil {
			slog.Debug("Skill skipped during lookup", "path", dir, "error", err)
			return true
		}
		if meta.Name() == name {
			found = Entry{Dir: dir, Metadata: meta}
			ok = true
			return false
		}
		return true
	})
	if err != nil {
		slog.Debug("Skills root unreadable", "path", root, "error", err)
		return Entry{}, false
	}

	return found, ok
}

func (idx *Index) Root() string {
	return idx.root
}

func (idx *Index) Entries() []Entry {
	return append([]Entry(nil), idx.entries...)
}

func (idx *Index) Failures() []*SkillLoadError {
	return append([]*SkillLoadError(nil), idx.failures...)
}

func (idx *Index) Len() int {
	return len(idx.entries)
}

// Lookup returns the first entry with the given name.
func (idx *Index) Lookup(name string) (Entry, bool) {
	for _, e := range idx.entries {
		if e.Name() == name {
			return e, true
		}
	}
	return Entry{}, false
}

func (idx *Index) Has(name string) bool {
	_, ok := idx.Lookup(name)
	return ok
}

// Without returns the entries whose directory is not dir.
func (idx *Index) Without(dir string) []Entry {
	out := make([]Entry, 0, len(idx.entries))
	for _, e := range idx.entries {
		if pathutil.Same(e.Dir, dir) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// walk calls fn for each skill directory under root in directory name order
// until fn returns false.
func walk(root string, fn func(dir string) bool) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return apperrors.FromFS(err, fmt.Sprintf("skills root %s", root))
	}

	// os.ReadDir sorts by filename
	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())
		if !isDir(dir, entry) {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, pathutil.DescriptorFile)); err != nil {
			continue
		}
		if !fn(dir) {
			return nil
		}
	}
	return nil
}

func isDir(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
