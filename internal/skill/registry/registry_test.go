package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/harunnryd/skillref/internal/errors"
)

func writeSkill(t *testing.T, root, dir, content string) string {
	t.Helper()
	skillDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0o644))
	return skillDir
}

func descriptor(name string) string {
	return "---\nname: " + name + "\ndescription: test skill\n---\n"
}

func TestScan_OrderedByDirectoryName(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "zeta", descriptor("zeta"))
	writeSkill(t, root, "alpha", descriptor("alpha"))
	writeSkill(t, root, "mid", descriptor("mid"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "no-descriptor"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("hi"), 0o644))

	idx, err := Scan(root)
	require.NoError(t, err)

	var names []string
	for _, e := range idx.Entries() {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
	assert.Empty(t, idx.Failures())
	assert.Equal(t, root, idx.Root())
}

func TestScan_RecordsFailures(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "good", descriptor("good"))
	broken := writeSkill(t, root, "broken", "no frontmatter here")

	idx, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, 1, idx.Len())
	require.Len(t, idx.Failures(), 1)
	assert.Equal(t, broken, idx.Failures()[0].Path)
	assert.True(t, errors.Is(idx.Failures()[0], apperrors.ErrFormat))
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestFindSkillByName(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "a-broken", "---\nname: [oops\n---\n")
	want := writeSkill(t, root, "b-dir", descriptor("target"))
	writeSkill(t, root, "c-dir", descriptor("target"))

	entry, ok := FindSkillByName(root, "target")
	require.True(t, ok)
	assert.Equal(t, want, entry.Dir, "first directory in name order wins")
	assert.Equal(t, "b-dir", entry.DirName())

	_, ok = FindSkillByName(root, "missing")
	assert.False(t, ok)

	_, ok = FindSkillByName(filepath.Join(root, "nope"), "target")
	assert.False(t, ok)
}

func TestIndex_LookupAndWithout(t *testing.T) {
	root := t.TempDir()
	first := writeSkill(t, root, "one", descriptor("dup"))
	writeSkill(t, root, "two", descriptor("dup"))
	writeSkill(t, root, "three", descriptor("other"))

	idx, err := Scan(root)
	require.NoError(t, err)

	e, ok := idx.Lookup("dup")
	require.True(t, ok)
	assert.Equal(t, first, e.Dir)
	assert.True(t, idx.Has("other"))
	assert.False(t, idx.Has("ghost"))

	rest := idx.Without(first)
	assert.Len(t, rest, 2)
	for _, e := range rest {
		assert.NotEqual(t, first, e.Dir)
	}
}
