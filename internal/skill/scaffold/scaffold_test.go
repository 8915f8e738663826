package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/harunnryd/skillref/internal/errors"
	"github.com/harunnryd/skillref/internal/skill/parser"
)

func writeSkill(t *testing.T, root, dir, content string) {
	t.Helper()
	path := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(path, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "SKILL.md"), []byte(content), 0644))
}

func TestInitPopulatesRequires(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "alpha", "---\nname: alpha\ndescription: a\nmetadata:\n  version: \"1.2\"\n---\n")
	writeSkill(t, root, "beta", "---\nname: beta\ndescription: b\n---\n")
	writeSkill(t, root, "broken", "nothing to see")

	target := filepath.Join(root, "fresh")
	res, err := Init(context.Background(), target, root, Options{})
	require.NoError(t, err)

	require.Len(t, res.Populated, 2)
	assert.Equal(t, "alpha", res.Populated[0].Name())
	assert.Equal(t, "beta", res.Populated[1].Name())

	content, err := os.ReadFile(res.SkillFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "requires:\n  - skill: alpha\n    version: \"1.2\"\n  - skill: beta\ntest:")
	assert.Contains(t, string(content), "# fresh\n")

	// the generated descriptor is itself a valid skill
	meta, err := parser.ParseDescriptor(string(content))
	require.NoError(t, err)
	assert.Equal(t, "fresh", meta.Name())
	assert.Equal(t, []string{"alpha", "beta"}, meta.RequiredNames())
	assert.Equal(t, 60*time.Second, meta.TestConfig().Timeout)

	cases, err := parser.LoadTestCases(target, "test/cases.yaml")
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "basic_test", cases[0].Name)

	_, err = os.Stat(filepath.Join(target, LockFile))
	assert.True(t, os.IsNotExist(err), "lock file should be removed")
}

func TestInitEmptyRoot(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "solo")

	res, err := Init(context.Background(), target, root, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Populated)

	content, err := os.ReadFile(res.SkillFile)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "requires:")
	assert.Contains(t, string(content), "  version: \"1.0.0\"\n\ntest:")
}

func TestInitRefusesExistingDescriptor(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "taken", "---\nname: taken\ndescription: x\n---\n")
	target := filepath.Join(root, "taken")

	_, err := Init(context.Background(), target, root, Options{})
	require.Error(t, err)
	assert.True(t, apperrors.IsCategory(err, apperrors.ErrInvalidInput))

	res, err := Init(context.Background(), target, root, Options{Overwrite: true})
	require.NoError(t, err)
	assert.Empty(t, res.Populated, "skill must not require itself")
}

func TestInitLockedDirectory(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "busy")
	require.NoError(t, os.MkdirAll(target, 0755))

	holder := flock.New(filepath.Join(target, LockFile))
	locked, err := holder.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer holder.Unlock()

	_, err = Init(context.Background(), target, root, Options{
		Lock: &LockConfig{Timeout: 50 * time.Millisecond, Retry: 10 * time.Millisecond, MaxRetry: 3},
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "locked") || strings.Contains(err.Error(), "cancelled"))
}

func TestRenderDescriptorWithoutRequires(t *testing.T) {
	out := RenderDescriptor("demo", nil)
	assert.True(t, strings.HasPrefix(out, "---\nname: demo\n"))
	assert.Contains(t, out, "description: TODO - Describe what this skill does and when to use it.")
}
