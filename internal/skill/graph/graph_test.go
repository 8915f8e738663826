package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, root, name, body string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "---\nname: " + name + "\ndescription: test skill\n" + body + "---\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644))
	return dir
}

func TestCyclesFromAnyRoot_TwoNodeCycle(t *testing.T) {
	g := New()
	g.AddSkill("a", []string{"b"})
	g.AddSkill("b", []string{"a"})

	cycles := g.CyclesFromAnyRoot()
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"a", "b", "a"}, cycles[0])
	assert.True(t, Involves(cycles, "a"))
	assert.True(t, Involves(cycles, "b"))
	assert.Equal(t, "a -> b -> a", FormatCycle(cycles[0]))
}

func TestCyclesFromAnyRoot_DAG(t *testing.T) {
	g := New()
	g.AddSkill("a", []string{"b"})
	g.AddSkill("b", []string{"c"})
	g.AddSkill("c", nil)

	assert.Empty(t, g.CyclesFromAnyRoot())
}

func TestCyclesFromAnyRoot_SelfLoopAndUnresolved(t *testing.T) {
	g := New()
	g.AddSkill("solo", []string{"solo", "ghost"})

	cycles := g.CyclesFromAnyRoot()
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"solo", "solo"}, cycles[0])
	assert.False(t, Involves(cycles, "ghost"))
}

func TestCyclesFromAnyRoot_CycleBehindEntryPoint(t *testing.T) {
	g := New()
	g.AddSkill("entry", []string{"x"})
	g.AddSkill("x", []string{"y"})
	g.AddSkill("y", []string{"z"})
	g.AddSkill("z", []string{"x"})

	cycles := g.CyclesFromAnyRoot()
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"x", "y", "z", "x"}, cycles[0])
	assert.False(t, Involves(cycles, "entry"))
}

func TestCyclesFromAnyRoot_RepeatedReports(t *testing.T) {
	g := New()
	g.AddSkill("a", []string{"b"})
	g.AddSkill("b", []string{"a", "a"})

	cycles := g.CyclesFromAnyRoot()
	assert.Len(t, cycles, 2)
	assert.Len(t, Deduplicate(cycles), 1)
}

func TestDeduplicate_Rotations(t *testing.T) {
	cycles := [][]string{
		{"b", "c", "a", "b"},
		{"a", "b", "c", "a"},
		{"c", "a", "b", "c"},
		{"d", "d"},
	}

	got := Deduplicate(cycles)
	assert.Equal(t, [][]string{
		{"a", "b", "c", "a"},
		{"d", "d"},
	}, got)
}

func TestAddSkill_FirstWins(t *testing.T) {
	g := New()
	g.AddSkill("dup", []string{"x"})
	g.AddSkill("dup", []string{"y"})

	assert.Equal(t, []string{"dup"}, g.Nodes())
	assert.Equal(t, []string{"x"}, g.Requires("dup"))
}

func TestBuild_FromRoot(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "alpha", "requires:\n  - skill: beta\n")
	writeSkill(t, root, "beta", "requires:\n  - skill: alpha\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "broken"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "broken", "SKILL.md"), []byte("nope"), 0o644))

	g, err := Build(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, g.Nodes())
	assert.True(t, g.Has("alpha"))

	cycles := g.CyclesFromAnyRoot()
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"alpha", "beta", "alpha"}, cycles[0])
}
