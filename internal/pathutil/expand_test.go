package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpand_HomeShortcut(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("user home dir: %v", err)
	}

	got, err := Expand("~/.skills-ref/config.yaml")
	if err != nil {
		t.Fatalf("expand path: %v", err)
	}

	want := filepath.Join(home, ".skills-ref", "config.yaml")
	if got != want {
		t.Fatalf("path mismatch: got %q want %q", got, want)
	}
}

func TestExpand_EnvVar(t *testing.T) {
	t.Setenv("SKILLREF_PATH_TEST", "/tmp/skills")

	got, err := Expand("$SKILLREF_PATH_TEST/pdf-tools")
	if err != nil {
		t.Fatalf("expand path: %v", err)
	}

	want := filepath.Clean("/tmp/skills/pdf-tools")
	if got != want {
		t.Fatalf("path mismatch: got %q want %q", got, want)
	}
}

func TestExpand_Empty(t *testing.T) {
	got, err := Expand("   ")
	if err != nil || got != "" {
		t.Fatalf("Expand(blank) = %q, %v; want empty, nil", got, err)
	}
}

func TestSkillDir(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"skills/pdf-tools", filepath.Clean("skills/pdf-tools")},
		{"skills/pdf-tools/", filepath.Clean("skills/pdf-tools")},
		{"skills/pdf-tools/SKILL.md", filepath.Clean("skills/pdf-tools")},
		{"skills/pdf-tools/skill.md", filepath.Clean("skills/pdf-tools")},
	}

	for _, tt := range tests {
		got, err := SkillDir(tt.in)
		if err != nil {
			t.Fatalf("SkillDir(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("SkillDir(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := SkillDir(""); err == nil {
		t.Error("SkillDir(\"\") should error")
	}
}

func TestSame(t *testing.T) {
	root := t.TempDir()

	if Same(filepath.Dir(root), root) {
		t.Error("parent and child should differ")
	}
	if !Same(filepath.Join(root, "a", "..", "a"), filepath.Join(root, "a")) {
		t.Error("Same should normalize paths")
	}
}
