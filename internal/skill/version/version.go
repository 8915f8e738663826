// Package version compares declared skill versions against minimum
// constraints. It is best effort: strings that do not parse as semantic
// versions are compared lexicographically.
package version

import (
	"github.com/Masterminds/semver/v3"
)

type Mode string

const (
	ModeSemantic      Mode = "semver"
	ModeLexicographic Mode = "lexicographic"
)

type Comparison struct {
	Satisfied bool
	Mode      Mode
}

// Satisfies reports whether present >= required. Lexicographic fallback is
// deterministic but is not a true version ordering ("10.0" < "9.0").
func Satisfies(present, required string) Comparison {
	p, errP := semver.NewVersion(present)
	r, errR := semver.NewVersion(required)
	if errP != nil || errR != nil {
		return Comparison{Satisfied: present >= required, Mode: ModeLexicographic}
	}
	return Comparison{Satisfied: p.Compare(r) >= 0, Mode: ModeSemantic}
}
