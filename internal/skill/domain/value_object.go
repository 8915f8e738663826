package domain

// Version is an optional version string. The zero value is "not declared",
// which is distinct from a version declared as the empty string.
type Version struct {
	value   string
	present bool
}

func NoVersion() Version {
	return Version{}
}

func VersionOf(s string) Version {
	return Version{value: s, present: true}
}

func (v Version) Get() (string, bool) {
	return v.value, v.present
}

func (v Version) IsSet() bool {
	return v.present
}

func (v Version) String() string {
	return v.value
}

// OptionalPath is a relative path that may be absent.
type OptionalPath struct {
	value   string
	present bool
}

func NoPath() OptionalPath {
	return OptionalPath{}
}

func PathOf(p string) OptionalPath {
	return OptionalPath{value: p, present: true}
}

func (p OptionalPath) Get() (string, bool) {
	return p.value, p.present
}

func (p OptionalPath) IsSet() bool {
	return p.present
}

func (p OptionalPath) String() string {
	return p.value
}

type SkillValidationError struct {
	Field   string
	Message string
	Code    SkillValidationCode
}

func (e *SkillValidationError) Error() string {
	if e.Code != "" {
		return string(e.Code) + ": " + e.Field + " - " + e.Message
	}
	return e.Field + " - " + e.Message
}

type SkillValidationCode string

const (
	CodeMissingField  SkillValidationCode = "MISSING_FIELD"
	CodeInvalidFormat SkillValidationCode = "INVALID_FORMAT"
)
