package descriptor

import (
	"fmt"
	"regexp"
)

// Requirement is a single-specifier dependency constraint such as "notebook>=5".
type Requirement struct {
	Name     string
	Operator string
	Version  string
}

var requirementRegex = regexp.MustCompile(
	`^\s*([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)` + // project name
		`\s*(?:(===|==|>=|<=|~=|!=|>|<)\s*([A-Za-z0-9.*+!_-]+))?\s*$`, // optional specifier
)

// ParseRequirement parses a requirement string with at most one specifier.
func ParseRequirement(s string) (Requirement, error) {
	m := requirementRegex.FindStringSubmatch(s)
	if m == nil {
		return Requirement{}, fmt.Errorf("invalid requirement %q", s)
	}
	return Requirement{Name: m[1], Operator: m[2], Version: m[3]}, nil
}

func (r Requirement) String() string {
	return r.Name + r.Operator + r.Version
}
