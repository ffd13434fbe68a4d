package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/simplelang/internal/operators"
)

// Profile represents a simplelang.yaml language profile.
type Profile struct {
	// Name is the base profile: "classic" (default) or "extended".
	Name string `yaml:"profile,omitempty"`

	// ExpressionStatements overrides the base profile's choice of whether a
	// bare expression followed by ';' is a statement.
	ExpressionStatements *bool `yaml:"expression_statements,omitempty"`

	// Operators replaces the built-in operator table. Groups are listed
	// tightest-binding first; each group is one precedence level.
	Operators []OperatorGroup `yaml:"operators,omitempty"`
}

// OperatorGroup is one precedence level.
type OperatorGroup struct {
	Assoc string   `yaml:"assoc"`
	Ops   []string `yaml:"ops"`
}

// knownOperators are the lexemes the lexer produces and the evaluator
// implements.
var knownOperators = map[string]bool{
	"=":  true,
	"+":  true,
	"-":  true,
	"*":  true,
	"/":  true,
	"**": true,
}

// DefaultProfile is used when no profile file is found.
func DefaultProfile() *Profile {
	return &Profile{Name: ProfileClassic}
}

// LoadProfile reads and parses a simplelang.yaml file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	return ParseProfile(data, path)
}

// ParseProfile parses simplelang.yaml content from bytes.
// The path argument is used only for error messages.
func ParseProfile(data []byte, path string) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	p.setDefaults()
	if err := p.validate(path); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindProfile searches for simplelang.yaml starting from dir and walking up
// to parent directories. It returns "" and a nil error when none exists.
func FindProfile(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ProfileFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

func (p *Profile) setDefaults() {
	if p.Name == "" {
		p.Name = ProfileClassic
	}
}

// validate checks the profile for semantic errors.
func (p *Profile) validate(path string) error {
	if p.Name != ProfileClassic && p.Name != ProfileExtended {
		return fmt.Errorf("%s: unknown profile %q (want %s or %s)", path, p.Name, ProfileClassic, ProfileExtended)
	}
	for i, group := range p.Operators {
		if _, err := operators.ParseAssoc(group.Assoc); err != nil {
			return fmt.Errorf("%s: operators[%d]: %w", path, i, err)
		}
		for _, op := range group.Ops {
			if !knownOperators[op] {
				return fmt.Errorf("%s: operators[%d]: unsupported operator %q", path, i, op)
			}
		}
	}
	if len(p.Operators) > 0 {
		if _, err := p.OperatorTable(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// AllowsExpressionStatements resolves the base profile and its override.
func (p *Profile) AllowsExpressionStatements() bool {
	if p.ExpressionStatements != nil {
		return *p.ExpressionStatements
	}
	return p.Name == ProfileExtended
}

// OperatorTable builds the table described by the profile, or the default
// table when the profile does not define one.
func (p *Profile) OperatorTable() (*operators.Table, error) {
	if len(p.Operators) == 0 {
		return operators.Default(), nil
	}
	b := operators.NewBuilder()
	for _, group := range p.Operators {
		assoc, err := operators.ParseAssoc(group.Assoc)
		if err != nil {
			return nil, err
		}
		b.Add(assoc, group.Ops...)
	}
	return b.Build()
}
