package operators

import "fmt"

// ConfigError reports an invalid table definition.
type ConfigError struct {
	Group   int
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("operator group %d: %s", e.Group, e.Message)
}

// Builder assembles a Table one precedence group at a time. Each call to Add
// creates the next level, so groups must be added tightest first.
type Builder struct {
	groups [][]string
	assocs []Assoc
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Add(assoc Assoc, lexemes ...string) *Builder {
	b.groups = append(b.groups, lexemes)
	b.assocs = append(b.assocs, assoc)
	return b
}

func (b *Builder) Build() (*Table, error) {
	t := &Table{ops: make(map[string]Info)}
	for i, group := range b.groups {
		level := i + 1
		if len(group) == 0 {
			return nil, &ConfigError{Group: level, Message: "no operators"}
		}
		for _, lexeme := range group {
			if lexeme == "" {
				return nil, &ConfigError{Group: level, Message: "empty operator lexeme"}
			}
			if prev, ok := t.ops[lexeme]; ok {
				return nil, &ConfigError{
					Group:   level,
					Message: fmt.Sprintf("operator %q already registered at level %d", lexeme, prev.Level),
				}
			}
			t.ops[lexeme] = Info{Level: level, Assoc: b.assocs[i]}
		}
	}
	t.maxLevel = len(b.groups)
	return t, nil
}
