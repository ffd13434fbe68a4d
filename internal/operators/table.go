// Package operators holds the binary operator table that drives
// precedence climbing. Levels are dense, starting at 1 for the
// tightest-binding group; the highest level binds loosest.
package operators

import (
	"fmt"
	"math"
)

type Assoc int

const (
	Left Assoc = iota
	Right
)

func (a Assoc) String() string {
	if a == Right {
		return "right"
	}
	return "left"
}

// ParseAssoc accepts "left" or "right".
func ParseAssoc(s string) (Assoc, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Left, fmt.Errorf("unknown associativity %q (want left or right)", s)
}

// NoOpLevel is the level reported for lexemes that are not operators. It is
// larger than any real level, so a failed lookup never matches.
const NoOpLevel = math.MaxInt

// Info describes one operator.
type Info struct {
	Level int
	Assoc Assoc
}

// IsOperator reports whether the lookup that produced i succeeded.
func (i Info) IsOperator() bool {
	return i.Level != NoOpLevel
}

// Table is immutable once built.
type Table struct {
	ops      map[string]Info
	maxLevel int
}

func (t *Table) Lookup(lexeme string) Info {
	if info, ok := t.ops[lexeme]; ok {
		return info
	}
	return Info{Level: NoOpLevel}
}

func (t *Table) MaxLevel() int {
	return t.maxLevel
}

// Default is the table for the standard language: ** binds tightest, then
// * and /, then + and -, then assignment.
func Default() *Table {
	t, err := NewBuilder().
		Add(Right, "**").
		Add(Left, "*", "/").
		Add(Left, "+", "-").
		Add(Right, "=").
		Build()
	if err != nil {
		panic(err)
	}
	return t
}
