package symbols

import "fmt"

// Entry is a declared variable.
type Entry struct {
	Name  string
	Value int64
	Line  int // line of the declaration
}

// SymbolTable maps variable names to their current values. It is owned by a
// single run and is not safe for concurrent use.
type SymbolTable struct {
	entries map[string]*Entry
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{entries: make(map[string]*Entry)}
}

// RedeclarationError is returned by Declare for a name already present.
type RedeclarationError struct {
	Name         string
	Line         int
	OriginalLine int
}

func (e *RedeclarationError) Error() string {
	return fmt.Sprintf("redeclaration of variable '%s' on line %d (originally declared on line %d)",
		e.Name, e.Line, e.OriginalLine)
}

// UndeclaredError is returned when reading or writing an unknown name.
type UndeclaredError struct {
	Name string
}

func (e *UndeclaredError) Error() string {
	return fmt.Sprintf("unknown variable '%s'", e.Name)
}
