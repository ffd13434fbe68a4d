package symbols

// Declare inserts name with value 0.
func (st *SymbolTable) Declare(name string, line int) error {
	if prev, ok := st.entries[name]; ok {
		return &RedeclarationError{Name: name, Line: line, OriginalLine: prev.Line}
	}
	st.entries[name] = &Entry{Name: name, Line: line}
	return nil
}

func (st *SymbolTable) Read(name string) (int64, error) {
	entry, ok := st.entries[name]
	if !ok {
		return 0, &UndeclaredError{Name: name}
	}
	return entry.Value, nil
}

// Write updates a declared variable. Assignment never declares.
func (st *SymbolTable) Write(name string, value int64) error {
	entry, ok := st.entries[name]
	if !ok {
		return &UndeclaredError{Name: name}
	}
	entry.Value = value
	return nil
}

// Lookup returns a copy of the entry for name.
func (st *SymbolTable) Lookup(name string) (Entry, bool) {
	entry, ok := st.entries[name]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}
