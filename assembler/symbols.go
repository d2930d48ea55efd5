package assembler

// SymbolTable maps label names to byte offsets from the start of the program.
type SymbolTable struct {
	offsets map[string]int64
	names   []string
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{offsets: make(map[string]int64)}
}

// Define records a label. A redefinition replaces the earlier offset and
// reports true.
func (st *SymbolTable) Define(name string, offset int64) bool {
	_, dup := st.offsets[name]
	if !dup {
		st.names = append(st.names, name)
	}
	st.offsets[name] = offset
	return dup
}

// Lookup returns the offset of a label.
func (st *SymbolTable) Lookup(name string) (int64, bool) {
	off, ok := st.offsets[name]
	return off, ok
}

// Names returns the labels in order of first definition.
func (st *SymbolTable) Names() []string {
	return append([]string(nil), st.names...)
}

// Len returns the number of distinct labels.
func (st *SymbolTable) Len() int {
	return len(st.names)
}
