package toml

// TableArray is an ordered sequence of Tables. The inline flag
// distinguishes a non-inline table array -- built up across repeated
// `[[name]]` headers, and the only form that may be appended to by a
// later header -- from one constructed as the value of an inline
// `{...}` / `[...]` literal, which is closed on creation.
type TableArray struct {
	tables []*Table
	inline bool
}

// NewTableArray returns an empty TableArray with the given inline flag.
func NewTableArray(inline bool) *TableArray {
	return &TableArray{inline: inline}
}

// NewInlineTableArray returns a closed, inline TableArray holding tables
// directly -- the constructor the parser uses to build the result of an
// array-of-inline-tables literal like `a = [{x=1}, {x=2}]`, bypassing
// Append's refusal (which exists to stop a later `[[name]]` header from
// extending an array that was never opened by one).
func NewInlineTableArray(tables []*Table) *TableArray {
	return &TableArray{inline: true, tables: tables}
}

func (ta *TableArray) Kind() Kind         { return KindTableArray }
func (ta *TableArray) IsScalar() bool     { return false }
func (ta *TableArray) IsTable() bool      { return false }
func (ta *TableArray) IsArray() bool      { return false }
func (ta *TableArray) IsTableArray() bool { return true }

func (ta *TableArray) Clone() Node {
	out := &TableArray{inline: ta.inline, tables: make([]*Table, len(ta.tables))}
	for i, t := range ta.tables {
		out.tables[i] = t.Clone().(*Table)
	}
	return out
}

// Inline reports whether this table array was constructed as an inline
// literal rather than a sequence of `[[name]]` headers.
func (ta *TableArray) Inline() bool { return ta.inline }

// Len reports the number of tables.
func (ta *TableArray) Len() int { return len(ta.tables) }

// Get returns the table at index i, or ok=false if out of range.
func (ta *TableArray) Get(i int) (*Table, bool) {
	if i < 0 || i >= len(ta.tables) {
		return nil, false
	}
	return ta.tables[i], true
}

// Range calls fn for each table in order, stopping early if fn returns
// false.
func (ta *TableArray) Range(fn func(i int, t *Table) bool) {
	for i, t := range ta.tables {
		if !fn(i, t) {
			return
		}
	}
}

// Append adds t to the sequence. It fails if this table array is inline:
// only a non-inline table array built from `[[name]]` headers may be
// extended by a later header.
func (ta *TableArray) Append(t *Table) error {
	if ta.inline {
		return newModelError(ErrSemantic, "static array cannot be appended to")
	}
	ta.tables = append(ta.tables, t)
	return nil
}
