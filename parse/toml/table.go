package toml

import "strings"

// tableState tracks how a Table came to exist, driving the re-entry and
// closed-for-insertion rules in the parser.
type tableState uint8

const (
	// tableImplicit is the state of a table created only as a prefix
	// while resolving a dotted header or dotted key. It may later be
	// upgraded to tableExplicitHeader by a `[section]` header, provided
	// it holds no direct scalar/array values yet.
	tableImplicit tableState = iota
	// tableExplicitHeader is set by a `[section]` header. It may not be
	// reopened by a second header at the same path, but key/value and
	// child-table inserts remain allowed.
	tableExplicitHeader
	// tableExplicitInline is set by an inline-table literal. It is
	// closed permanently: no insert, of any kind, ever succeeds again.
	tableExplicitInline
)

// Table is a mapping from string key to Node. Iteration order is
// unspecified, matching the TOML data model's own lack of key ordering.
type Table struct {
	items map[string]Node
	state tableState
}

// NewTable returns an empty, implicitly-stated Table.
func NewTable() *Table {
	return &Table{items: make(map[string]Node)}
}

func (t *Table) Kind() Kind         { return KindTable }
func (t *Table) IsScalar() bool     { return false }
func (t *Table) IsTable() bool      { return true }
func (t *Table) IsArray() bool      { return false }
func (t *Table) IsTableArray() bool { return false }

func (t *Table) Clone() Node {
	out := &Table{items: make(map[string]Node, len(t.items)), state: t.state}
	for k, v := range t.items {
		out.items[k] = v.Clone()
	}
	return out
}

// Len reports the number of direct entries.
func (t *Table) Len() int { return len(t.items) }

// Contains reports whether key is a direct entry of t.
func (t *Table) Contains(key string) bool {
	_, ok := t.items[key]
	return ok
}

// Get returns the direct entry for key, or ok=false if absent.
func (t *Table) Get(key string) (Node, bool) {
	n, ok := t.items[key]
	return n, ok
}

// Insert sets key to n, overwriting any existing entry. It fails if t
// was closed by an inline-table literal.
func (t *Table) Insert(key string, n Node) error {
	if t.state == tableExplicitInline {
		return newModelError(ErrSemantic, "table is closed, cannot insert %q", key)
	}
	t.items[key] = n
	return nil
}

// Erase removes key if present.
func (t *Table) Erase(key string) {
	delete(t.items, key)
}

// Range calls fn for each (key, Node) pair, stopping early if fn returns
// false. Iteration order is unspecified.
func (t *Table) Range(fn func(key string, n Node) bool) {
	for k, v := range t.items {
		if !fn(k, v) {
			return
		}
	}
}

// Keys returns the direct keys in unspecified order.
func (t *Table) Keys() []string {
	out := make([]string, 0, len(t.items))
	for k := range t.items {
		out = append(out, k)
	}
	return out
}

// hasDirectValue reports whether t holds any direct Scalar or Array
// child -- the condition that forbids reopening an implicit table with a
// second `[section]` header.
func (t *Table) hasDirectValue() bool {
	for _, v := range t.items {
		if v.IsScalar() || v.IsArray() {
			return true
		}
	}
	return false
}

// reopenAsExplicitHeader applies the `[section]` re-entry rule: allowed
// only when t is still implicit and holds no direct value yet.
func (t *Table) reopenAsExplicitHeader(path string) error {
	if t.state != tableImplicit {
		return newModelError(ErrSemantic, "redefinition of table %q", path)
	}
	if t.hasDirectValue() {
		return newModelError(ErrSemantic, "redefinition of table %q", path)
	}
	t.state = tableExplicitHeader
	return nil
}

// closeRecursively marks t, and every Table reachable through its
// children (directly or via a TableArray), as permanently closed. This is
// applied once to the root of an inline-table literal after it has been
// fully parsed, since TOML treats an entire inline table -- including any
// tables nested inside it -- as closed to further header-based mutation.
func (t *Table) closeRecursively() {
	t.state = tableExplicitInline
	for _, v := range t.items {
		switch n := v.(type) {
		case *Table:
			n.closeRecursively()
		case *TableArray:
			for _, sub := range n.tables {
				sub.closeRecursively()
			}
		}
	}
}

// ContainsQualified reports whether the dotted path resolves to an
// existing entry, descending only through Tables; any non-Table
// intermediate makes the path absent.
func (t *Table) ContainsQualified(path string) bool {
	_, ok := t.GetQualified(path)
	return ok
}

// GetQualified descends the dotted path "a.b.c", requiring every
// intermediate component to resolve to a Table.
func (t *Table) GetQualified(path string) (Node, bool) {
	parts := strings.Split(path, ".")
	cur := t
	for i, part := range parts {
		n, ok := cur.items[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return n, true
		}
		next, ok := n.(*Table)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// GetQualifiedErr is the fetch form of GetQualified: it fails with a
// ModelError(ErrNotFound) instead of returning ok=false.
func (t *Table) GetQualifiedErr(path string) (Node, error) {
	n, ok := t.GetQualified(path)
	if !ok {
		return nil, newModelError(ErrNotFound, "qualified key %q not found", path)
	}
	return n, nil
}

// GetStringQualified descends path and coerces the result to a string.
func (t *Table) GetStringQualified(path string) (string, bool) {
	n, ok := t.GetQualified(path)
	if !ok {
		return "", false
	}
	s, ok := n.(*Scalar)
	if !ok || s.ScalarKind != ScalarString {
		return "", false
	}
	return s.Val.(string), true
}

// GetIntQualified descends path and coerces the result to an int64.
func (t *Table) GetIntQualified(path string) (int64, bool) {
	n, ok := t.GetQualified(path)
	if !ok {
		return 0, false
	}
	s, ok := n.(*Scalar)
	if !ok || s.ScalarKind != ScalarInt {
		return 0, false
	}
	return s.Val.(int64), true
}

// GetFloatQualified descends path and coerces the result to a float64,
// widening an Integer scalar losslessly.
func (t *Table) GetFloatQualified(path string) (float64, bool) {
	n, ok := t.GetQualified(path)
	if !ok {
		return 0, false
	}
	s, ok := n.(*Scalar)
	if !ok {
		return 0, false
	}
	f, err := s.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// GetBoolQualified descends path and coerces the result to a bool.
func (t *Table) GetBoolQualified(path string) (bool, bool) {
	n, ok := t.GetQualified(path)
	if !ok {
		return false, false
	}
	s, ok := n.(*Scalar)
	if !ok || s.ScalarKind != ScalarBool {
		return false, false
	}
	return s.Val.(bool), true
}

// GetTableQualified descends path and downcasts the result to a Table.
func (t *Table) GetTableQualified(path string) (*Table, bool) {
	n, ok := t.GetQualified(path)
	if !ok {
		return nil, false
	}
	return AsTable(n)
}

// GetArrayQualified descends path and downcasts the result to an Array.
func (t *Table) GetArrayQualified(path string) (*Array, bool) {
	n, ok := t.GetQualified(path)
	if !ok {
		return nil, false
	}
	return AsArray(n)
}
