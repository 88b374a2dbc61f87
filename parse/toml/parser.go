package toml

import "io"

// Parse reads a complete TOML document from r and returns its root
// Table. Parsing stops at the first error; there is no recovery.
func Parse(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseBytes parses a complete TOML document already held in memory.
func ParseBytes(data []byte) (*Table, error) {
	s := newScanner(data)
	root := NewTable()
	current := root
	for {
		s.skipBlankLinesAndComments()
		if s.atEnd() {
			return root, nil
		}
		if s.peek() == '[' {
			next, err := s.parseHeader(root)
			if err != nil {
				return nil, err
			}
			current = next
			continue
		}
		if err := s.parseKeyValueLine(current); err != nil {
			return nil, err
		}
	}
}

// parseHeader parses a `[table]` or `[[array]]` header line and returns
// the Table that subsequent key/value lines should populate.
func (s *scanner) parseHeader(root *Table) (*Table, error) {
	headerLine := s.line
	s.pos++ // '['
	isArray := false
	if s.peek() == '[' {
		isArray = true
		s.pos++
	}
	path, err := s.parseKeyPath()
	if err != nil {
		return nil, err
	}
	if err := s.expectByte(']'); err != nil {
		return nil, err
	}
	if isArray {
		if s.peek() != ']' {
			return nil, s.errf(ErrSyntax, "expected ']]' to close table array header")
		}
		s.pos++
	}
	if err := s.expectLineEnd(); err != nil {
		return nil, err
	}
	if isArray {
		t, err := resolveTableArrayHeader(root, path)
		return t, wrapModelErrAt(err, headerLine)
	}
	t, err := resolveTableHeader(root, path)
	return t, wrapModelErrAt(err, headerLine)
}

// resolveTableHeader walks path from root, creating implicit
// intermediate tables, and returns the final table, applying the
// re-entry rule (see Table.reopenAsExplicitHeader) to the last
// component.
func resolveTableHeader(root *Table, path []string) (*Table, error) {
	cur := root
	for i, key := range path {
		last := i == len(path)-1
		existing, ok := cur.Get(key)
		if !ok {
			t := NewTable()
			if err := cur.Insert(key, t); err != nil {
				return nil, err
			}
			if last {
				t.state = tableExplicitHeader
			}
			cur = t
			continue
		}
		switch n := existing.(type) {
		case *Table:
			if last {
				if err := n.reopenAsExplicitHeader(joinDotted(path)); err != nil {
					return nil, err
				}
			}
			cur = n
		case *TableArray:
			if last {
				return nil, newModelError(ErrSemantic, "redefinition of %q as a table", joinDotted(path))
			}
			t, ok := n.Get(n.Len() - 1)
			if !ok {
				return nil, newModelError(ErrSemantic, "cannot descend into empty table array %q", joinDotted(path))
			}
			cur = t
		default:
			return nil, newModelError(ErrSemantic, "key %q is not a table", joinDotted(path[:i+1]))
		}
	}
	return cur, nil
}

// resolveTableArrayHeader walks path from root, creating implicit
// intermediate tables, appends a fresh Table to the TableArray named by
// the final component (creating it if absent), and returns that table.
func resolveTableArrayHeader(root *Table, path []string) (*Table, error) {
	cur := root
	for i, key := range path[:len(path)-1] {
		existing, ok := cur.Get(key)
		if !ok {
			t := NewTable()
			if err := cur.Insert(key, t); err != nil {
				return nil, err
			}
			cur = t
			continue
		}
		switch n := existing.(type) {
		case *Table:
			cur = n
		case *TableArray:
			t, ok := n.Get(n.Len() - 1)
			if !ok {
				return nil, newModelError(ErrSemantic, "cannot descend into empty table array %q", joinDotted(path[:i+1]))
			}
			cur = t
		default:
			return nil, newModelError(ErrSemantic, "key %q is not a table", joinDotted(path[:i+1]))
		}
	}
	last := path[len(path)-1]
	existing, ok := cur.Get(last)
	if !ok {
		ta := NewTableArray(false)
		if err := cur.Insert(last, ta); err != nil {
			return nil, err
		}
		existing = ta
	}
	ta, ok := existing.(*TableArray)
	if !ok {
		return nil, newModelError(ErrSemantic, "redefinition of %q as a table array", joinDotted(path))
	}
	t := NewTable()
	if err := ta.Append(t); err != nil {
		return nil, err
	}
	return t, nil
}

// parseKeyValueLine parses "key = value" and inserts it, following
// dotted keys by creating implicit intermediate tables.
func (s *scanner) parseKeyValueLine(into *Table) error {
	path, err := s.parseKeyPath()
	if err != nil {
		return err
	}
	s.skipSpaces()
	if err := s.expectByte('='); err != nil {
		return err
	}
	s.skipSpaces()
	v, err := s.parseValue()
	if err != nil {
		return err
	}
	if err := insertQualified(into, path, v); err != nil {
		return s.wrapModelErr(err)
	}
	s.skipSpaces()
	return s.expectLineEnd()
}

// insertQualified descends path, creating implicit intermediate tables,
// and inserts v at the final component. It fails if any intermediate is
// not a Table, or the final key already holds a value.
func insertQualified(into *Table, path []string, v Node) error {
	cur := into
	for _, key := range path[:len(path)-1] {
		existing, ok := cur.Get(key)
		if !ok {
			t := NewTable()
			if err := cur.Insert(key, t); err != nil {
				return err
			}
			cur = t
			continue
		}
		t, ok := existing.(*Table)
		if !ok {
			return newModelError(ErrSemantic, "key %q is not a table", joinDotted(path))
		}
		cur = t
	}
	last := path[len(path)-1]
	if cur.Contains(last) {
		return newModelError(ErrSemantic, "duplicate key %q", joinDotted(path))
	}
	return cur.Insert(last, v)
}

// parseKeyPath parses one or more dot-separated key components, each
// either a bare key (letters, digits, '-', '_') or a quoted string.
func (s *scanner) parseKeyPath() ([]string, error) {
	var parts []string
	for {
		s.skipSpaces()
		part, err := s.parseKeyComponent()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		s.skipSpaces()
		if s.peek() != '.' {
			return parts, nil
		}
		s.pos++
	}
}

func (s *scanner) parseKeyComponent() (string, error) {
	switch s.peek() {
	case '"', '\'':
		return s.parseString()
	default:
		start := s.pos
		for isBareKeyByte(s.peek()) {
			s.pos++
		}
		if s.pos == start {
			return "", s.errf(ErrSyntax, "expected key, got %q", s.peek())
		}
		return string(s.data[start:s.pos]), nil
	}
}

func isBareKeyByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_'
}

func joinDotted(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}

// expectLineEnd requires the rest of the line to be blank space, an
// optional comment, then a line terminator or end of input.
func (s *scanner) expectLineEnd() error {
	s.skipSpaces()
	if s.peek() == '#' {
		s.skipComment()
	}
	if s.atEnd() {
		return nil
	}
	if s.peek() == '\n' || s.peek() == '\r' {
		s.consumeEOL()
		return nil
	}
	return s.errf(ErrSyntax, "unexpected trailing content %q", s.peek())
}
