package toml

// parseArray parses a `[...]` literal, the opening bracket not yet
// consumed. Comments, newlines, and a single trailing comma are all
// permitted between elements. An array whose elements are inline tables
// builds an inline TableArray instead of a plain Array -- the same shape
// cpptoml's parser produces for `[{...}, {...}]`, so it can round-trip
// through the writer as a TableArray rather than an unwritable Array of
// Tables.
func (s *scanner) parseArray() (Node, error) {
	s.pos++ // '['
	var arr *Array
	var tables []*Table
	haveTables := false
	for {
		s.skipArrayFiller()
		if s.peek() == ']' {
			s.pos++
			return s.finishArray(arr, haveTables, tables), nil
		}
		if s.atEnd() {
			return nil, s.errf(ErrSyntax, "unterminated array")
		}
		v, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		if t, ok := v.(*Table); ok {
			if arr != nil {
				return nil, s.errf(ErrHomogeneity, "array elements must share kind: have %s, got %s", arr.Kind(), KindTable)
			}
			haveTables = true
			tables = append(tables, t)
		} else {
			if haveTables {
				return nil, s.errf(ErrHomogeneity, "array holds inline tables, cannot insert a %s", v.Kind())
			}
			if arr == nil {
				arr = NewArray()
			}
			if err := arr.Push(v); err != nil {
				return nil, s.wrapModelErr(err)
			}
		}
		s.skipArrayFiller()
		switch s.peek() {
		case ',':
			s.pos++
		case ']':
			s.pos++
			return s.finishArray(arr, haveTables, tables), nil
		default:
			return nil, s.errf(ErrSyntax, "expected ',' or ']' in array")
		}
	}
}

// finishArray resolves the array/TableArray built by parseArray into the
// single Node it returns: an empty literal is a plain empty Array.
func (s *scanner) finishArray(arr *Array, haveTables bool, tables []*Table) Node {
	if haveTables {
		return NewInlineTableArray(tables)
	}
	if arr == nil {
		arr = NewArray()
	}
	return arr
}

// skipArrayFiller consumes whitespace, newlines, and comments, all of
// which are insignificant between array elements.
func (s *scanner) skipArrayFiller() {
	for {
		s.skipSpaces()
		switch {
		case s.peek() == '\n' || s.peek() == '\r':
			s.consumeEOL()
		case s.peek() == '#':
			s.skipComment()
		default:
			return
		}
	}
}
