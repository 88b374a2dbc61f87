package toml

// parseValue dispatches on the next character(s), classifying the token
// before committing to a sub-parser: strings and the two composite
// literals are unambiguous from their first byte, booleans and
// date/time values are recognized from fixed-length literals or digit
// shape, and everything else falls through to the numeric parser.
func (s *scanner) parseValue() (Node, error) {
	switch s.peek() {
	case '"', '\'':
		str, err := s.parseString()
		if err != nil {
			return nil, err
		}
		return NewStringScalar(str), nil
	case '[':
		return s.parseArray()
	case '{':
		return s.parseInlineTable()
	case 't':
		if s.matchLiteral("true") {
			return NewBoolScalar(true), nil
		}
		return nil, s.errf(ErrSyntax, "invalid value")
	case 'f':
		if s.matchLiteral("false") {
			return NewBoolScalar(false), nil
		}
		return nil, s.errf(ErrSyntax, "invalid value")
	}
	if s.looksLikeDate() {
		v, err := s.parseDateOrDateTime()
		return v, err
	}
	if s.looksLikeTime() {
		v, err := s.parseBareTime()
		return v, err
	}
	if isDigit(s.peek()) || s.peek() == '+' || s.peek() == '-' || s.peek() == 'i' || s.peek() == 'n' {
		return s.parseNumberOrDate()
	}
	return nil, s.errf(ErrSyntax, "unrecognized value")
}
