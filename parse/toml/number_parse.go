package toml

import (
	"math"
	"strconv"
)

var (
	posInf   = math.Inf(1)
	negInf   = math.Inf(-1)
	nanValue = math.NaN()
)

// parseNumberOrDate is entered once the value classifier has determined
// the token starts with a sign, a digit, or the 'i'/'n' of an unsigned
// inf/nan, and is not a recognizable date/time shape. It tries, in order: special float forms (inf/nan),
// hex/octal/binary integers, then falls through to a combined
// decimal-integer-or-float scan.
func (s *scanner) parseNumberOrDate() (*Scalar, error) {
	start := s.pos
	sign := ""
	if s.peek() == '+' || s.peek() == '-' {
		sign = string(s.advance())
	}
	if s.matchLiteral("inf") {
		f := posInf
		if sign == "-" {
			f = negInf
		}
		return NewFloatScalar(f), nil
	}
	if s.matchLiteral("nan") {
		return NewFloatScalar(nanValue), nil
	}
	if sign == "" && s.peek() == '0' && isBasePrefix(s.peekAt(1)) {
		return s.parseRadixInt()
	}
	s.pos = start
	return s.parseDecimalNumber()
}

func isBasePrefix(c byte) bool { return c == 'x' || c == 'o' || c == 'b' }

func (s *scanner) matchLiteral(lit string) bool {
	for i := 0; i < len(lit); i++ {
		if s.peekAt(i) != lit[i] {
			return false
		}
	}
	s.pos += len(lit)
	return true
}

// parseRadixInt parses 0x/0o/0b-prefixed integers, with optional
// underscore digit separators. The leading '0' is already at s.pos.
func (s *scanner) parseRadixInt() (*Scalar, error) {
	s.pos++ // '0'
	base := s.advance()
	var digits string
	switch base {
	case 'x':
		digits = "0123456789abcdefABCDEF"
	case 'o':
		digits = "01234567"
	case 'b':
		digits = "01"
	}
	raw, err := s.scanDigitsWithUnderscores(digits)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, s.errf(ErrNumeric, "radix integer has no digits")
	}
	radix := map[byte]int{'x': 16, 'o': 8, 'b': 2}[base]
	v, err := strconv.ParseUint(raw, radix, 64)
	if err != nil {
		return nil, s.errf(ErrNumeric, "invalid base-%d integer %q", radix, raw)
	}
	return NewIntScalar(int64(v)), nil
}

// scanDigitsWithUnderscores consumes a run of characters in alphabet,
// allowing single underscores between digits, and returns the digits
// with underscores stripped.
func (s *scanner) scanDigitsWithUnderscores(alphabet string) (string, error) {
	var b []byte
	lastWasDigit := false
	for !s.atEnd() {
		c := s.peek()
		if c == '_' {
			if !lastWasDigit {
				return "", s.errf(ErrNumeric, "misplaced underscore in number")
			}
			s.pos++
			lastWasDigit = false
			continue
		}
		if !containsByte(alphabet, c) {
			break
		}
		b = append(b, c)
		s.pos++
		lastWasDigit = true
	}
	if len(b) > 0 && !lastWasDigit {
		return "", s.errf(ErrNumeric, "trailing underscore in number")
	}
	return string(b), nil
}

func containsByte(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return true
		}
	}
	return false
}

// parseDecimalNumber scans a signed decimal integer or float: digits,
// optional fractional part, optional exponent. The leading sign, if any,
// is re-scanned here (the caller resets s.pos to the start of the
// token).
func (s *scanner) parseDecimalNumber() (*Scalar, error) {
	start := s.pos
	if s.peek() == '+' || s.peek() == '-' {
		s.pos++
	}
	intPart, err := s.scanDigitsWithUnderscores("0123456789")
	if err != nil {
		return nil, err
	}
	if intPart == "" {
		return nil, s.errf(ErrNumeric, "number has no digits")
	}
	if len(intPart) > 1 && intPart[0] == '0' {
		return nil, s.errf(ErrNumeric, "leading zero not allowed in number %q", intPart)
	}
	isFloat := false
	if s.peek() == '.' {
		isFloat = true
		s.pos++
		frac, err := s.scanDigitsWithUnderscores("0123456789")
		if err != nil {
			return nil, err
		}
		if frac == "" {
			return nil, s.errf(ErrNumeric, "number has digits missing after decimal point")
		}
	}
	if s.peek() == 'e' || s.peek() == 'E' {
		isFloat = true
		s.pos++
		if s.peek() == '+' || s.peek() == '-' {
			s.pos++
		}
		exp, err := s.scanDigitsWithUnderscores("0123456789")
		if err != nil {
			return nil, err
		}
		if exp == "" {
			return nil, s.errf(ErrNumeric, "number has no digits in exponent")
		}
		if len(exp) > 1 && exp[0] == '0' {
			return nil, s.errf(ErrNumeric, "leading zero not allowed in exponent %q", exp)
		}
	}
	raw := stripUnderscores(string(s.data[start:s.pos]))
	if isFloat {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, s.errf(ErrNumeric, "invalid float %q", raw)
		}
		return NewFloatScalar(f), nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, s.errf(ErrNumeric, "invalid integer %q", raw)
	}
	return NewIntScalar(v), nil
}

func stripUnderscores(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
