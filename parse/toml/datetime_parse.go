package toml

// looksLikeDate reports whether the next characters match the shape
// DDDD-DD-DD, the lookahead the value classifier uses to route into the
// date/time parser instead of the number parser.
func (s *scanner) looksLikeDate() bool {
	return isDigit(s.peekAt(0)) && isDigit(s.peekAt(1)) && isDigit(s.peekAt(2)) && isDigit(s.peekAt(3)) &&
		s.peekAt(4) == '-' &&
		isDigit(s.peekAt(5)) && isDigit(s.peekAt(6)) &&
		s.peekAt(7) == '-' &&
		isDigit(s.peekAt(8)) && isDigit(s.peekAt(9))
}

// looksLikeTime reports whether the next characters match the shape
// DD:DD:DD, the lookahead for a bare LocalTime.
func (s *scanner) looksLikeTime() bool {
	return s.looksLikeTimeAt(0)
}

// looksLikeTimeAt is looksLikeTime starting offset bytes ahead of the
// current position, used to probe past a date/time separator that has
// not been consumed yet.
func (s *scanner) looksLikeTimeAt(offset int) bool {
	return isDigit(s.peekAt(offset)) && isDigit(s.peekAt(offset+1)) &&
		s.peekAt(offset+2) == ':' &&
		isDigit(s.peekAt(offset+3)) && isDigit(s.peekAt(offset+4)) &&
		s.peekAt(offset+5) == ':' &&
		isDigit(s.peekAt(offset+6)) && isDigit(s.peekAt(offset+7))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseDateOrDateTime parses a LocalDate and then, if a 'T' or space
// separator and a time follow, continues into a LocalDateTime or
// OffsetDateTime.
func (s *scanner) parseDateOrDateTime() (*Scalar, error) {
	date, err := s.parseLocalDate()
	if err != nil {
		return nil, err
	}
	sep := s.peek()
	if sep != 'T' && sep != 't' && sep != ' ' {
		return NewLocalDateScalar(date), nil
	}
	if sep == ' ' && !s.looksLikeTimeAt(1) {
		return NewLocalDateScalar(date), nil
	}
	s.pos++
	t, err := s.parseLocalTime()
	if err != nil {
		return nil, err
	}
	dt := LocalDateTime{LocalDate: date, LocalTime: t}
	hourOff, minOff, hasOffset, err := s.parseZoneOffset()
	if err != nil {
		return nil, err
	}
	if !hasOffset {
		return NewLocalDateTimeScalar(dt), nil
	}
	return NewOffsetDateTimeScalar(OffsetDateTime{LocalDateTime: dt, HourOffset: hourOff, MinuteOffset: minOff}), nil
}

// parseBareTime parses a standalone LocalTime value, with no date
// portion.
func (s *scanner) parseBareTime() (*Scalar, error) {
	t, err := s.parseLocalTime()
	if err != nil {
		return nil, err
	}
	return NewLocalTimeScalar(t), nil
}

func (s *scanner) parseLocalDate() (LocalDate, error) {
	year, err := s.readFixedDigits(4)
	if err != nil {
		return LocalDate{}, err
	}
	if err := s.expectByte('-'); err != nil {
		return LocalDate{}, err
	}
	month, err := s.readFixedDigits(2)
	if err != nil {
		return LocalDate{}, err
	}
	if err := s.expectByte('-'); err != nil {
		return LocalDate{}, err
	}
	day, err := s.readFixedDigits(2)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDate{Year: year, Month: month, Day: day}, nil
}

func (s *scanner) parseLocalTime() (LocalTime, error) {
	hour, err := s.readFixedDigits(2)
	if err != nil {
		return LocalTime{}, err
	}
	if err := s.expectByte(':'); err != nil {
		return LocalTime{}, err
	}
	minute, err := s.readFixedDigits(2)
	if err != nil {
		return LocalTime{}, err
	}
	if err := s.expectByte(':'); err != nil {
		return LocalTime{}, err
	}
	second, err := s.readFixedDigits(2)
	if err != nil {
		return LocalTime{}, err
	}
	micro := 0
	if s.peek() == '.' {
		s.pos++
		start := s.pos
		for isDigit(s.peek()) {
			s.pos++
		}
		digits := string(s.data[start:s.pos])
		if digits == "" {
			return LocalTime{}, s.errf(ErrSyntax, "time has no digits after decimal point")
		}
		micro = fractionToMicros(digits)
	}
	return LocalTime{Hour: hour, Minute: minute, Second: second, Microsecond: micro}, nil
}

// fractionToMicros truncates or zero-pads a fractional-seconds digit run
// to microsecond resolution.
func fractionToMicros(digits string) int {
	if len(digits) > 6 {
		digits = digits[:6]
	}
	v := 0
	for i := 0; i < 6; i++ {
		v *= 10
		if i < len(digits) {
			v += int(digits[i] - '0')
		}
	}
	return v
}

// parseZoneOffset parses "Z"/"z" or a signed HH:MM offset. hasOffset is
// false if neither is present, in which case the value is a
// LocalDateTime.
func (s *scanner) parseZoneOffset() (hour, minute int, hasOffset bool, err error) {
	switch s.peek() {
	case 'Z', 'z':
		s.pos++
		return 0, 0, true, nil
	case '+', '-':
		sign := 1
		if s.peek() == '-' {
			sign = -1
		}
		s.pos++
		h, err := s.readFixedDigits(2)
		if err != nil {
			return 0, 0, false, err
		}
		if err := s.expectByte(':'); err != nil {
			return 0, 0, false, err
		}
		m, err := s.readFixedDigits(2)
		if err != nil {
			return 0, 0, false, err
		}
		return sign * h, sign * m, true, nil
	default:
		return 0, 0, false, nil
	}
}

func (s *scanner) readFixedDigits(n int) (int, error) {
	v := 0
	for i := 0; i < n; i++ {
		if !isDigit(s.peek()) {
			return 0, s.errf(ErrSyntax, "expected digit in date/time")
		}
		v = v*10 + int(s.peek()-'0')
		s.pos++
	}
	return v, nil
}

func (s *scanner) expectByte(c byte) error {
	if s.peek() != c {
		return s.errf(ErrSyntax, "expected %q in date/time, got %q", c, s.peek())
	}
	s.pos++
	return nil
}
