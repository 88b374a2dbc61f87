package toml

// ScalarKind tags which of the eight leaf types a Scalar holds.
type ScalarKind uint8

const (
	ScalarString ScalarKind = iota
	ScalarInt
	ScalarFloat
	ScalarBool
	ScalarLocalDate
	ScalarLocalTime
	ScalarLocalDateTime
	ScalarOffsetDateTime
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarString:
		return "string"
	case ScalarInt:
		return "int"
	case ScalarFloat:
		return "float"
	case ScalarBool:
		return "bool"
	case ScalarLocalDate:
		return "local_date"
	case ScalarLocalTime:
		return "local_time"
	case ScalarLocalDateTime:
		return "local_datetime"
	case ScalarOffsetDateTime:
		return "offset_datetime"
	default:
		return "unknown"
	}
}

// Scalar is a leaf Node: one of String, Integer, Float, Boolean,
// LocalDate, LocalTime, LocalDateTime, or OffsetDateTime.
type Scalar struct {
	ScalarKind ScalarKind
	Val        any
}

func newScalar(kind ScalarKind, v any) *Scalar {
	return &Scalar{ScalarKind: kind, Val: v}
}

func NewStringScalar(s string) *Scalar                 { return newScalar(ScalarString, s) }
func NewIntScalar(i int64) *Scalar                     { return newScalar(ScalarInt, i) }
func NewFloatScalar(f float64) *Scalar                 { return newScalar(ScalarFloat, f) }
func NewBoolScalar(b bool) *Scalar                      { return newScalar(ScalarBool, b) }
func NewLocalDateScalar(d LocalDate) *Scalar            { return newScalar(ScalarLocalDate, d) }
func NewLocalTimeScalar(t LocalTime) *Scalar            { return newScalar(ScalarLocalTime, t) }
func NewLocalDateTimeScalar(dt LocalDateTime) *Scalar   { return newScalar(ScalarLocalDateTime, dt) }
func NewOffsetDateTimeScalar(dt OffsetDateTime) *Scalar { return newScalar(ScalarOffsetDateTime, dt) }

func (s *Scalar) Kind() Kind         { return KindScalar }
func (s *Scalar) IsScalar() bool     { return true }
func (s *Scalar) IsTable() bool      { return false }
func (s *Scalar) IsArray() bool      { return false }
func (s *Scalar) IsTableArray() bool { return false }

func (s *Scalar) Clone() Node {
	return &Scalar{ScalarKind: s.ScalarKind, Val: s.Val}
}

// String returns the scalar's value as a string, failing if it is not a
// String scalar.
func (s *Scalar) String() (string, error) {
	v, ok := s.Val.(string)
	if !ok {
		return "", newModelError(ErrRange, "scalar is %s, not string", s.ScalarKind)
	}
	return v, nil
}

// Bool returns the scalar's value as a bool, failing if it is not a
// Boolean scalar.
func (s *Scalar) Bool() (bool, error) {
	v, ok := s.Val.(bool)
	if !ok {
		return false, newModelError(ErrRange, "scalar is %s, not bool", s.ScalarKind)
	}
	return v, nil
}

// Int64 returns the scalar's value as an int64. Integer scalars return
// their value directly; any other variant fails.
func (s *Scalar) Int64() (int64, error) {
	v, ok := s.Val.(int64)
	if !ok {
		return 0, newModelError(ErrRange, "scalar is %s, not int", s.ScalarKind)
	}
	return v, nil
}

// Float64 returns the scalar's value as a float64. Integer scalars widen
// losslessly; Float scalars return directly; any other variant fails.
func (s *Scalar) Float64() (float64, error) {
	switch v := s.Val.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, newModelError(ErrRange, "scalar is %s, not float", s.ScalarKind)
	}
}

func (s *Scalar) LocalDate() (LocalDate, error) {
	v, ok := s.Val.(LocalDate)
	if !ok {
		return LocalDate{}, newModelError(ErrRange, "scalar is %s, not local_date", s.ScalarKind)
	}
	return v, nil
}

func (s *Scalar) LocalTime() (LocalTime, error) {
	v, ok := s.Val.(LocalTime)
	if !ok {
		return LocalTime{}, newModelError(ErrRange, "scalar is %s, not local_time", s.ScalarKind)
	}
	return v, nil
}

func (s *Scalar) LocalDateTime() (LocalDateTime, error) {
	v, ok := s.Val.(LocalDateTime)
	if !ok {
		return LocalDateTime{}, newModelError(ErrRange, "scalar is %s, not local_datetime", s.ScalarKind)
	}
	return v, nil
}

func (s *Scalar) OffsetDateTime() (OffsetDateTime, error) {
	v, ok := s.Val.(OffsetDateTime)
	if !ok {
		return OffsetDateTime{}, newModelError(ErrRange, "scalar is %s, not offset_datetime", s.ScalarKind)
	}
	return v, nil
}

// signedInt is satisfied by every signed integer type.
type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// unsignedInt is satisfied by every unsigned integer type.
type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IntAs range-checks the scalar's Integer value against the bounds of T.
func IntAs[T signedInt](s *Scalar) (T, error) {
	v, err := s.Int64()
	if err != nil {
		return 0, err
	}
	narrowed := T(v)
	if int64(narrowed) != v {
		return 0, newModelError(ErrRange, "value %d overflows target integer type", v)
	}
	return narrowed, nil
}

// UintAs range-checks the scalar's Integer value against the bounds of an
// unsigned target type, failing on negative values as well as overflow.
func UintAs[T unsignedInt](s *Scalar) (T, error) {
	v, err := s.Int64()
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, newModelError(ErrRange, "value %d is negative, cannot convert to unsigned", v)
	}
	narrowed := T(v)
	if int64(narrowed) != v {
		return 0, newModelError(ErrRange, "value %d overflows target unsigned integer type", v)
	}
	return narrowed, nil
}
