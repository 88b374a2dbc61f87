package toml

import "fmt"

// LocalDate is a calendar date with no associated time or zone. Digits
// are not validated for calendar legality (Feb 30 parses cleanly), the
// same permissiveness the original implementation has.
type LocalDate struct {
	Year  int
	Month int
	Day   int
}

func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// LocalTime is a time of day with up to microsecond resolution and no
// associated zone.
type LocalTime struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

func (t LocalTime) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Microsecond > 0 {
		s += "." + fractionDigits(t.Microsecond)
	}
	return s
}

// fractionDigits renders a microsecond count as the minimal run of digits
// from most-significant down, e.g. 500000 -> "5", 1000 -> "001".
func fractionDigits(microsecond int) string {
	var b []byte
	power := 100000
	for cur := microsecond; cur != 0; power /= 10 {
		digit := cur / power
		b = append(b, byte('0'+digit))
		cur -= digit * power
	}
	return string(b)
}

// LocalDateTime combines a LocalDate and a LocalTime with no zone
// information.
type LocalDateTime struct {
	LocalDate
	LocalTime
}

func (dt LocalDateTime) String() string {
	return dt.LocalDate.String() + "T" + dt.LocalTime.String()
}

// OffsetDateTime is a LocalDateTime anchored to a UTC offset. An offset
// of {0, 0} is printed as "Z"; any other offset is printed signed.
type OffsetDateTime struct {
	LocalDateTime
	HourOffset   int
	MinuteOffset int
}

func (dt OffsetDateTime) String() string {
	return dt.LocalDateTime.String() + dt.offsetString()
}

func (dt OffsetDateTime) offsetString() string {
	if dt.HourOffset == 0 && dt.MinuteOffset == 0 {
		return "Z"
	}
	sign := "+"
	if dt.HourOffset < 0 || dt.MinuteOffset < 0 {
		sign = "-"
	}
	h := dt.HourOffset
	if h < 0 {
		h = -h
	}
	m := dt.MinuteOffset
	if m < 0 {
		m = -m
	}
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}
