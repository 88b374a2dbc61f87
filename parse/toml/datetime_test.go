package toml

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestDatetimeTextualForms(t *testing.T) {
	convey.Convey("datetime textual forms", t, func() {
		convey.Convey("local date", func() {
			root, err := ParseBytes([]byte("d = 1979-05-27"))
			convey.So(err, convey.ShouldBeNil)
			n, ok := root.Get("d")
			convey.So(ok, convey.ShouldBeTrue)
			s, _ := AsScalar(n)
			convey.So(s.ScalarKind, convey.ShouldEqual, ScalarLocalDate)
			d, _ := s.LocalDate()
			convey.So(d.String(), convey.ShouldEqual, "1979-05-27")
		})

		convey.Convey("local time with fractional seconds", func() {
			root, err := ParseBytes([]byte("t = 07:32:00.5"))
			convey.So(err, convey.ShouldBeNil)
			n, _ := root.Get("t")
			s, _ := AsScalar(n)
			lt, _ := s.LocalTime()
			convey.So(lt.String(), convey.ShouldEqual, "07:32:00.5")
		})

		convey.Convey("local time with zero microseconds drops the fraction", func() {
			root, err := ParseBytes([]byte("t = 07:32:00"))
			convey.So(err, convey.ShouldBeNil)
			n, _ := root.Get("t")
			s, _ := AsScalar(n)
			lt, _ := s.LocalTime()
			convey.So(lt.String(), convey.ShouldEqual, "07:32:00")
		})

		convey.Convey("offset date-time accepts space or T separator, emits T and Z", func() {
			for _, src := range []string{
				"dt = 1979-05-27T07:32:00Z",
				"dt = 1979-05-27 07:32:00Z",
			} {
				root, err := ParseBytes([]byte(src))
				convey.So(err, convey.ShouldBeNil)
				n, _ := root.Get("dt")
				s, _ := AsScalar(n)
				convey.So(s.ScalarKind, convey.ShouldEqual, ScalarOffsetDateTime)
				odt, _ := s.OffsetDateTime()
				convey.So(odt.String(), convey.ShouldEqual, "1979-05-27T07:32:00Z")
			}
		})

		convey.Convey("offset date-time with a signed zone offset", func() {
			root, err := ParseBytes([]byte("dt = 1979-05-27T00:32:00-07:00"))
			convey.So(err, convey.ShouldBeNil)
			n, _ := root.Get("dt")
			s, _ := AsScalar(n)
			odt, _ := s.OffsetDateTime()
			convey.So(odt.HourOffset, convey.ShouldEqual, -7)
			convey.So(odt.String(), convey.ShouldEqual, "1979-05-27T00:32:00-07:00")
		})

		convey.Convey("local date-time with no zone", func() {
			root, err := ParseBytes([]byte("dt = 1979-05-27T07:32:00"))
			convey.So(err, convey.ShouldBeNil)
			n, _ := root.Get("dt")
			s, _ := AsScalar(n)
			convey.So(s.ScalarKind, convey.ShouldEqual, ScalarLocalDateTime)
		})
	})
}

func TestOffsetStringSignFromEitherField(t *testing.T) {
	convey.Convey("a negative-minutes-only offset still prints with a minus sign", t, func() {
		odt := OffsetDateTime{
			LocalDateTime: LocalDateTime{
				LocalDate: LocalDate{Year: 1979, Month: 5, Day: 27},
				LocalTime: LocalTime{Hour: 7, Minute: 32, Second: 0},
			},
			HourOffset:   0,
			MinuteOffset: -30,
		}
		convey.So(odt.String(), convey.ShouldEqual, "1979-05-27T07:32:00-00:30")
	})
}

func TestFractionDigitsMinimalTrailing(t *testing.T) {
	convey.Convey("fractionDigits trims trailing zeros but keeps leading ones", t, func() {
		convey.So(fractionDigits(500000), convey.ShouldEqual, "5")
		convey.So(fractionDigits(150000), convey.ShouldEqual, "15")
		convey.So(fractionDigits(5), convey.ShouldEqual, "000005")
		convey.So(fractionDigits(0), convey.ShouldEqual, "")
	})
}
