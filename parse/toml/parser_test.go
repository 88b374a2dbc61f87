package toml

import (
	"math"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestArrayOfTables(t *testing.T) {
	convey.Convey("array of tables", t, func() {
		src := `
[[products]]
name = "Hammer"
sku = 738594937

[[products]]
name = "Nails"
sku = 284758393
count = 100
`
		root, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldBeNil)
		n, ok := root.Get("products")
		convey.So(ok, convey.ShouldBeTrue)
		ta, ok := AsTableArray(n)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(ta.Len(), convey.ShouldEqual, 2)
		first, ok := ta.Get(0)
		convey.So(ok, convey.ShouldBeTrue)
		name, ok := first.Get("name")
		convey.So(ok, convey.ShouldBeTrue)
		s, _ := AsScalar(name)
		str, _ := s.String()
		convey.So(str, convey.ShouldEqual, "Hammer")
	})
}

func TestInlineTable(t *testing.T) {
	convey.Convey("inline table", t, func() {
		src := `owner = { name = "Tom", dob = 1979-05-27T07:32:00Z }`
		root, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldBeNil)
		name, ok := root.GetStringQualified("owner.name")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(name, convey.ShouldEqual, "Tom")
	})
}

func TestInlineTableIsClosed(t *testing.T) {
	convey.Convey("an inline table cannot be reopened by a later header", t, func() {
		src := `owner = { name = "Tom" }

[owner]
age = 3
`
		_, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestMultilineBasicString(t *testing.T) {
	convey.Convey("multi-line basic string joins lines with \\n", t, func() {
		src := "desc = \"\"\"first\nsecond\nthird\"\"\""
		root, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldBeNil)
		s, ok := root.GetStringQualified("desc")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(s, convey.ShouldEqual, "first\nsecond\nthird")
	})
}

func TestMultilineBasicStringLineContinuation(t *testing.T) {
	convey.Convey("a trailing backslash before a newline consumes following whitespace", t, func() {
		src := "desc = \"\"\"first \\\n       second\"\"\""
		root, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldBeNil)
		s, ok := root.GetStringQualified("desc")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(s, convey.ShouldEqual, "first second")
	})
}

func TestQuotedKeys(t *testing.T) {
	convey.Convey("quoted and dotted keys", t, func() {
		src := "\"a.b\" = 1\na.c = 2"
		root, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldBeNil)
		// The quoted key "a.b" is a single literal key, distinct from the
		// dotted path a.b produced by the second line.
		n, ok := root.Get("a.b")
		convey.So(ok, convey.ShouldBeTrue)
		s, _ := AsScalar(n)
		i, _ := s.Int64()
		convey.So(i, convey.ShouldEqual, 1)

		v2, ok := root.GetIntQualified("a.c")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v2, convey.ShouldEqual, 2)
	})
}

func TestSpecialFloatsAndInts(t *testing.T) {
	convey.Convey("floats and ints with underscores and bases", t, func() {
		src := `
f1 = +inf
f2 = -inf
f3 = nan
i1 = 1_000
hex = 0xDEADBEEF
oct = 0o755
bin = 0b1010
`
		root, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldBeNil)

		f1, _ := root.GetFloatQualified("f1")
		convey.So(f1, convey.ShouldEqual, math.Inf(1))

		f2, _ := root.GetFloatQualified("f2")
		convey.So(f2, convey.ShouldEqual, math.Inf(-1))

		f3, _ := root.GetFloatQualified("f3")
		convey.So(math.IsNaN(f3), convey.ShouldBeTrue)

		i1, _ := root.GetIntQualified("i1")
		convey.So(i1, convey.ShouldEqual, 1000)

		hex, _ := root.GetIntQualified("hex")
		convey.So(hex, convey.ShouldEqual, 0xDEADBEEF)

		oct, _ := root.GetIntQualified("oct")
		convey.So(oct, convey.ShouldEqual, 0755)

		bin, _ := root.GetIntQualified("bin")
		convey.So(bin, convey.ShouldEqual, 10)
	})
}

func TestNumberLeadingZeroRules(t *testing.T) {
	convey.Convey("leading zeros are rejected in the integer part and the exponent, but 0e0 is fine", t, func() {
		_, err := ParseBytes([]byte("bad = 01"))
		convey.So(err, convey.ShouldNotBeNil)

		_, err = ParseBytes([]byte("bad = 1e01"))
		convey.So(err, convey.ShouldNotBeNil)

		root, err := ParseBytes([]byte("ok = 0e0"))
		convey.So(err, convey.ShouldBeNil)
		f, ok := root.GetFloatQualified("ok")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(f, convey.ShouldEqual, 0)
	})
}

func TestMultilineArrayAndTrailingComma(t *testing.T) {
	convey.Convey("multi-line array with trailing comma and comments", t, func() {
		src := `
ports = [
  8001, # first
  8002,
]
`
		root, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldBeNil)
		arr, ok := root.GetArrayQualified("ports")
		convey.So(ok, convey.ShouldBeTrue)
		ints, ok := arr.AsInts()
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(ints, convey.ShouldResemble, []int64{8001, 8002})
	})
}

func TestArrayHomogeneityViolation(t *testing.T) {
	convey.Convey("mixed scalar kinds in an array literal fail to parse", t, func() {
		src := `bad = [1, "two"]`
		_, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(IsHomogeneity(err), convey.ShouldBeTrue)
	})
}

func TestArrayOfArraysAllowsMixedInnerTypes(t *testing.T) {
	convey.Convey("an array of arrays tolerates differing inner element types", t, func() {
		src := `mixed = [[1, 2], ["a", "b"]]`
		root, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldBeNil)
		arr, ok := root.GetArrayQualified("mixed")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(arr.Len(), convey.ShouldEqual, 2)
	})
}

func TestTableRedefinitionFails(t *testing.T) {
	convey.Convey("redefining a table that already holds a direct value fails", t, func() {
		src := `
[a]
x = 1

[a]
y = 2
`
		_, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestImplicitTableCanBeReopened(t *testing.T) {
	convey.Convey("an implicit table with no direct values can be reopened", t, func() {
		src := `
[a.b]
x = 1

[a]
y = 2
`
		root, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldBeNil)
		y, ok := root.GetIntQualified("a.y")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(y, convey.ShouldEqual, 2)
	})
}

func TestDuplicateKeyFails(t *testing.T) {
	convey.Convey("assigning the same key twice in one table fails", t, func() {
		src := "a = 1\na = 2\n"
		_, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestStaticArrayCannotBeAppended(t *testing.T) {
	convey.Convey("appending a table to an inline array-valued key fails", t, func() {
		arr := NewTableArray(true)
		err := arr.Append(NewTable())
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(IsRange(err), convey.ShouldBeFalse)
	})
}

func TestLineEndings(t *testing.T) {
	convey.Convey("LF, CRLF, and bare CR are all accepted as line terminators", t, func() {
		for _, nl := range []string{"\n", "\r\n", "\r"} {
			src := "a = 1" + nl + "b = 2" + nl
			root, err := ParseBytes([]byte(src))
			convey.So(err, convey.ShouldBeNil)
			b, ok := root.GetIntQualified("b")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(b, convey.ShouldEqual, 2)
		}
	})
}

func TestUnicodeEscapesAndSurrogateRejection(t *testing.T) {
	convey.Convey("unicode escapes decode and surrogate codepoints are rejected", t, func() {
		// The escape is split across two raw literals so the source holds a
		// backslash followed by u00e9, not the decoded character.
		root, err := ParseBytes([]byte(`s = "\` + `u00e9"`))
		convey.So(err, convey.ShouldBeNil)
		v, ok := root.GetStringQualified("s")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v, convey.ShouldEqual, "é")

		_, err = ParseBytes([]byte(`s = "\uD800"`))
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestMultilineStringLineContinuationToleratesTrailingSpace(t *testing.T) {
	convey.Convey("a line-continuation backslash trims trailing spaces before the newline too", t, func() {
		src := "s = \"\"\"foo\\  \nbar\"\"\""
		root, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldBeNil)
		v, ok := root.GetStringQualified("s")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v, convey.ShouldEqual, "foobar")
	})
}

func TestUnicodeEscapeCodepointCeiling(t *testing.T) {
	convey.Convey("the maximum codepoint succeeds and one past it fails", t, func() {
		root, err := ParseBytes([]byte(`s = "\U0010FFFF"`))
		convey.So(err, convey.ShouldBeNil)
		v, ok := root.GetStringQualified("s")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(len(v) > 0, convey.ShouldBeTrue)

		_, err = ParseBytes([]byte(`s = "\U00110000"`))
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestIntegerBoundary(t *testing.T) {
	convey.Convey("the max int64 literal succeeds, one past it fails with a numeric error", t, func() {
		root, err := ParseBytes([]byte("big = 9223372036854775807"))
		convey.So(err, convey.ShouldBeNil)
		v, ok := root.GetIntQualified("big")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v, convey.ShouldEqual, int64(9223372036854775807))

		_, err = ParseBytes([]byte("big = 9223372036854775808"))
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestRedefinitionErrorReportsOffendingLine(t *testing.T) {
	convey.Convey("a redefined table's error carries the line of the second header", t, func() {
		src := "[s]\nk = 2\n[s]\n"
		_, err := ParseBytes([]byte(src))
		convey.So(err, convey.ShouldNotBeNil)
		pe, ok := err.(*ParseError)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(pe.Line, convey.ShouldEqual, 3)
	})
}

func TestParseReaderEntryPoint(t *testing.T) {
	convey.Convey("Parse reads from an io.Reader", t, func() {
		root, err := Parse(strings.NewReader("a = 1\n"))
		convey.So(err, convey.ShouldBeNil)
		v, ok := root.GetIntQualified("a")
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(v, convey.ShouldEqual, 1)
	})
}
