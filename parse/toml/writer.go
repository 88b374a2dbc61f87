package toml

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Write serializes node (which must be a Table, typically the root) to
// sink. indent, if given, overrides the default per-level indent unit of
// a tab.
func Write(sink io.Writer, node Node, indent ...string) error {
	unit := "\t"
	if len(indent) > 0 {
		unit = indent[0]
	}
	t, ok := AsTable(node)
	if !ok {
		return newModelError(ErrSemantic, "write requires a Table at the root")
	}
	w := &writer{sink: sink, indent: unit}
	return w.writeTable(t, nil)
}

type writer struct {
	sink   io.Writer
	indent string
}

func (w *writer) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(w.sink, format, args...)
	return err
}

// writeTable emits t's `[path]` header (skipped for the root), then its
// scalar/array entries, then its child Tables and TableArrays -- the
// ordering discipline that keeps a later `[child]` header from
// absorbing keys meant for t itself.
func (w *writer) writeTable(t *Table, path []string) error {
	if len(path) > 0 {
		if err := w.printf("%s[%s]\n", w.indentFor(path), headerPath(path)); err != nil {
			return err
		}
	}
	keys := t.Keys()
	for _, k := range keys {
		n, _ := t.Get(k)
		if isHeaderedEntry(n) {
			continue
		}
		if err := w.printf("%s%s = ", w.indentFor(path), quoteKeyIfNeeded(k)); err != nil {
			return err
		}
		if err := w.writeValue(n); err != nil {
			return err
		}
		if err := w.printf("\n"); err != nil {
			return err
		}
	}
	for _, k := range keys {
		n, _ := t.Get(k)
		childPath := append(append([]string{}, path...), k)
		switch child := n.(type) {
		case *Table:
			if err := w.printf("\n"); err != nil {
				return err
			}
			if err := w.writeTable(child, childPath); err != nil {
				return err
			}
		case *TableArray:
			if !child.Inline() {
				if err := w.writeTableArray(child, childPath); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// isHeaderedEntry reports whether n is written via a `[path]`/`[[path]]`
// header in the second pass, rather than inline as a `key = value` entry
// in the first -- every Table, and every non-inline TableArray. An inline
// TableArray (built from an array of inline-table literals) has no
// header form and is written as a value like any scalar or Array.
func isHeaderedEntry(n Node) bool {
	if n.IsTable() {
		return true
	}
	ta, ok := n.(*TableArray)
	return ok && !ta.Inline()
}

// writeTableArray emits one `[[path]]` header per contained table.
func (w *writer) writeTableArray(ta *TableArray, path []string) error {
	var outerErr error
	ta.Range(func(i int, sub *Table) bool {
		if err := w.printf("\n%s[[%s]]\n", w.indentFor(path), headerPath(path)); err != nil {
			outerErr = err
			return false
		}
		if err := w.writeTableEntriesOnly(sub, path); err != nil {
			outerErr = err
			return false
		}
		return true
	})
	return outerErr
}

// writeTableEntriesOnly writes sub's scalar/array entries and child
// tables without re-emitting sub's own header, which the caller already
// wrote as `[[path]]`.
func (w *writer) writeTableEntriesOnly(t *Table, path []string) error {
	keys := t.Keys()
	for _, k := range keys {
		n, _ := t.Get(k)
		if isHeaderedEntry(n) {
			continue
		}
		if err := w.printf("%s%s = ", w.indentFor(path), quoteKeyIfNeeded(k)); err != nil {
			return err
		}
		if err := w.writeValue(n); err != nil {
			return err
		}
		if err := w.printf("\n"); err != nil {
			return err
		}
	}
	for _, k := range keys {
		n, _ := t.Get(k)
		childPath := append(append([]string{}, path...), k)
		switch child := n.(type) {
		case *Table:
			if err := w.printf("\n"); err != nil {
				return err
			}
			if err := w.writeTable(child, childPath); err != nil {
				return err
			}
		case *TableArray:
			if !child.Inline() {
				if err := w.writeTableArray(child, childPath); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (w *writer) indentFor(path []string) string {
	return strings.Repeat(w.indent, len(path))
}

func headerPath(path []string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = quoteKeyIfNeeded(p)
	}
	return strings.Join(parts, ".")
}

func quoteKeyIfNeeded(k string) string {
	if k != "" && isAllBareKeyBytes(k) {
		return k
	}
	return quoteBasicString(k)
}

func isAllBareKeyBytes(k string) bool {
	for i := 0; i < len(k); i++ {
		if !isBareKeyByte(k[i]) {
			return false
		}
	}
	return true
}

func (w *writer) writeValue(n Node) error {
	switch v := n.(type) {
	case *Scalar:
		return w.writeScalar(v)
	case *Array:
		return w.writeArray(v)
	case *TableArray:
		if v.Inline() {
			return w.writeInlineTableArray(v)
		}
		return newModelError(ErrSemantic, "a non-inline table array cannot be written as a value")
	case *Table:
		return w.writeInlineTable(v)
	default:
		return newModelError(ErrSemantic, "value of kind %s cannot be written inline", n.Kind())
	}
}

// writeInlineTableArray renders an inline TableArray (built from an array
// of inline-table literals, e.g. `a = [{x=1}, {x=2}]`) as a bracketed,
// comma-separated list of inline tables.
func (w *writer) writeInlineTableArray(ta *TableArray) error {
	if err := w.printf("["); err != nil {
		return err
	}
	first := true
	var innerErr error
	ta.Range(func(i int, sub *Table) bool {
		if !first {
			if err := w.printf(", "); err != nil {
				innerErr = err
				return false
			}
		}
		first = false
		if err := w.writeInlineTable(sub); err != nil {
			innerErr = err
			return false
		}
		return true
	})
	if innerErr != nil {
		return innerErr
	}
	return w.printf("]")
}

// writeInlineTable renders t as a `{ k = v, ... }` literal.
func (w *writer) writeInlineTable(t *Table) error {
	if err := w.printf("{ "); err != nil {
		return err
	}
	keys := t.Keys()
	for i, k := range keys {
		if i > 0 {
			if err := w.printf(", "); err != nil {
				return err
			}
		}
		n, _ := t.Get(k)
		if err := w.printf("%s = ", quoteKeyIfNeeded(k)); err != nil {
			return err
		}
		if err := w.writeValue(n); err != nil {
			return err
		}
	}
	return w.printf(" }")
}

func (w *writer) writeArray(a *Array) error {
	if err := w.printf("["); err != nil {
		return err
	}
	first := true
	var innerErr error
	a.Range(func(i int, e Node) bool {
		if !first {
			if err := w.printf(", "); err != nil {
				innerErr = err
				return false
			}
		}
		first = false
		if err := w.writeValue(e); err != nil {
			innerErr = err
			return false
		}
		return true
	})
	if innerErr != nil {
		return innerErr
	}
	return w.printf("]")
}

func (w *writer) writeScalar(s *Scalar) error {
	switch s.ScalarKind {
	case ScalarString:
		return w.printf("%s", quoteBasicString(s.Val.(string)))
	case ScalarInt:
		return w.printf("%d", s.Val.(int64))
	case ScalarFloat:
		return w.printf("%s", formatFloat(s.Val.(float64)))
	case ScalarBool:
		return w.printf("%t", s.Val.(bool))
	case ScalarLocalDate:
		return w.printf("%s", s.Val.(LocalDate).String())
	case ScalarLocalTime:
		return w.printf("%s", s.Val.(LocalTime).String())
	case ScalarLocalDateTime:
		return w.printf("%s", s.Val.(LocalDateTime).String())
	case ScalarOffsetDateTime:
		return w.printf("%s", s.Val.(OffsetDateTime).String())
	default:
		return newModelError(ErrSemantic, "unknown scalar kind %d", s.ScalarKind)
	}
}

// formatFloat renders f with a shortest round-trip representation,
// always showing a decimal point or exponent, and stripping a leading
// zero from the exponent the way the original writer does ("e0" -> "e",
// "e-0" -> "e-" before the digits that follow).
func formatFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if math.IsNaN(f) {
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return stripExponentLeadingZero(s)
}

func stripExponentLeadingZero(s string) string {
	idx := strings.IndexAny(s, "eE")
	if idx < 0 {
		return s
	}
	mantissa, exp := s[:idx+1], s[idx+1:]
	sign := ""
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		sign = string(exp[0])
		exp = exp[1:]
	}
	for len(exp) > 1 && exp[0] == '0' {
		exp = exp[1:]
	}
	return mantissa + sign + exp
}

// quoteBasicString renders s as a double-quoted TOML basic string,
// escaping the control bytes the spec names plus any other byte at or
// below U+001F.
func quoteBasicString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if r <= 0x1F {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
