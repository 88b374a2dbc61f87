package toml

// Visitor receives a callback for the concrete variant of a Node. It is
// the Go replacement for the original implementation's virtual
// accept/visit pair: exhaustive type switch instead of a vtable, kept
// only for callers who want to walk the tree without repeating the type
// switch themselves.
type Visitor interface {
	VisitTable(*Table)
	VisitArray(*Array)
	VisitTableArray(*TableArray)
	VisitScalar(*Scalar)
}

// Accept dispatches n to the matching method of v.
func Accept(n Node, v Visitor) {
	switch t := n.(type) {
	case *Table:
		v.VisitTable(t)
	case *Array:
		v.VisitArray(t)
	case *TableArray:
		v.VisitTableArray(t)
	case *Scalar:
		v.VisitScalar(t)
	}
}
