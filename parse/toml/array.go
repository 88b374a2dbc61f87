package toml

// Array is an ordered, homogeneous sequence of Nodes. Every element must
// share the same Kind and, for scalars, the same ScalarKind -- except
// that an array of Arrays is allowed to hold inner arrays of differing
// element types.
type Array struct {
	elems []Node
}

// NewArray returns an empty Array.
func NewArray() *Array {
	return &Array{}
}

func (a *Array) Kind() Kind         { return KindArray }
func (a *Array) IsScalar() bool     { return false }
func (a *Array) IsTable() bool      { return false }
func (a *Array) IsArray() bool      { return true }
func (a *Array) IsTableArray() bool { return false }

func (a *Array) Clone() Node {
	out := &Array{elems: make([]Node, len(a.elems))}
	for i, e := range a.elems {
		out.elems[i] = e.Clone()
	}
	return out
}

// Len reports the number of elements.
func (a *Array) Len() int { return len(a.elems) }

// Get returns the element at i, or ok=false if i is out of range.
func (a *Array) Get(i int) (Node, bool) {
	if i < 0 || i >= len(a.elems) {
		return nil, false
	}
	return a.elems[i], true
}

// Range calls fn for each element in order, stopping early if fn returns
// false.
func (a *Array) Range(fn func(i int, n Node) bool) {
	for i, e := range a.elems {
		if !fn(i, e) {
			return
		}
	}
}

// Reserve grows the backing slice's capacity to at least n, a no-op if it
// is already large enough.
func (a *Array) Reserve(n int) {
	if cap(a.elems) >= n {
		return
	}
	grown := make([]Node, len(a.elems), n)
	copy(grown, a.elems)
	a.elems = grown
}

// Clear removes all elements.
func (a *Array) Clear() {
	a.elems = a.elems[:0]
}

// Push appends n, enforcing homogeneity against the existing elements.
func (a *Array) Push(n Node) error {
	if err := a.checkHomogeneous(n); err != nil {
		return err
	}
	a.elems = append(a.elems, n)
	return nil
}

// Insert places n at index i, enforcing homogeneity. i must be in
// [0, Len()].
func (a *Array) Insert(i int, n Node) error {
	if i < 0 || i > len(a.elems) {
		return newModelError(ErrRange, "array insert index %d out of range", i)
	}
	if err := a.checkHomogeneous(n); err != nil {
		return err
	}
	a.elems = append(a.elems, nil)
	copy(a.elems[i+1:], a.elems[i:])
	a.elems[i] = n
	return nil
}

// Erase removes the element at index i.
func (a *Array) Erase(i int) error {
	if i < 0 || i >= len(a.elems) {
		return newModelError(ErrRange, "array erase index %d out of range", i)
	}
	a.elems = append(a.elems[:i], a.elems[i+1:]...)
	return nil
}

// checkHomogeneous enforces the homogeneity invariant: an empty array
// accepts anything as its first element; thereafter every element must
// share Kind (and, for scalars, ScalarKind) with the first -- unless the
// first element is itself an Array, in which case any Array is accepted
// regardless of its own inner element type.
func (a *Array) checkHomogeneous(n Node) error {
	if len(a.elems) == 0 {
		return nil
	}
	first := a.elems[0]
	if first.IsArray() {
		if !n.IsArray() {
			return newModelError(ErrHomogeneity, "array holds nested arrays, cannot insert a %s", n.Kind())
		}
		return nil
	}
	if first.Kind() != n.Kind() {
		return newModelError(ErrHomogeneity, "array elements must share kind: have %s, got %s", first.Kind(), n.Kind())
	}
	if first.IsScalar() {
		fs := first.(*Scalar)
		ns := n.(*Scalar)
		if fs.ScalarKind != ns.ScalarKind {
			return newModelError(ErrHomogeneity, "array elements must share scalar type: have %s, got %s", fs.ScalarKind, ns.ScalarKind)
		}
	}
	return nil
}

// AsStrings extracts every element as a string, returning ok=false if any
// element is not a String scalar (no partial results are returned).
func (a *Array) AsStrings() ([]string, bool) {
	out := make([]string, 0, len(a.elems))
	for _, e := range a.elems {
		s, ok := e.(*Scalar)
		if !ok || s.ScalarKind != ScalarString {
			return nil, false
		}
		out = append(out, s.Val.(string))
	}
	return out, true
}

// AsInts extracts every element as an int64, returning ok=false if any
// element is not an Integer scalar.
func (a *Array) AsInts() ([]int64, bool) {
	out := make([]int64, 0, len(a.elems))
	for _, e := range a.elems {
		s, ok := e.(*Scalar)
		if !ok || s.ScalarKind != ScalarInt {
			return nil, false
		}
		out = append(out, s.Val.(int64))
	}
	return out, true
}

// AsFloats extracts every element as a float64, returning ok=false if any
// element is not a Float scalar.
func (a *Array) AsFloats() ([]float64, bool) {
	out := make([]float64, 0, len(a.elems))
	for _, e := range a.elems {
		s, ok := e.(*Scalar)
		if !ok || s.ScalarKind != ScalarFloat {
			return nil, false
		}
		out = append(out, s.Val.(float64))
	}
	return out, true
}

// AsBools extracts every element as a bool, returning ok=false if any
// element is not a Boolean scalar.
func (a *Array) AsBools() ([]bool, bool) {
	out := make([]bool, 0, len(a.elems))
	for _, e := range a.elems {
		s, ok := e.(*Scalar)
		if !ok || s.ScalarKind != ScalarBool {
			return nil, false
		}
		out = append(out, s.Val.(bool))
	}
	return out, true
}

// AsArrays extracts every element as *Array, returning ok=false if any
// element is not itself an Array.
func (a *Array) AsArrays() ([]*Array, bool) {
	out := make([]*Array, 0, len(a.elems))
	for _, e := range a.elems {
		arr, ok := e.(*Array)
		if !ok {
			return nil, false
		}
		out = append(out, arr)
	}
	return out, true
}
