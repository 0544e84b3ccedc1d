package record

// ValueSet is an unordered collection of heterogeneous Values (the embedded
// set kind, tag 11). Unlike types.LinkSet, Values are not comparable in the
// general case (an embedded document or nested list is not a valid Go map
// key), so membership is tracked by linear scan with Equal rather than a
// map. This mirrors the spec's own characterization of decoded sets as
// unordered containers compared by element equality (spec §9 "Unordered
// decoded sets").
type ValueSet struct {
	items []Value
}

// NewValueSet creates an empty ValueSet.
func NewValueSet() *ValueSet {
	return &ValueSet{}
}

// ValueSetOf builds a ValueSet from a slice of Values, collapsing any that
// are Equal to an earlier element.
func ValueSetOf(vs []Value) *ValueSet {
	s := NewValueSet()
	for _, v := range vs {
		s.Add(v)
	}

	return s
}

// Add inserts v if no Equal element is already present. Returns true if v
// was newly added.
func (s *ValueSet) Add(v Value) bool {
	for _, existing := range s.items {
		if Equal(existing, v) {
			return false
		}
	}

	s.items = append(s.items, v)

	return true
}

// Len returns the number of distinct elements.
func (s *ValueSet) Len() int {
	return len(s.items)
}

// Slice returns the elements in insertion order. Callers must not depend on
// this order being meaningful across encode/decode cycles.
func (s *ValueSet) Slice() []Value {
	out := make([]Value, len(s.items))
	copy(out, s.items)

	return out
}

// Equal reports whether two ValueSets contain the same elements, regardless
// of order.
func (s *ValueSet) Equal(other *ValueSet) bool {
	if s.Len() != other.Len() {
		return false
	}

	for _, v := range s.items {
		found := false
		for _, ov := range other.items {
			if Equal(v, ov) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
