package model

// Attribute is a single name/value pair. Values are compared as rendered
// strings; richer comparison semantics live in the attributes schema.
type Attribute struct {
	Name  string
	Value string
}

// Attr is a shorthand constructor for fixture-style call sites.
func Attr(name, value string) Attribute {
	return Attribute{Name: name, Value: value}
}

// AttributeSet is a declaration-ordered mapping from attribute name to value.
//
// Both the consumer side of a selection request and each producer variant hold
// one. Sets are built once via NewAttributeSet and never mutated afterwards;
// selection and diagnostics rely on the declaration order being stable.
type AttributeSet struct {
	names  []string
	values map[string]string
}

// NewAttributeSet builds a set from pairs in declaration order.
// A repeated name overwrites the value but keeps the original position.
func NewAttributeSet(pairs ...Attribute) AttributeSet {
	s := AttributeSet{
		names:  make([]string, 0, len(pairs)),
		values: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		if _, seen := s.values[p.Name]; !seen {
			s.names = append(s.names, p.Name)
		}
		s.values[p.Name] = p.Value
	}
	return s
}

// Value returns the value for name and whether it is present.
func (s AttributeSet) Value(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Has reports whether name is present.
func (s AttributeSet) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Names returns the attribute names in declaration order.
// The returned slice is a copy.
func (s AttributeSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s AttributeSet) Len() int {
	return len(s.names)
}

func (s AttributeSet) Empty() bool {
	return len(s.names) == 0
}
