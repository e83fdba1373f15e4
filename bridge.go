package nativebridge

// Value is a managed runtime value as seen by the bridge. The bridge never
// inspects a value's contents; it consults the predicates below and
// compares values by identity. Implementations must be pointer-shaped (a
// single pointer word) so that == on the interface coincides with runtime
// identity.
type Value interface {
	// ConcreteType reports whether the value is a fully instantiated,
	// non-generic type.
	ConcreteType() bool
	// Immutable reports whether the value, viewed as a type, describes
	// instances that cannot change after construction.
	Immutable() bool
	// Singleton reports whether the value is the unique canonical
	// instance of its type.
	Singleton() bool
	// TemplateWrapper reports whether the value is a generic template
	// equal to its own canonical wrapper.
	TemplateWrapper() bool
}

// BindingList holds the ordered concrete values bound to a closure's
// formal parameters at one specialization site. Caches key on the
// *BindingList pointer: two lists with equal contents but separate
// allocations are distinct keys.
type BindingList struct {
	Values []Value
}

// NewBindingList allocates a fresh binding list with its own identity.
func NewBindingList(values ...Value) *BindingList {
	return &BindingList{Values: values}
}

// Len returns the number of bound values. A nil list has length zero.
func (b *BindingList) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Values)
}

type sentinel struct {
	name string
}

func (s *sentinel) ConcreteType() bool    { return false }
func (s *sentinel) Immutable() bool       { return false }
func (s *sentinel) Singleton() bool       { return false }
func (s *sentinel) TemplateWrapper() bool { return false }
func (s *sentinel) String() string        { return s.name }

// Top is the universal top type. A specialization result equal to Top is
// recorded as-is: it carries no information worth baking into a
// trampoline, but it is stable across calls.
var Top Value = &sentinel{name: "Top"}

// Unspecialized marks a formal parameter whose binding could not be
// proven both concrete and immutable. A trampoline carrying it defers
// that parameter to dynamic dispatch at call time.
var Unspecialized Value = &sentinel{name: "Unspecialized"}
