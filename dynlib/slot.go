package dynlib

// Slot is a caller-owned resolution cell caching the library handle for
// one (library, symbol) use site. The zero Slot is ready for use. A
// slot transitions empty to filled at most once; once filled it is
// immutable and readers observe the complete handle or nothing.
type Slot struct {
	h cell
}

// Handle reports the published handle, or zero while the slot is empty.
func (s *Slot) Handle() Handle {
	return Handle(s.h.load())
}
