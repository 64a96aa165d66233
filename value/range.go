package value

// Range describes a half-open interval [Lo, Hi) over comparable Values,
// used by range-index lookups and EdgeSearch/VertexSearch predicates.
// Lo and Hi must share the same Kind; NewRange does not enforce this,
// and nothing validates it later: a Range whose bounds differ in Kind
// contains no value, since Contains reports false for incomparable
// kinds.
type Range struct {
	Lo, Hi Value
}

// NewRange builds a Range over [lo, hi).
func NewRange(lo, hi Value) Range { return Range{Lo: lo, Hi: hi} }

// Contains reports whether v falls within [r.Lo, r.Hi). Returns false
// (rather than panicking) if v's Kind is incomparable with the range's.
func (r Range) Contains(v Value) bool {
	lo, ok := r.Lo.Compare(v)
	if !ok || lo > 0 {
		return false
	}
	hi, ok := v.Compare(r.Hi)
	if !ok {
		return false
	}
	return hi < 0
}
