package consecutive

// Run describes a maximal sequence of consecutive integers
// Start, Start+1, …, Start+Length−1.
//
// The zero Run (Length == 0) means "no run", returned for empty input.
type Run struct {
	Start  int // first value of the run
	Length int // number of values in the run
}

// End returns the last value of the run. It is only meaningful when
// Length > 0.
func (r Run) End() int {
	return r.Start + r.Length - 1
}

// Contains reports whether v lies inside the run.
func (r Run) Contains(v int) bool {
	return r.Length > 0 && v >= r.Start && v <= r.End()
}
