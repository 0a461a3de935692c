package core

import "math"

// Interval represents a closed range [Start, End] of values along the ray
// parameter or a box axis. Start > End is the valid empty state.
type Interval struct {
	Start, End float64
}

// EmptyInterval contains no values; it is the identity for Union.
var EmptyInterval = Interval{Start: math.Inf(1), End: math.Inf(-1)}

// UniverseInterval contains every value.
var UniverseInterval = Interval{Start: math.Inf(-1), End: math.Inf(1)}

// NewInterval creates a new interval
func NewInterval(start, end float64) Interval {
	return Interval{Start: start, End: end}
}

// Size returns the extent of the interval (negative when empty)
func (in Interval) Size() float64 {
	return in.End - in.Start
}

// Contains reports whether v lies in the closed interval [Start, End]
func (in Interval) Contains(v float64) bool {
	return in.Start <= v && v <= in.End
}

// Surrounds reports whether v lies strictly inside the interval
func (in Interval) Surrounds(v float64) bool {
	return in.Start < v && v < in.End
}

// Clamp returns v limited to the interval
func (in Interval) Clamp(v float64) float64 {
	if v < in.Start {
		return in.Start
	}
	if v > in.End {
		return in.End
	}
	return v
}

// Union returns the smallest interval containing both intervals
func (in Interval) Union(other Interval) Interval {
	return Interval{
		Start: math.Min(in.Start, other.Start),
		End:   math.Max(in.End, other.End),
	}
}

// Expand returns the interval grown by delta/2 on each side
func (in Interval) Expand(delta float64) Interval {
	return Interval{Start: in.Start - delta/2, End: in.End + delta/2}
}
