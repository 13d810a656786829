package nasl

import "fmt"

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. Tokens, errors and
// diagnostics use it to point back into the script source. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// MakeSpan creates a span from int offsets, as they are delivered by
// scanners.
func MakeSpan(from, to int) Span {
	if from < 0 {
		from = 0
	}
	if to < from {
		to = from
	}
	return Span{uint64(from), uint64(to)}
}

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

// Slice returns the part of a source text a span covers. Out-of-range spans
// are clipped.
func (s Span) Slice(source string) string {
	from, to := int(s[0]), int(s[1])
	if from > len(source) {
		from = len(source)
	}
	if to > len(source) {
		to = len(source)
	}
	return source[from:to]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
