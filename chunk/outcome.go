package chunk

// Kind tags the result of a single read attempt.
type Kind int

const (
	// KindExhausted means no bytes were available; the source is at its end.
	KindExhausted Kind = iota
	// KindData means one or more bytes were transferred.
	KindData
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Outcome is the result of one read attempt: either a chunk of data or
// exhaustion of the source.
//
// An Outcome owns its bytes. Later reads never overwrite them and Bytes
// returns a copy, so a chunk cannot change once created.
type Outcome struct {
	data      []byte
	requested int
}

func newOutcome(data []byte, requested int) Outcome {
	if len(data) == 0 {
		return Outcome{requested: requested}
	}
	return Outcome{data: data, requested: requested}
}

// Kind reports whether the outcome carries data.
func (o Outcome) Kind() Kind {
	if len(o.data) == 0 {
		return KindExhausted
	}
	return KindData
}

// Exhausted reports whether no bytes were transferred.
func (o Outcome) Exhausted() bool {
	return o.Kind() == KindExhausted
}

// Short reports whether the chunk holds fewer bytes than were requested.
// A short chunk is the normal last chunk of a source, not an error.
func (o Outcome) Short() bool {
	return len(o.data) > 0 && len(o.data) < o.requested
}

// Len returns the number of bytes in the chunk.
func (o Outcome) Len() int {
	return len(o.data)
}

// Bytes returns a copy of the chunk's bytes, or nil if exhausted.
func (o Outcome) Bytes() []byte {
	if len(o.data) == 0 {
		return nil
	}
	return append([]byte(nil), o.data...)
}

// Text returns the chunk's bytes as a string without validating them.
func (o Outcome) Text() string {
	return string(o.data)
}

// AppendTo appends the chunk's bytes to dst and returns the extended slice.
func (o Outcome) AppendTo(dst []byte) []byte {
	return append(dst, o.data...)
}
