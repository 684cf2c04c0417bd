package engine

// Char is a single composed cell in the keystroke window (§3).
type Char struct {
	Key     KeyId
	IsUpper bool
	Tone    Tone
	Mark    Mark
	DStroke bool
}

// maxBufferLen is the Buffer's bounded capacity (§3). Oldest cells are
// scroll-discarded on overflow; this never fails a keystroke.
const maxBufferLen = 256

// Buffer is the bounded ordered keystroke window the engine composes from.
type Buffer struct {
	cells []Char
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{cells: make([]Char, 0, 32)}
}

// Len returns the number of cells currently buffered.
func (b *Buffer) Len() int { return len(b.cells) }

// At returns the cell at index i. Callers must check bounds via Len.
func (b *Buffer) At(i int) Char { return b.cells[i] }

// Set overwrites the cell at index i.
func (b *Buffer) Set(i int, c Char) { b.cells[i] = c }

// Tail returns the last n cells (or fewer, if the buffer is shorter).
func (b *Buffer) Tail(n int) []Char {
	if n > len(b.cells) {
		n = len(b.cells)
	}
	return b.cells[len(b.cells)-n:]
}

// All returns every cell, oldest first. Callers must not mutate the
// returned slice.
func (b *Buffer) All() []Char { return b.cells }

// Append adds a new cell, scroll-discarding the oldest cell if the buffer
// is already at capacity (§3 invariant: bounded length, never fails).
func (b *Buffer) Append(c Char) {
	if len(b.cells) >= maxBufferLen {
		copy(b.cells, b.cells[1:])
		b.cells[len(b.cells)-1] = c
		return
	}
	b.cells = append(b.cells, c)
}

// PopBack removes and returns the last cell. ok is false on an empty
// buffer.
func (b *Buffer) PopBack() (c Char, ok bool) {
	if len(b.cells) == 0 {
		return Char{}, false
	}
	c = b.cells[len(b.cells)-1]
	b.cells = b.cells[:len(b.cells)-1]
	return c, true
}

// Clear empties the buffer.
func (b *Buffer) Clear() { b.cells = b.cells[:0] }

// LastTransformKind discriminates the variant held in a LastTransform.
type LastTransformKind uint8

const (
	TransformNone LastTransformKind = iota
	TransformMark                   // tone-mark trigger applied (s/f/r/x/j, 1-5)
	TransformTone                   // vowel mark trigger applied (aa, ow, 6/7/8); dd/9 use TransformDStroke
	TransformDStroke
	TransformShortcut
)

// LastTransform records the most recent revertible transform so a repeated
// trigger key can undo it (§3, §4.6(h)).
type LastTransform struct {
	Kind LastTransformKind

	TriggerKey KeyId // the key that produced this transform

	// Target cell identity: verified by key identity (TargetKey), not
	// raw index, before being trusted — the buffer may have scrolled or
	// been edited since.
	TargetIndex int
	TargetKey   KeyId

	AppliedTone Tone // set for TransformMark
	AppliedMark Mark // set for TransformTone
	PrevTone    Tone // value before the transform, for revert
	PrevMark    Mark
	PrevDStroke bool

	// For TransformShortcut: lengths needed to undo the expansion.
	ConsumedLen int
	EmittedLen  int
}

// Valid reports whether the transform still refers to a live cell.
func (lt *LastTransform) Valid(buf *Buffer) bool {
	if lt == nil || lt.Kind == TransformNone {
		return false
	}
	if lt.Kind == TransformShortcut {
		return true
	}
	if lt.TargetIndex < 0 || lt.TargetIndex >= buf.Len() {
		return false
	}
	return buf.At(lt.TargetIndex).Key == lt.TargetKey
}
