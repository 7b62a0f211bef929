package edit

// Buffer is the line being edited: a bounded byte sequence plus the dot,
// the logical insertion point. The dot is always within [0, Len()], and
// the length never exceeds the maximum fixed at creation.
type Buffer struct {
	bytes []byte
	dot   int
}

// NewBuffer creates an empty Buffer that holds at most max bytes.
func NewBuffer(max int) *Buffer {
	return &Buffer{bytes: make([]byte, 0, max)}
}

// InsertAtDot inserts b at the dot, shifting any bytes at and after the
// dot one position right, and advances the dot past the inserted byte.
// It reports whether the byte was inserted; a full buffer rejects the
// byte and is left unchanged.
func (buf *Buffer) InsertAtDot(b byte) bool {
	if len(buf.bytes) == cap(buf.bytes) {
		return false
	}
	buf.bytes = buf.bytes[:len(buf.bytes)+1]
	copy(buf.bytes[buf.dot+1:], buf.bytes[buf.dot:])
	buf.bytes[buf.dot] = b
	buf.dot++
	return true
}

// Clear empties the buffer and moves the dot to 0. It only resets the
// length; the underlying storage is kept.
func (buf *Buffer) Clear() {
	buf.bytes = buf.bytes[:0]
	buf.dot = 0
}

// Content returns the buffer contents. The returned slice aliases the
// buffer's storage and is only valid until the next mutation.
func (buf *Buffer) Content() []byte { return buf.bytes }

// String returns the buffer contents as a string.
func (buf *Buffer) String() string { return string(buf.bytes) }

// Len returns the number of bytes in the buffer.
func (buf *Buffer) Len() int { return len(buf.bytes) }

// Dot returns the dot position.
func (buf *Buffer) Dot() int { return buf.dot }

// Full reports whether the buffer is at its maximum length.
func (buf *Buffer) Full() bool { return len(buf.bytes) == cap(buf.bytes) }

// TailFromDot returns the bytes after the dot. Render sync redraws these
// after an insertion so that the visible line matches the buffer.
func (buf *Buffer) TailFromDot() []byte { return buf.bytes[buf.dot:] }
