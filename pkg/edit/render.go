package edit

// syncAfterInsert re-displays the line after an insertion so that the
// terminal matches the buffer: the inserted byte appears at the cursor's
// previous screen position, every buffer byte after the dot is redrawn
// following it, and the terminal cursor is moved back left over the
// redrawn tail so it sits at the dot. Everything is issued as one write,
// so the screen is never stale when the next byte is read.
func (ed *Editor) syncAfterInsert(b byte) {
	tail := ed.buf.TailFromDot()
	p := make([]byte, 0, 1+2*len(tail))
	p = append(p, b)
	p = append(p, tail...)
	for range tail {
		p = append(p, '\b')
	}
	ed.write(p)
}
