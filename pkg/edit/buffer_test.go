package edit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuffer_InsertAtDot_AppendsInOrder(t *testing.T) {
	buf := NewBuffer(8)
	for _, b := range []byte("abc") {
		if !buf.InsertAtDot(b) {
			t.Fatalf("InsertAtDot(%q) = false, want true", b)
		}
	}
	if buf.String() != "abc" {
		t.Errorf("buffer content = %q, want %q", buf.String(), "abc")
	}
	if buf.Dot() != buf.Len() {
		t.Errorf("dot = %d, want %d (buffer length)", buf.Dot(), buf.Len())
	}
}

func TestBuffer_InsertAtDot_ShiftsTail(t *testing.T) {
	buf := NewBuffer(8)
	for _, b := range []byte("ac") {
		buf.InsertAtDot(b)
	}
	// Move the dot between "a" and "c" and insert "b"; the tail must
	// shift right rather than be overwritten.
	buf.dot = 1
	buf.InsertAtDot('b')

	if diff := cmp.Diff("abc", buf.String()); diff != "" {
		t.Errorf("buffer content (-want +got):\n%s", diff)
	}
	if buf.Dot() != 2 {
		t.Errorf("dot = %d, want 2", buf.Dot())
	}
}

func TestBuffer_InsertAtDot_RejectsWhenFull(t *testing.T) {
	buf := NewBuffer(2)
	buf.InsertAtDot('a')
	buf.InsertAtDot('b')
	if !buf.Full() {
		t.Fatal("buffer not full after filling to capacity")
	}

	if buf.InsertAtDot('x') {
		t.Error("InsertAtDot on full buffer = true, want false")
	}
	if buf.String() != "ab" || buf.Len() != 2 {
		t.Errorf("buffer changed by rejected insert: content %q, len %d",
			buf.String(), buf.Len())
	}
}

func TestBuffer_Clear(t *testing.T) {
	buf := NewBuffer(4)
	for _, b := range []byte("hi") {
		buf.InsertAtDot(b)
	}

	buf.Clear()
	if buf.Len() != 0 || buf.Dot() != 0 {
		t.Errorf("after Clear: len %d, dot %d, want 0, 0", buf.Len(), buf.Dot())
	}
	// Clear must not shrink the capacity.
	for i := 0; i < 4; i++ {
		if !buf.InsertAtDot('x') {
			t.Fatalf("insert %d after Clear rejected", i)
		}
	}
}

func TestBuffer_TailFromDot(t *testing.T) {
	buf := NewBuffer(8)
	for _, b := range []byte("abcd") {
		buf.InsertAtDot(b)
	}
	buf.dot = 1
	if diff := cmp.Diff([]byte("bcd"), buf.TailFromDot()); diff != "" {
		t.Errorf("TailFromDot (-want +got):\n%s", diff)
	}
}
