package strutil

import "testing"

func TestChopLineEnding(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"ls", "ls"},
		{"ls\n", "ls"},
		{"ls\r\n", "ls"},
		{"\n", ""},
		{"a\nb", "a\nb"},
	}
	for _, test := range tests {
		if got := ChopLineEnding(test.in); got != test.want {
			t.Errorf("ChopLineEnding(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}
