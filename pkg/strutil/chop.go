// Package strutil contains string utilities.
package strutil

// ChopLineEnding removes a trailing "\r\n" or "\n" from s, returning s
// unchanged if it ends with neither.
func ChopLineEnding(s string) string {
	if len(s) >= 2 && s[len(s)-2:] == "\r\n" {
		return s[:len(s)-2]
	} else if len(s) >= 1 && s[len(s)-1] == '\n' {
		return s[:len(s)-1]
	}
	return s
}
