package highscore

import "strings"

// NameBuffer edits a high-score name: printable ASCII only, at most NameLength bytes
type NameBuffer struct {
	buf [NameLength]byte
	n   int
}

// Type appends r, returns false if r is not printable ASCII or the buffer is full
func (b *NameBuffer) Type(r rune) bool {
	if r < 32 || r >= 127 || b.n >= NameLength {
		return false
	}
	b.buf[b.n] = byte(r)
	b.n++
	return true
}

// Backspace removes the last character, returns false when empty
func (b *NameBuffer) Backspace() bool {
	if b.n == 0 {
		return false
	}
	b.n--
	return true
}

func (b *NameBuffer) Reset()         { b.n = 0 }
func (b *NameBuffer) Len() int       { return b.n }
func (b *NameBuffer) String() string { return string(b.buf[:b.n]) }

// Display renders the fixed-width entry field: typed text, '_' cursor, '.' padding
func (b *NameBuffer) Display() string {
	var sb strings.Builder
	sb.Grow(NameLength)
	sb.Write(b.buf[:b.n])
	if b.n < NameLength {
		sb.WriteByte('_')
		sb.WriteString(strings.Repeat(".", NameLength-b.n-1))
	}
	return sb.String()
}
