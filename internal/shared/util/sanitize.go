package util

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// SecureFileName reduces an uploaded file name to a flat ASCII name that is
// safe to join with a storage directory. Accents are folded, path separators
// become word breaks, whitespace runs collapse to "_", anything outside
// [A-Za-z0-9_.-] is dropped and leading or trailing dots and underscores are
// trimmed. The result may be empty.
func SecureFileName(name string) string {
	folded := norm.NFKD.String(name)

	ascii := make([]byte, 0, len(folded))
	for _, r := range folded {
		if r < utf8.RuneSelf {
			ascii = append(ascii, byte(r))
		}
	}
	s := strings.ReplaceAll(string(ascii), "/", " ")
	s = strings.Join(strings.Fields(s), "_")

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			b.WriteByte(ch)
		case ch == '_' || ch == '.' || ch == '-':
			b.WriteByte(ch)
		}
	}
	return strings.Trim(b.String(), "._")
}
