package object

import (
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"resume-assistant/internal/shared/util"
)

// SniffLen is how many leading bytes are buffered to detect the content type.
const SniffLen = 3072

// KeyForFileName returns the storage name for an uploaded file. Names that
// sanitize to nothing get a generated one.
func KeyForFileName(fileName string) string {
	if name := util.SecureFileName(fileName); name != "" {
		return name
	}
	return "upload-" + uuid.NewString()
}

// Sniff reads up to SniffLen bytes from r and detects their content type.
// The returned head must be written before the rest of r.
func Sniff(r io.Reader) (head []byte, mimeType string, err error) {
	buf := make([]byte, SniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, "", err
	}
	head = buf[:n]
	return head, mimetype.Detect(head).String(), nil
}
