package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resume-assistant/internal/shared/storage/object"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	// ErrorMarker prefixes the rendered text of a failed extraction.
	ErrorMarker = "[Extraction error]"
)

// ErrUnsupportedType is returned for payloads that are neither PDF nor DOCX.
var ErrUnsupportedType = errors.New("unsupported file type")

// Result is the outcome of an extraction.
type Result struct {
	Text string
	Err  error
}

// OK reports whether extraction succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// String returns the text, or the error prefixed with ErrorMarker.
func (r Result) String() string {
	if r.Err != nil {
		return ErrorMarker + " " + r.Err.Error()
	}
	return r.Text
}

// ExtractFile extracts text from the document at path.
func ExtractFile(ctx context.Context, path string) Result {
	if err := ctx.Err(); err != nil {
		return Result{Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Err: fmt.Errorf("open %s: %w", filepath.Base(path), err)}
	}
	text, err := ExtractTextFromBytes(ctx, data, "", filepath.Base(path))
	return Result{Text: text, Err: err}
}

// ExtractText reads a stored upload and extracts its text.
func ExtractText(ctx context.Context, store object.ObjectStore, key, mimeType, fileName string) Result {
	if err := ctx.Err(); err != nil {
		return Result{Err: err}
	}

	body, err := store.Open(ctx, key)
	if err != nil {
		return Result{Err: fmt.Errorf("open key=%s: %w", key, err)}
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return Result{Err: fmt.Errorf("read key=%s: %w", key, err)}
	}

	text, err := ExtractTextFromBytes(ctx, raw, mimeType, fileName)
	return Result{Text: text, Err: err}
}

// ExtractTextFromBytes extracts text from an in-memory document. The content
// type is sniffed from data; mimeType and the file extension are fallbacks.
func ExtractTextFromBytes(ctx context.Context, data []byte, mimeType, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch kind := detectType(data, mimeType, fileName); kind {
	case mimePDF:
		return extractPDF(data)
	case mimeDOCX:
		return extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, kind)
	}
}

// extractPDF joins the plain text of every page with newlines. The pdf
// package panics on some malformed input, so panics become errors here.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("malformed pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, err)
		}
		pages = append(pages, pageText)
	}
	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return strings.TrimSpace(raw)
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func detectType(data []byte, mimeType, fileName string) string {
	detected := mimetype.Detect(data)
	switch {
	case detected.Is(mimePDF):
		return mimePDF
	case detected.Is(mimeDOCX):
		return mimeDOCX
	}

	declared := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if declared == mimePDF || declared == mimeDOCX {
		return declared
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDOCX
	}
	return detected.String()
}
