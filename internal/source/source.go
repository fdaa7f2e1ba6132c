// Package source loads note text from supported input formats.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Source yields the full note text of one input file.
type Source interface {
	Text() (string, error)
	Close() error
}

// Open picks the reader by file extension: plain text and markdown are read
// directly, PDF notes go through the embedded text layer.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".text":
		return &TextSource{path: path}, nil
	case ".pdf":
		return NewPDFSource(path)
	}
	return nil, fmt.Errorf("unsupported note format: %s", path)
}

// TextSource reads a plain text or markdown note.
type TextSource struct {
	path string
}

func (t *TextSource) Text() (string, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (t *TextSource) Close() error { return nil }

// PDFSource extracts the embedded text layer of every page. Scanned PDFs
// without a text layer yield empty text; OCR is out of scope.
type PDFSource struct {
	doc *fitz.Document
}

func NewPDFSource(path string) (*PDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &PDFSource{doc: doc}, nil
}

func (p *PDFSource) Text() (string, error) {
	var sb strings.Builder
	for i := 0; i < p.doc.NumPage(); i++ {
		text, err := p.doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func (p *PDFSource) Close() error {
	return p.doc.Close()
}
