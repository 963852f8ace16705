package document

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	bodyPart      = "word/document.xml"
	previewLength = 400

	wordNS   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	compatNS = "http://schemas.openxmlformats.org/markup-compatibility/2006"
)

// Converter extracts plain text from .docx files
type Converter struct {
	timeout time.Duration
}

// NewConverter creates a new document converter
func NewConverter() *Converter {
	return &Converter{
		timeout: 30 * time.Second,
	}
}

// Convert extracts the text of the document at path
func (c *Converter) Convert(ctx context.Context, path string) (*Document, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if !strings.EqualFold(filepath.Ext(path), Extension) {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, err
	}

	rc, err := zip.OpenReader(absPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), ErrCorrupt)
	}
	defer rc.Close()

	paragraphs, err := extract(ctx, rc.File)
	if err != nil {
		return nil, err
	}

	content := strings.Join(paragraphs, "\n\n")

	return &Document{
		Content: content,
		Preview: preview(content),
		Metadata: Metadata{
			Title:          strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath)),
			SourcePath:     absPath,
			SourceFormat:   strings.TrimPrefix(Extension, "."),
			FileSizeBytes:  info.Size(),
			ParagraphCount: len(paragraphs),
			WordCount:      len(strings.Fields(content)),
			Oversize:       info.Size() > MaxFileSize,
			ConvertedAt:    time.Now(),
		},
	}, nil
}

func extract(ctx context.Context, files []*zip.File) ([]string, error) {
	var part *zip.File
	for _, f := range files {
		if strings.EqualFold(f.Name, bodyPart) {
			part = f
			break
		}
	}
	if part == nil {
		return nil, fmt.Errorf("%s missing: %w", bodyPart, ErrCorrupt)
	}

	r, err := part.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", bodyPart, ErrCorrupt)
	}
	defer r.Close()

	return paragraphs(ctx, r)
}

// paragraphs walks WordprocessingML and returns the text of every
// non-empty w:p in document order, with w:tab and w:br rendered as
// whitespace. Paragraphs nested in text boxes are kept apart from their
// anchor paragraph, and mc:Fallback copies are skipped.
func paragraphs(ctx context.Context, r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	type para struct {
		slot int
		text strings.Builder
	}

	var (
		out    []string
		open   []*para
		inText bool
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", bodyPart, ErrCorrupt)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == compatNS && t.Name.Local == "Fallback" {
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("parse %s: %w", bodyPart, ErrCorrupt)
				}
				continue
			}
			if !isWord(t.Name) {
				continue
			}
			switch t.Name.Local {
			case "p":
				out = append(out, "")
				open = append(open, &para{slot: len(out) - 1})
				inText = false
			case "t":
				inText = len(open) > 0
			case "tab":
				if len(open) > 0 {
					open[len(open)-1].text.WriteByte('\t')
				}
			case "br", "cr":
				if len(open) > 0 {
					open[len(open)-1].text.WriteByte('\n')
				}
			}
		case xml.CharData:
			if inText {
				open[len(open)-1].text.Write(t)
			}
		case xml.EndElement:
			if !isWord(t.Name) {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if len(open) == 0 {
					continue
				}
				top := open[len(open)-1]
				open = open[:len(open)-1]
				out[top.slot] = strings.TrimRight(top.text.String(), " \t\n")
				inText = false
			}
		}
	}

	return slices.DeleteFunc(out, func(p string) bool {
		return strings.TrimSpace(p) == ""
	}), nil
}

// isWord reports whether n is in the WordprocessingML namespace. Parts that
// never declare it keep the bare prefix.
func isWord(n xml.Name) bool {
	return n.Space == wordNS || n.Space == "w"
}

func preview(content string) string {
	if utf8.RuneCountInString(content) <= previewLength {
		return content
	}
	runes := []rune(content)
	return string(runes[:previewLength-3]) + "..."
}
