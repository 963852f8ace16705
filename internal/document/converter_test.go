package document

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const bodyXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>RENCANA PEMBELAJARAN SEMESTER</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Mata Kuliah: </w:t></w:r><w:r><w:t>Statistika</w:t></w:r></w:p>
    <w:p></w:p>
    <w:p><w:r><w:t>Pertemuan</w:t><w:tab/><w:t>Topik</w:t></w:r></w:p>
    <w:p><w:r><w:t>Baris satu</w:t><w:br/><w:t>Baris dua</w:t></w:r></w:p>
  </w:body>
</w:document>`

func writeDocx(t *testing.T, name string, parts map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for n, body := range parts {
		w, err := zw.Create(n)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvert(t *testing.T) {
	path := writeDocx(t, "RPS Statistika.docx", map[string]string{
		"[Content_Types].xml": `<Types/>`,
		"word/document.xml":   bodyXML,
	})

	doc, err := NewConverter().Convert(context.Background(), path)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	want := strings.Join([]string{
		"RENCANA PEMBELAJARAN SEMESTER",
		"Mata Kuliah: Statistika",
		"Pertemuan\tTopik",
		"Baris satu\nBaris dua",
	}, "\n\n")
	if diff := cmp.Diff(want, doc.Content); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}

	meta := doc.Metadata
	if meta.Title != "RPS Statistika" {
		t.Errorf("Title = %q", meta.Title)
	}
	if meta.ParagraphCount != 4 {
		t.Errorf("ParagraphCount = %d, want 4", meta.ParagraphCount)
	}
	if meta.WordCount != 12 {
		t.Errorf("WordCount = %d, want 12", meta.WordCount)
	}
	if meta.SourceFormat != "docx" || meta.Oversize {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if doc.Preview != doc.Content {
		t.Error("short document preview should equal content")
	}
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()

	notZip := filepath.Join(dir, "broken.docx")
	if err := os.WriteFile(notZip, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatal(err)
	}
	noBody := writeDocx(t, "empty.docx", map[string]string{"docProps/app.xml": "<Properties/>"})
	badXML := writeDocx(t, "bad.docx", map[string]string{"word/document.xml": "<w:document><w:body><w:p>"})

	tests := []struct {
		name string
		path string
		want error
	}{
		{"wrong extension", filepath.Join(dir, "rps.pdf"), ErrUnsupportedFormat},
		{"legacy doc", filepath.Join(dir, "rps.doc"), ErrUnsupportedFormat},
		{"missing file", filepath.Join(dir, "missing.docx"), ErrNotFound},
		{"not a zip", notZip, ErrCorrupt},
		{"no body part", noBody, ErrCorrupt},
		{"truncated xml", badXML, ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConverter().Convert(context.Background(), tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Convert error = %v, want %v", err, tt.want)
			}
		})
	}
}

const textBoxXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
    xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006"
    xmlns:wps="http://schemas.microsoft.com/office/word/2010/wordprocessingShape"
    xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
    xmlns:v="urn:schemas-microsoft-com:vml">
  <w:body>
    <w:p>
      <w:r><w:t xml:space="preserve">Sebelum </w:t></w:r>
      <w:r>
        <mc:AlternateContent>
          <mc:Choice Requires="wps">
            <w:drawing>
              <wps:txbx>
                <w:txbxContent>
                  <w:p><w:r><w:t>Isi kotak</w:t></w:r></w:p>
                </w:txbxContent>
              </wps:txbx>
              <a:p><a:r><a:t>Bentuk</a:t></a:r></a:p>
            </w:drawing>
          </mc:Choice>
          <mc:Fallback>
            <w:pict>
              <v:textbox>
                <w:txbxContent>
                  <w:p><w:r><w:t>Isi kotak</w:t></w:r></w:p>
                </w:txbxContent>
              </v:textbox>
            </w:pict>
          </mc:Fallback>
        </mc:AlternateContent>
      </w:r>
      <w:r><w:t>sesudah</w:t></w:r>
    </w:p>
    <w:p><w:r><w:t>Penutup</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestConvertTextBox(t *testing.T) {
	path := writeDocx(t, "kotak.docx", map[string]string{"word/document.xml": textBoxXML})

	doc, err := NewConverter().Convert(context.Background(), path)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	want := strings.Join([]string{
		"Sebelum sesudah",
		"Isi kotak",
		"Penutup",
	}, "\n\n")
	if diff := cmp.Diff(want, doc.Content); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
	if doc.Metadata.ParagraphCount != 3 {
		t.Errorf("ParagraphCount = %d, want 3", doc.Metadata.ParagraphCount)
	}
}

func TestConvertUppercaseExtension(t *testing.T) {
	path := writeDocx(t, "RPS.DOCX", map[string]string{"word/document.xml": bodyXML})
	if _, err := NewConverter().Convert(context.Background(), path); err != nil {
		t.Fatalf("Convert: %v", err)
	}
}

func TestConvertCancelled(t *testing.T) {
	path := writeDocx(t, "rps.docx", map[string]string{"word/document.xml": bodyXML})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewConverter().Convert(ctx, path); !errors.Is(err, context.Canceled) {
		t.Errorf("Convert error = %v, want context.Canceled", err)
	}
}

func TestPreviewTruncates(t *testing.T) {
	long := strings.Repeat("é", previewLength+10)
	got := preview(long)
	if n := len([]rune(got)); n != previewLength {
		t.Errorf("preview has %d runes, want %d", n, previewLength)
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("preview missing ellipsis")
	}
}

func TestFileSizeHuman(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{MaxFileSize, "10.0 MB"},
	}
	for _, tt := range tests {
		if got := (Metadata{FileSizeBytes: tt.size}).FileSizeHuman(); got != tt.want {
			t.Errorf("FileSizeHuman(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
