package pack

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/minepkg/mcassets/internals/merrors"
)

func buildZip(t *testing.T, files map[string]string, order []string) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	for _, name := range order {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(files[name])); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestReader_Entries(t *testing.T) {
	order := []string{"b.txt", "a/", "a/c.txt"}
	data := buildZip(t, map[string]string{"b.txt": "bee", "a/c.txt": "sea"}, order)

	p, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", p.Len())
	}

	for i, name := range order {
		entry, err := p.Entry(i)
		if err != nil {
			t.Fatal(err)
		}
		if entry.Name != name {
			t.Fatalf("entry %d: expected %q got %q", i, name, entry.Name)
		}
		if entry.Index != i {
			t.Fatalf("entry %q: expected index %d got %d", name, i, entry.Index)
		}
	}

	entry, _ := p.Entry(2)
	rc, err := entry.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	content, _ := io.ReadAll(rc)
	if string(content) != "sea" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestReader_EntryOutOfRange(t *testing.T) {
	data := buildZip(t, map[string]string{"a": "a"}, []string{"a"})
	p, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Entry(1); !merrors.IsKind(err, merrors.KindFormat) {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.jar")
	os.WriteFile(valid, buildZip(t, map[string]string{"a": "a"}, []string{"a"}), 0644)
	corrupt := filepath.Join(dir, "corrupt.jar")
	os.WriteFile(corrupt, []byte("this is not a zip file at all"), 0644)

	tests := []struct {
		name string
		path string
		want merrors.Kind
	}{
		{"valid", valid, 0},
		{"missing", filepath.Join(dir, "missing.jar"), merrors.KindIO},
		{"corrupt", corrupt, merrors.KindFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Open(tt.path)
			if tt.want == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				p.Close()
				return
			}
			if !merrors.IsKind(err, tt.want) {
				t.Fatalf("expected %v error, got %v", tt.want, err)
			}
		})
	}
}
