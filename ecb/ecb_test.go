package ecb

import (
	"archive/zip"
	"bytes"
	"testing"
)

func zipWith(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("cannot create %q: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("cannot write %q: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot close archive: %v", err)
	}
	return buf.Bytes()
}

func TestUnzipFirst(t *testing.T) {
	csv := "Date,USD,JPY\n2023-06-01,1.0744,149.95\n"
	data := zipWith(t, map[string]string{"eurofxref-hist.csv": csv})

	got, err := unzipFirst(data)
	if err != nil {
		t.Fatalf("unzipFirst: %v", err)
	}
	if string(got) != csv {
		t.Errorf("unzipFirst = %q, want %q", got, csv)
	}
}

func TestUnzipFirstEmptyArchive(t *testing.T) {
	data := zipWith(t, nil)
	if _, err := unzipFirst(data); err == nil {
		t.Error("unzipFirst on empty archive: want error, got nil")
	}
}

func TestUnzipFirstGarbage(t *testing.T) {
	if _, err := unzipFirst([]byte("not a zip")); err == nil {
		t.Error("unzipFirst on garbage: want error, got nil")
	}
}
