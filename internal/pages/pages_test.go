package pages

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSortByNumber(t *testing.T) {
	in := []string{"scan_10.tif", "scan_2.tif", "scan_1.tif", "cover.png", "0003.jpg"}
	want := []string{"scan_1.tif", "scan_2.tif", "0003.jpg", "scan_10.tif", "cover.png"}

	got := SortByNumber(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortByNumber mismatch (-want +got):\n%s", diff)
	}
	if in[0] != "scan_10.tif" {
		t.Error("SortByNumber must not modify its input")
	}
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"page_2.png", "page_10.png", "page_1.png", "notes.txt", "page_3.TIF"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "page_4.png"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	got, err := ListImages(dir)
	if err != nil {
		t.Fatalf("ListImages error = %v", err)
	}
	want := []string{"page_1.png", "page_2.png", "page_3.TIF", "page_10.png"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListImages mismatch (-want +got):\n%s", diff)
	}
}

func TestCount(t *testing.T) {
	t.Run("directory", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"1.jpg", "2.jpg"} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
				t.Fatalf("failed to write %s: %v", name, err)
			}
		}
		n, names, err := Count(dir)
		if err != nil {
			t.Fatalf("Count error = %v", err)
		}
		if n != 2 || len(names) != 2 {
			t.Errorf("Count = %d, %v; want 2 images", n, names)
		}
	})

	t.Run("unsupported file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "book.epub")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		if _, _, err := Count(path); !errors.Is(err, ErrUnsupported) {
			t.Errorf("Count error = %v, want ErrUnsupported", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		if _, _, err := Count(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected error for missing path")
		}
	})

	t.Run("broken pdf", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.pdf")
		if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		if _, _, err := Count(path); err == nil {
			t.Error("expected error for invalid PDF")
		}
	})
}
