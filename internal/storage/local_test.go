package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSave_ReturnsPublicURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "https://shop.example.com", nil)
	if err != nil {
		t.Fatalf("new local: %v", err)
	}

	url, err := store.Save("photo.JPG", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(url, "https://shop.example.com/uploads/") || !strings.HasSuffix(url, ".jpg") {
		t.Fatalf("unexpected url %q", url)
	}

	name := filepath.Base(url)
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestSave_RelativeURLWithoutHost(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "", nil)
	if err != nil {
		t.Fatalf("new local: %v", err)
	}
	url, err := store.Save("a.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(url, URLPrefix+"/") {
		t.Fatalf("expected relative url, got %q", url)
	}
}

func TestSave_RejectsUnsupportedExtension(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "", nil)
	if err != nil {
		t.Fatalf("new local: %v", err)
	}
	for _, name := range []string{"script.sh", "doc.pdf", "noext"} {
		if _, err := store.Save(name, strings.NewReader("x")); !errors.Is(err, ErrUnsupportedType) {
			t.Fatalf("%s: expected ErrUnsupportedType, got %v", name, err)
		}
	}
}

func TestSave_UniqueNames(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "", nil)
	if err != nil {
		t.Fatalf("new local: %v", err)
	}
	first, err := store.Save("same.jpg", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, err := store.Save("same.jpg", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first == second {
		t.Fatalf("uploads must not collide: %q", first)
	}
}
