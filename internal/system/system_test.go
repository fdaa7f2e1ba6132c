package system

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestImagePoolReuse(t *testing.T) {
	rect := image.Rect(0, 0, 64, 32)
	img := GetImage(rect)
	if img.Rect.Dx() != 64 || img.Rect.Dy() != 32 {
		t.Fatalf("wrong size: %v", img.Rect)
	}
	PutImage(img)

	again := GetImage(rect)
	if again.Rect.Dx() != 64 || again.Rect.Dy() != 32 {
		t.Fatalf("wrong size after reuse: %v", again.Rect)
	}
	PutImage(again)
	PutImage(nil) // must not panic
}

func TestFindLatestNote(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.txt")
	fresh := filepath.Join(dir, "fresh.md")
	if err := os.WriteFile(old, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fresh, []byte("b"), 0644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}
	// Не-заметки игнорируются независимо от даты.
	if err := os.WriteFile(filepath.Join(dir, "noise.mp3"), []byte("c"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindLatestNote(dir)
	if err != nil {
		t.Fatalf("FindLatestNote failed: %v", err)
	}
	if got != fresh {
		t.Errorf("got %s, want %s", got, fresh)
	}
}

func TestFindLatestNoteEmpty(t *testing.T) {
	if _, err := FindLatestNote(t.TempDir()); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestDefaultWorkersBounds(t *testing.T) {
	n := DefaultWorkers()
	if n < 1 || n > 8 {
		t.Errorf("workers out of range: %d", n)
	}
}
