package capture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

func writeShot(t *testing.T, svc *Service, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(svc.cfg.Dir, name), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestValidateFilename_RejectsTraversal(t *testing.T) {
	// WHAT: Path separators and .. sequences are rejected before any
	// filesystem operation.
	// WHY: Delete and metadata take client-supplied names; a traversal
	// name must never reach os calls.
	bad := []string{
		"../etc/passwd",
		"..\\shots.png",
		"a/b.png",
		"shot_..png",
		"",
		"notashot.png",
		"shot_0199a3b2-0f43-7cc1-a111-222233334444.png.exe",
	}
	for _, name := range bad {
		if err := validateFilename(name); !errors.Is(err, ErrInvalidFilename) {
			t.Errorf("validateFilename(%q) = %v, want ErrInvalidFilename", name, err)
		}
	}
}

func TestValidateFilename_AcceptsGeneratedShape(t *testing.T) {
	// WHAT: Names with the shot_<uuid>.png shape pass.
	// WHY: The service only ever serves files it generated itself.
	if err := validateFilename("shot_0199a3b2-0f43-7cc1-a111-222233334444.png"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestList_SkipsForeignFiles(t *testing.T) {
	// WHAT: Files that do not match the generated shape are not listed.
	// WHY: The shots directory may accumulate stray files; they are not
	// part of the resource.
	svc := newTestService(t)
	writeShot(t, svc, "shot_0199a3b2-0f43-7cc1-a111-222233334444.png")
	writeShot(t, svc, "README.txt")

	list, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("List returned %d entries, want 1", len(list))
	}
	if list[0].Filename != "shot_0199a3b2-0f43-7cc1-a111-222233334444.png" {
		t.Errorf("unexpected entry %q", list[0].Filename)
	}
	if list[0].Size != 3 {
		t.Errorf("Size = %d, want 3", list[0].Size)
	}
}

func TestMetadata_MissingFileIsNotFound(t *testing.T) {
	// WHAT: Metadata for an absent screenshot returns ErrNotFound.
	// WHY: The route layer maps this to 404, not 500.
	svc := newTestService(t)
	_, err := svc.Metadata("shot_0199a3b2-0f43-7cc1-a111-222233334444.png")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Metadata error = %v, want ErrNotFound", err)
	}
}

func TestDelete_RemovesFile(t *testing.T) {
	// WHAT: Delete removes the file; a second delete is ErrNotFound.
	const name = "shot_0199a3b2-0f43-7cc1-a111-222233334444.png"
	svc := newTestService(t)
	writeShot(t, svc, name)

	if err := svc.Delete(name); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(name); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestCapture_NoBrowserIsUnavailable(t *testing.T) {
	// WHAT: Capture without a running browser fails with
	// ErrBrowserUnavailable instead of panicking.
	// WHY: The service degrades to list/delete-only when Chrome is down.
	svc := newTestService(t)
	_, err := svc.Capture(t.Context(), Request{URL: "https://example.com"})
	if !errors.Is(err, ErrBrowserUnavailable) {
		t.Errorf("Capture = %v, want ErrBrowserUnavailable", err)
	}
}
