package export

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func entryNames(t *testing.T, data []byte) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestBundleEntries(t *testing.T) {
	var buf bytes.Buffer
	if err := Bundle(&buf, testOverlay(), []byte("fake image bytes")); err != nil {
		t.Fatalf("bundle: %v", err)
	}

	names := entryNames(t, buf.Bytes())
	want := []string{ComponentEntryName, InstructionsEntryName, ImageEntryName}
	if len(names) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), names)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("entry %d: expected %s, got %s", i, n, names[i])
		}
	}
}

func TestBundleWithoutImage(t *testing.T) {
	var buf bytes.Buffer
	if err := Bundle(&buf, testOverlay(), nil); err != nil {
		t.Fatalf("bundle: %v", err)
	}

	names := entryNames(t, buf.Bytes())
	if len(names) != 2 {
		t.Fatalf("expected 2 entries without image, got %v", names)
	}
	if names[0] != ComponentEntryName || names[1] != InstructionsEntryName {
		t.Errorf("unexpected entries: %v", names)
	}
}

func TestWriteBundleImageFailureIsWarning(t *testing.T) {
	dir := t.TempDir()

	path, warning, err := WriteBundle(dir, testOverlay(), filepath.Join(dir, "missing.png"))
	if err != nil {
		t.Fatalf("bundle should survive a missing image: %v", err)
	}
	if warning == "" {
		t.Error("expected a warning about the missing image")
	}
	if filepath.Base(path) != BundleFileName {
		t.Errorf("expected fixed filename %s, got %s", BundleFileName, filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got := entryNames(t, data); len(got) != 2 {
		t.Errorf("expected component + instructions only, got %v", got)
	}
}

func TestWriteBundleWithImage(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "photo.png")
	if err := os.WriteFile(imgPath, []byte("raw"), 0644); err != nil {
		t.Fatal(err)
	}

	path, warning, err := WriteBundle(dir, testOverlay(), imgPath)
	if err != nil {
		t.Fatalf("bundle: %v", err)
	}
	if warning != "" {
		t.Errorf("unexpected warning: %s", warning)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := entryNames(t, data); len(got) != 3 {
		t.Errorf("expected 3 entries, got %v", got)
	}
}

func TestInstructions(t *testing.T) {
	o := testOverlay()
	o.Mask.Toggle(4)
	o.Grid.Levels = 3

	doc := Instructions(o)

	for _, want := range []string{
		ComponentEntryName,
		ImageEntryName,
		"framer-motion",
		"z-index",
		"import GridOverlay",
		"quantized to 3 levels",
		"masked    1 of 80 cells",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("instructions missing %q", want)
		}
	}
}
