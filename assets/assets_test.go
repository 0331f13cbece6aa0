package assets

import (
	"io/fs"
	"testing"
)

func TestEmbeddedSheets(t *testing.T) {
	for _, name := range []string{"player.png", "coin_gold.png"} {
		if !Has(name) {
			t.Errorf("Has(%q) = false, want true", name)
		}
	}
	if Has("missing.png") {
		t.Errorf("Has(\"missing.png\") = true, want false")
	}
}

func TestEmbeddedSheetsAreNonEmpty(t *testing.T) {
	entries, err := fs.ReadDir(imageFS, "images")
	if err != nil {
		t.Fatalf("ReadDir(images) error = %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no embedded images")
	}
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", e.Name())
		}
	}
}
