package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed images/*.png
	imageFS embed.FS

	sheetLoader = NewSheetLoader()
)

// SheetLoader decodes embedded sprite sheets once and hands out shared
// references. Every coin draws from the same *ebiten.Image.
type SheetLoader struct {
	cache map[string]*ebiten.Image
}

func NewSheetLoader() *SheetLoader {
	return &SheetLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *SheetLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

func (l *SheetLoader) Sheet(name string) *ebiten.Image {
	return l.MustLoadImage("images/" + name)
}

// Has reports whether an embedded sheet with this name exists.
func Has(name string) bool {
	_, err := fs.Stat(imageFS, "images/"+name)
	return err == nil
}

func Sheet(name string) *ebiten.Image {
	return sheetLoader.Sheet(name)
}
