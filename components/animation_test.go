package components

import (
	"image"
	"testing"
)

func newPlayerAnimated() *AnimatedData {
	return &AnimatedData{
		FrameRect:   image.Rect(0, 0, 32, 32),
		SheetCols:   10,
		SheetFrames: 80,
	}
}

func TestSourceRect(t *testing.T) {
	a := newPlayerAnimated()
	tests := []struct {
		frame int
		want  image.Rectangle
	}{
		{0, image.Rect(0, 0, 32, 32)},
		{7, image.Rect(224, 0, 256, 32)},
		{10, image.Rect(0, 32, 32, 64)},
		{43, image.Rect(96, 128, 128, 160)},
		{79, image.Rect(288, 224, 320, 256)},
	}
	for _, tt := range tests {
		if got := a.SourceRect(tt.frame); got != tt.want {
			t.Errorf("SourceRect(%d) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestSourceRectOutOfSheetPanics(t *testing.T) {
	for _, frame := range []int{-1, 80} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SourceRect(%d) did not panic", frame)
				}
			}()
			newPlayerAnimated().SourceRect(frame)
		}()
	}
}

func TestSetAnimationRestarts(t *testing.T) {
	a := newPlayerAnimated()
	a.SetAnimation(40, 49, true, 200)
	a.UpdateFrame(650)
	if a.Frame() != 43 {
		t.Fatalf("Frame() = %d, want 43", a.Frame())
	}
	a.SetAnimation(40, 49, true, 200)
	if a.Frame() != 40 || a.Animation.Elapsed() != 0 {
		t.Errorf("same animation did not restart: frame=%d elapsed=%v", a.Frame(), a.Animation.Elapsed())
	}
}

func TestSetAnimationOutsideSheetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("SetAnimation(70, 80) on an 80-frame sheet did not panic")
		}
	}()
	newPlayerAnimated().SetAnimation(70, 80, true, 200)
}

func TestFrameImageWithoutSheet(t *testing.T) {
	a := newPlayerAnimated()
	a.SetAnimation(7, 7, false, 200)
	if img := a.FrameImage(); img != nil {
		t.Errorf("FrameImage() without sheet = %v, want nil", img)
	}
}
