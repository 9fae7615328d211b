package imaging

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWindows_LargeImage(t *testing.T) {
	bounds := image.Rect(0, 0, 2000, 2000)

	windows, err := Windows(bounds, 750)
	if err != nil {
		t.Fatalf("Windows failed: %v", err)
	}

	// floor(2000/750)*2 = 4 steps per axis, stride 375
	if len(windows) != 16 {
		t.Fatalf("expected 16 windows, got %d", len(windows))
	}

	var xs []int
	for _, w := range windows {
		if w.Row == 0 {
			xs = append(xs, w.Rect.Min.X)
		}
	}
	if diff := cmp.Diff([]int{0, 375, 750, 1125}, xs); diff != "" {
		t.Errorf("x offsets mismatch (-want +got):\n%s", diff)
	}

	limit := 2000 - 750 - 1
	for _, w := range windows {
		if w.Rect.Min.X > limit || w.Rect.Min.Y > limit {
			t.Errorf("window %v exceeds clamp limit %d", w, limit)
		}
		if !w.Rect.In(bounds) {
			t.Errorf("window %v outside image bounds", w.Rect)
		}
		if w.Rect.Dx() != 750 || w.Rect.Dy() != 750 {
			t.Errorf("window %v: size got %dx%d, want 750x750", w.Rect, w.Rect.Dx(), w.Rect.Dy())
		}
	}
}

func TestWindows_ClampsToFarEdge(t *testing.T) {
	// 4 steps; 750 and 1125 both exceed 1500-750-1 = 749
	windows, err := Windows(image.Rect(0, 0, 1500, 800), 750)
	if err != nil {
		t.Fatalf("Windows failed: %v", err)
	}

	var xs, ys []int
	for _, w := range windows {
		if w.Row == 0 {
			xs = append(xs, w.Rect.Min.X)
		}
		if w.Col == 0 {
			ys = append(ys, w.Rect.Min.Y)
		}
	}

	if diff := cmp.Diff([]int{0, 375, 749, 749}, xs); diff != "" {
		t.Errorf("x offsets mismatch (-want +got):\n%s", diff)
	}
	// 800/750*2 = 2 steps, limit 49
	if diff := cmp.Diff([]int{0, 49}, ys); diff != "" {
		t.Errorf("y offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestWindows_Order(t *testing.T) {
	windows, err := Windows(image.Rect(0, 0, 41, 41), 20)
	if err != nil {
		t.Fatalf("Windows failed: %v", err)
	}

	want := []Window{
		{Col: 0, Row: 0, Rect: image.Rect(0, 0, 20, 20)},
		{Col: 0, Row: 1, Rect: image.Rect(0, 10, 20, 30)},
		{Col: 0, Row: 2, Rect: image.Rect(0, 20, 20, 40)},
		{Col: 0, Row: 3, Rect: image.Rect(0, 20, 20, 40)},
		{Col: 1, Row: 0, Rect: image.Rect(10, 0, 30, 20)},
		{Col: 1, Row: 1, Rect: image.Rect(10, 10, 30, 30)},
		{Col: 1, Row: 2, Rect: image.Rect(10, 20, 30, 40)},
		{Col: 1, Row: 3, Rect: image.Rect(10, 20, 30, 40)},
		{Col: 2, Row: 0, Rect: image.Rect(20, 0, 40, 20)},
		{Col: 2, Row: 1, Rect: image.Rect(20, 10, 40, 30)},
		{Col: 2, Row: 2, Rect: image.Rect(20, 20, 40, 40)},
		{Col: 2, Row: 3, Rect: image.Rect(20, 20, 40, 40)},
		{Col: 3, Row: 0, Rect: image.Rect(20, 0, 40, 20)},
		{Col: 3, Row: 1, Rect: image.Rect(20, 10, 40, 30)},
		{Col: 3, Row: 2, Rect: image.Rect(20, 20, 40, 40)},
		{Col: 3, Row: 3, Rect: image.Rect(20, 20, 40, 40)},
	}
	if diff := cmp.Diff(want, windows); diff != "" {
		t.Errorf("Windows mismatch (-want +got):\n%s", diff)
	}
}

func TestWindows_OffsetBounds(t *testing.T) {
	windows, err := Windows(image.Rect(100, 200, 141, 241), 20)
	if err != nil {
		t.Fatalf("Windows failed: %v", err)
	}

	if got := windows[0].Rect; got != image.Rect(100, 200, 120, 220) {
		t.Errorf("first window: got %v, want (100,200)-(120,220)", got)
	}
}

func TestWindows_Errors(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		size   int
		want   error
	}{
		{"narrower than tile", image.Rect(0, 0, 500, 2000), 750, ErrImageTooSmall},
		{"shorter than tile", image.Rect(0, 0, 2000, 500), 750, ErrImageTooSmall},
		{"exactly tile size", image.Rect(0, 0, 750, 750), 750, ErrImageTooSmall},
		{"zero tile size", image.Rect(0, 0, 100, 100), 0, ErrInvalidTileSize},
		{"negative tile size", image.Rect(0, 0, 100, 100), -4, ErrInvalidTileSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Windows(tt.bounds, tt.size)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWindow_Name(t *testing.T) {
	w := Window{Col: 3, Row: 1}
	if got := w.Name(); got != "img_1_3" {
		t.Errorf("Name: got %s, want img_1_3", got)
	}
}
