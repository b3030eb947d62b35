package thumbnail

import (
	"image"
	"testing"
)

func TestDrawMetadata_Geometry(t *testing.T) {
	faces := testFaces(t)
	opts := DefaultOptions().Metadata
	opts.TopMargin = 200
	canvas := NewCanvas()

	rect := DrawMetadata(canvas, "Medium", "Dinner", faces.Label, faces.Value, opts)

	first := max(textWidth(faces.Label, "DIFFICULTY"), textWidth(faces.Value, "Medium"))
	second := max(textWidth(faces.Label, "MEAL"), textWidth(faces.Value, "Dinner"))
	_, labelHeight := textExtent(faces.Label)
	_, valueHeight := textExtent(faces.Value)
	want := image.Rect(
		opts.LeftMargin,
		200,
		opts.LeftMargin+first+opts.SpaceBetween+second+2*opts.HorizontalPadding,
		200+labelHeight+valueHeight+2*opts.VerticalPadding,
	)
	if rect != want {
		t.Fatalf("box = %v, want %v", rect, want)
	}

	img := canvas.Image()
	if got, want := rgbaAt(img, rect.Min.X+3, rect.Min.Y+3), boxOverWhite(); !near(got, want) {
		t.Errorf("box pixel = %+v, want about %+v", got, want)
	}
	if got := rgbaAt(img, rect.Max.X+3, rect.Min.Y+3); got != white {
		t.Errorf("pixel right of box = %+v, want white", got)
	}
	if got := rgbaAt(img, rect.Min.X+3, rect.Max.Y+3); got != white {
		t.Errorf("pixel below box = %+v, want white", got)
	}
}

func TestDrawMetadata_ColumnFollowsLongerText(t *testing.T) {
	faces := testFaces(t)
	opts := DefaultOptions().Metadata

	short := DrawMetadata(NewCanvas(), "Easy", "Lunch", faces.Label, faces.Value, opts)
	long := DrawMetadata(NewCanvas(), "Surprisingly involved", "Lunch", faces.Label, faces.Value, opts)

	grow := textWidth(faces.Value, "Surprisingly involved") - max(textWidth(faces.Label, "DIFFICULTY"), textWidth(faces.Value, "Easy"))
	if got := long.Dx() - short.Dx(); got != grow {
		t.Errorf("box grew by %d, want %d", got, grow)
	}
	if short.Dy() != long.Dy() {
		t.Errorf("box height changed: %d vs %d", short.Dy(), long.Dy())
	}
}

func TestDrawMetadata_EmptyValues(t *testing.T) {
	faces := testFaces(t)
	opts := DefaultOptions().Metadata

	rect := DrawMetadata(NewCanvas(), "", "", faces.Label, faces.Value, opts)

	want := textWidth(faces.Label, "DIFFICULTY") + opts.SpaceBetween + textWidth(faces.Label, "MEAL") + 2*opts.HorizontalPadding
	if rect.Dx() != want {
		t.Errorf("box width = %d, want %d", rect.Dx(), want)
	}
}
