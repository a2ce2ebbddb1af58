package insideideo_test

import (
	"testing"

	insideideo "github.com/niravbeni/inside-ideo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractedImage_Meaningful(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
		want        bool
	}{
		{"empty description", "", false},
		{"whitespace description", "   ", false},
		{"failure marker", "Description for image 3 not found", false},
		{"real content", "A photograph of a prototype workshop in progress", true},
		{"single decorative keyword passes", "A chart on a plain white page", true},
		{"two decorative keywords rejected", "A blank page with a gradient background", false},
		{"override beats decorative keywords", "An abstract background chart showing quarterly data", true},
		{"photo of people override", "A decorative border around a photo of people collaborating", true},
		{"case insensitive", "BLANK Placeholder image", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			img := &insideideo.ExtractedImage{Description: tt.description}
			assert.Equal(t, tt.want, img.Meaningful())
		})
	}
}

func TestMeaningfulImages(t *testing.T) {
	t.Parallel()

	images := []*insideideo.ExtractedImage{
		{Filename: "c.png", Page: 2, Index: 0, Description: "A diagram showing the process"},
		{Filename: "rejected.png", Page: 1, Index: 0, Description: ""},
		{Filename: "b.png", Page: 1, Index: 1, Description: "A photo of people in a meeting"},
		{Filename: "a.png", Page: 1, Index: 0, Description: "A screenshot of the interface"},
	}

	got := insideideo.MeaningfulImages(images)
	require.Len(t, got, 3)
	assert.Equal(t, "a.png", got[0].Filename)
	assert.Equal(t, "b.png", got[1].Filename)
	assert.Equal(t, "c.png", got[2].Filename)
}
