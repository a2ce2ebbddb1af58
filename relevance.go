package insideideo

import (
	"sort"
	"strings"
)

// Heuristic keyword lists for classifying AI image descriptions. This is
// a best-effort filter over free text: false positives and negatives are
// expected and acceptable.
var (
	// failureMarkers indicate the description itself is broken.
	failureMarkers = []string{
		"not found",
		"description for image",
	}

	// decorativeKeywords suggest blank or decorative content. Two or
	// more matches reject the image unless an override pair matches.
	decorativeKeywords = []string{
		"blank",
		"empty",
		"plain",
		"solid color",
		"geometric",
		"abstract",
		"gradient",
		"background",
		"pattern",
		"texture",
		"decorative",
		"placeholder",
		"logo",
		"border",
	}

	// contentOverrides are keyword pairs that mark an image as
	// meaningful even when decorative keywords also match.
	contentOverrides = [][2]string{
		{"chart", "data"},
		{"graph", "showing"},
		{"diagram", "showing"},
		{"photo", "people"},
		{"screenshot", "interface"},
		{"table", "data"},
	}
)

// Meaningful reports whether the image's AI description suggests real
// content rather than decoration. Images without a description, or whose
// description carries a failure marker, are rejected outright.
func (i *ExtractedImage) Meaningful() bool {
	desc := strings.ToLower(strings.TrimSpace(i.Description))
	if desc == "" {
		return false
	}
	for _, marker := range failureMarkers {
		if strings.Contains(desc, marker) {
			return false
		}
	}

	for _, pair := range contentOverrides {
		if strings.Contains(desc, pair[0]) && strings.Contains(desc, pair[1]) {
			return true
		}
	}

	hits := 0
	for _, kw := range decorativeKeywords {
		if strings.Contains(desc, kw) {
			hits++
		}
	}
	return hits < 2
}

// MeaningfulImages filters images through the description heuristic and
// returns the survivors sorted by page, then by intra-page index.
func MeaningfulImages(images []*ExtractedImage) []*ExtractedImage {
	var meaningful []*ExtractedImage
	for _, img := range images {
		if img.Meaningful() {
			meaningful = append(meaningful, img)
		}
	}
	SortImages(meaningful)
	return meaningful
}

// SortImages orders images by page number, then by intra-page index.
func SortImages(images []*ExtractedImage) {
	sort.SliceStable(images, func(a, b int) bool {
		if images[a].Page != images[b].Page {
			return images[a].Page < images[b].Page
		}
		return images[a].Index < images[b].Index
	})
}
