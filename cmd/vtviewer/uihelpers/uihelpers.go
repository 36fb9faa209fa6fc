package uihelpers

import (
	"fmt"
	"strings"
)

// ComputeTrackWidth clamps a desired track width (e.g. the window width) to
// the range the track renders well at.
func ComputeTrackWidth(rawW int) int {
	w := rawW
	if w < 400 {
		w = 400
	}
	if w > 1600 {
		w = 1600
	}
	return w
}

// ComputeOverviewHeight derives the overview chart height from the track
// width, keeping a wide aspect with sane bounds.
func ComputeOverviewHeight(trackWidth int) int {
	h := trackWidth / 6
	if h < 100 {
		h = 100
	}
	if h > 200 {
		h = 200
	}
	return h
}

// FormatHoverSummary builds the hover label text from nearby variant IDs,
// closest first. Empty input yields an empty string (label hidden); long
// lists are capped at maxShown with a counter suffix.
func FormatHoverSummary(ids []string, maxShown int) string {
	if len(ids) == 0 {
		return ""
	}
	if maxShown <= 0 {
		maxShown = 1
	}
	shown := ids
	extra := 0
	if len(ids) > maxShown {
		shown = ids[:maxShown]
		extra = len(ids) - maxShown
	}
	s := strings.Join(shown, ", ")
	if extra > 0 {
		s = fmt.Sprintf("%s (+%d more)", s, extra)
	}
	return s
}
