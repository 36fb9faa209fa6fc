package track

import "math"

// Marker sizing constants. Allele frequencies inside [afDomainMin, afDomainMax]
// map log-linearly to a vertical radius in [ryMin, ryMax]; values outside the
// domain extrapolate along the same line rather than clamping.
const (
	afDomainMin = 0.00001
	afDomainMax = 0.001

	ryMin   = 4.0
	ryMax   = 12.0
	rxFixed = 3.0

	// highlightPad is added to both radii for the dashed highlight outline.
	highlightPad = 5.0
)

// PositionScale maps a genomic coordinate (typically an xpos) to a pixel X.
type PositionScale func(pos float64) float64

// LinearScale returns a PositionScale mapping [domainStart, domainStop] onto
// [0, width]. A degenerate domain maps everything to the middle of the range.
func LinearScale(domainStart, domainStop, width float64) PositionScale {
	span := domainStop - domainStart
	return func(pos float64) float64 {
		if span == 0 {
			return width / 2
		}
		return (pos - domainStart) / span * width
	}
}

// VerticalRadius maps an allele frequency to the vertical marker radius using
// the log-scale described above. Callers must ensure af > 0.
func VerticalRadius(af float64) float64 {
	t := (math.Log(af) - math.Log(afDomainMin)) / (math.Log(afDomainMax) - math.Log(afDomainMin))
	return ryMin + t*(ryMax-ryMin)
}

// Radii returns the marker radii for a variant with the given allele
// frequency. Variants with no frequency render as near-points.
func Radii(af float64) (rx, ry float64) {
	if !(af > 0) {
		return 1, 1
	}
	return rxFixed, VerticalRadius(af)
}
