// Package variants holds the variant data model shared by the track renderer
// and the viewer/renderer binaries, plus the xpos coordinate utilities and the
// JSONL loader used to bring variant sets in from disk.
package variants

// Variant is a single genomic sequence variant as served by the association
// backend. It is read-only input to the rendering side: the track never
// mutates a Variant, it only derives pixel positions from it.
type Variant struct {
	Contig        string  `json:"contig"`
	Position      int64   `json:"position"`
	Xpos          int64   `json:"xpos,omitempty"`
	Ref           string  `json:"ref,omitempty"`
	Alt           string  `json:"alt,omitempty"`
	VariantID     string  `json:"variant_id"`
	AlleleFreq    float64 `json:"allele_freq"`
	Consequence   string  `json:"consequence,omitempty"`
	IsHighlighted bool    `json:"is_highlighted,omitempty"`
}
