package variants

import (
	"fmt"
	"strconv"
	"strings"
)

// The xpos format encodes (chromosome, position) as a single int64, enabling
// range queries and position sorting across chromosomes:
//
//	xpos = contigNum * 1_000_000_000 + position
//
// Contig numbering: 1-22 autosomes, 23 = X, 24 = Y, 25 = MT/M.
const xposContigStride = 1_000_000_000

// ComputeXpos converts a contig name (with or without a "chr" prefix) and a
// position to an xpos value. An unrecognized contig yields 0.
func ComputeXpos(contig string, position int64) int64 {
	c := strings.TrimPrefix(contig, "chr")
	var contigNum int64
	switch strings.ToUpper(c) {
	case "X":
		contigNum = 23
	case "Y":
		contigNum = 24
	case "M", "MT":
		contigNum = 25
	default:
		n, err := strconv.ParseInt(c, 10, 64)
		if err == nil {
			contigNum = n
		}
	}
	if contigNum <= 0 || contigNum > 25 {
		return 0
	}
	return contigNum*xposContigStride + position
}

// ParseVariantID parses "chr1-12345-A-T" (or "1-12345-A-T") into its xpos and
// ref/alt alleles.
func ParseVariantID(variantID string) (xpos int64, ref, alt string, err error) {
	parts := strings.Split(variantID, "-")
	if len(parts) != 4 {
		return 0, "", "", fmt.Errorf("invalid variant ID %q: expected chr-pos-ref-alt", variantID)
	}
	pos, perr := strconv.ParseInt(parts[1], 10, 64)
	if perr != nil {
		return 0, "", "", fmt.Errorf("invalid position in variant ID %q: %w", variantID, perr)
	}
	xpos = ComputeXpos(parts[0], pos)
	if xpos == 0 {
		return 0, "", "", fmt.Errorf("invalid chromosome in variant ID %q", variantID)
	}
	return xpos, parts[2], parts[3], nil
}

// ParseInterval parses "chr1:100-200" (or "1:100-200") into xpos start/stop.
func ParseInterval(interval string) (start, stop int64, err error) {
	cparts := strings.Split(interval, ":")
	if len(cparts) != 2 {
		return 0, 0, fmt.Errorf("invalid interval %q: expected chr:start-stop", interval)
	}
	rparts := strings.Split(cparts[1], "-")
	if len(rparts) != 2 {
		return 0, 0, fmt.Errorf("invalid range in interval %q: expected start-stop", interval)
	}
	s, serr := strconv.ParseInt(rparts[0], 10, 64)
	if serr != nil {
		return 0, 0, fmt.Errorf("invalid start position %q: %w", rparts[0], serr)
	}
	e, eerr := strconv.ParseInt(rparts[1], 10, 64)
	if eerr != nil {
		return 0, 0, fmt.Errorf("invalid stop position %q: %w", rparts[1], eerr)
	}
	start = ComputeXpos(cparts[0], s)
	stop = ComputeXpos(cparts[0], e)
	if start == 0 || stop == 0 {
		return 0, 0, fmt.Errorf("invalid chromosome in interval %q", interval)
	}
	return start, stop, nil
}
