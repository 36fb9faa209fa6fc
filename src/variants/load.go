package variants

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// MaxLineBytes bounds a single JSONL line; anything larger aborts the load
// rather than silently ballooning memory.
const MaxLineBytes = 4 * 1024 * 1024

// LoadOptions controls LoadFile filtering.
type LoadOptions struct {
	// XposStart/XposStop restrict the result to an xpos interval when both
	// are non-zero (inclusive bounds, matching the server's locus queries).
	XposStart int64
	XposStop  int64
}

// LoadFile reads a variants JSONL file (one Variant JSON object per line),
// skipping lines that fail to parse, and returns the variants sorted by xpos.
// Missing xpos values are derived from contig+position; missing variant IDs
// are synthesized from the coordinate and alleles when possible.
func LoadFile(path string, opts LoadOptions) ([]Variant, error) {
	start := time.Now()
	defer TimeTrack(start, "load "+path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open variants file: %w", err)
	}
	defer f.Close()

	reader := bufio.NewReaderSize(f, 64*1024)
	var out []Variant
	skipped := 0
readLoop:
	for {
		// Accumulate one logical line (may span multiple internal buffers).
		var line []byte
		for {
			part, rerr := reader.ReadBytes('\n')
			if len(part) > 0 {
				if len(line)+len(part) > MaxLineBytes {
					return nil, fmt.Errorf("line too large: %d bytes exceeds limit %d in %s", len(line)+len(part), MaxLineBytes, path)
				}
				line = append(line, part...)
			}
			if rerr == nil {
				break
			}
			if errors.Is(rerr, io.EOF) {
				if len(line) == 0 {
					break readLoop
				}
				break
			}
			if errors.Is(rerr, bufio.ErrBufferFull) {
				continue
			}
			Warnf("read warning: %v (file=%s)", rerr, path)
			if len(line) == 0 {
				break readLoop
			}
			break
		}
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var v Variant
		if err := json.Unmarshal(line, &v); err != nil {
			skipped++
			continue
		}
		if v.Xpos == 0 && v.VariantID != "" && v.Position == 0 {
			// Coordinate carried only in the ID.
			if xpos, ref, alt, perr := ParseVariantID(v.VariantID); perr == nil {
				v.Xpos = xpos
				v.Position = xpos % xposContigStride
				if v.Ref == "" {
					v.Ref = ref
				}
				if v.Alt == "" {
					v.Alt = alt
				}
			}
		}
		if v.Xpos == 0 {
			v.Xpos = ComputeXpos(v.Contig, v.Position)
		}
		if v.Xpos == 0 {
			skipped++
			continue
		}
		if v.VariantID == "" && v.Contig != "" && v.Ref != "" && v.Alt != "" {
			v.VariantID = fmt.Sprintf("%s-%d-%s-%s", strings.TrimPrefix(v.Contig, "chr"), v.Position, v.Ref, v.Alt)
		}
		if opts.XposStart != 0 && opts.XposStop != 0 {
			if v.Xpos < opts.XposStart || v.Xpos > opts.XposStop {
				continue
			}
		}
		out = append(out, v)
	}
	if skipped > 0 {
		Warnf("skipped %d unparseable or coordinate-less lines in %s", skipped, path)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Xpos < out[j].Xpos })
	Infof("loaded %d variants from %s", len(out), path)
	return out, nil
}
