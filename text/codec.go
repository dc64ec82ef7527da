// Package text implements vsf's Huffman-compressed string encoding: a fixed,
// global codebook over Unicode code points with a single escape code
// extending coverage beyond the tabulated Latin-1 range.
package text

import (
	"github.com/vsf-go/vsf/internal/bitio"
	"github.com/vsf-go/vsf/internal/errs"
)

// Encode Huffman-compresses s and returns the packed bit stream (trailing
// bits zero-padded) along with the number of Unicode code points it
// contains -- the two values a caller embeds as EWE(codepoint_count) and
// EWE(len(compressed)) around the returned bytes.
func Encode(s string) (compressed []byte, codepointCount int) {
	w := bitio.NewWriter(nil)

	count := 0
	for _, r := range s {
		count++
		cp := int(r)
		if cp >= 0 && cp < tableSize {
			c := codes[cp]
			w.WriteBits(uint64(c.value), c.length)

			continue
		}

		esc := codes[escapeSymbol]
		w.WriteBits(uint64(esc.value), esc.length)
		w.WriteBits(uint64(cp), escapeBits)
	}

	return w.Bytes(), count
}

// Decode reverses Encode: it reads compressed, emitting exactly
// codepointCount runes, then ignores (but does not require) any trailing
// pad bits beyond that count.
func Decode(compressed []byte, codepointCount int) (string, error) {
	r := bitio.NewReader(compressed)
	runes := make([]rune, 0, codepointCount)

	for range codepointCount {
		node := decodeTree
		for !node.leaf {
			bit, ok := r.ReadBits(1)
			if !ok {
				return "", errs.Wrap("text.Decode", errs.ErrUnexpectedEnd)
			}
			if bit == 0 {
				node = node.left
			} else {
				node = node.right
			}
			if node == nil {
				return "", errs.Wrap("text.Decode", errs.ErrInvalidMarker)
			}
		}

		sym := node.symbol
		if sym == escapeSymbol {
			raw, ok := r.ReadBits(escapeBits)
			if !ok {
				return "", errs.Wrap("text.Decode", errs.ErrUnexpectedEnd)
			}
			runes = append(runes, rune(raw))

			continue
		}

		runes = append(runes, rune(sym))
	}

	return string(runes), nil
}
