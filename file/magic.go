// Package file implements vsf's file-level structure: magic, header
// envelope, label index, body sections, and the mandatory whole-file
// BLAKE3 seal.
package file

import "github.com/vsf-go/vsf/internal/errs"

// Magic is the fixed 3-byte prefix of every vsf file: the UTF-8 encoding of
// "RÅ".
var Magic = [3]byte{0x52, 0xC3, 0x85}

const (
	headerOpen  byte = 0x3C // '<'
	headerClose byte = 0x3E // '>'
	entryOpen   byte = 0x28 // '('
	entryClose  byte = 0x29 // ')'
	listOpen    byte = 0x5B // '['
	listClose   byte = 0x5D // ']'
)

// CheckMagic verifies buf begins with Magic.
func CheckMagic(buf []byte) error {
	if len(buf) < len(Magic) || buf[0] != Magic[0] || buf[1] != Magic[1] || buf[2] != Magic[2] {
		return errs.Wrap("file.CheckMagic", errs.ErrBadMagic)
	}

	return nil
}
