package worlds

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// ZZT draws the control range as glyphs, so those bytes must not decode to
// control characters.
var lowGlyphs = [32]rune{
	0, '☺', '☻', '♥', '♦', '♣', '♠', '•', '◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', '↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
}

const deleteGlyph = '⌂'

var glyphBytes = func() map[rune]byte {
	ret := make(map[rune]byte, len(lowGlyphs)+1)
	for i, r := range lowGlyphs {
		ret[r] = byte(i)
	}
	ret[deleteGlyph] = 0x7f
	return ret
}()

func decodeByte(b byte) rune {
	switch {
	case b < 0x20:
		return lowGlyphs[b]
	case b == 0x7f:
		return deleteGlyph
	}
	return charmap.CodePage437.DecodeByte(b)
}

func encodeRune(r rune) (byte, bool) {
	if b, ok := glyphBytes[r]; ok {
		return b, true
	}
	b, ok := charmap.CodePage437.EncodeRune(r)
	if !ok || b < 0x20 || b == 0x7f {
		return 0, false
	}
	return b, true
}

// DecodeOneline decodes a single-line string such as a board title.
func DecodeOneline(data []byte) string {
	var sb strings.Builder
	for _, b := range data {
		sb.WriteRune(decodeByte(b))
	}
	return sb.String()
}

func EncodeOneline(s string) ([]byte, error) {
	ret := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := encodeRune(r)
		if !ok {
			return nil, fmt.Errorf("cannot encode %q in CP437", r)
		}
		ret = append(ret, b)
	}
	return ret, nil
}

// DecodeMultiline decodes object or scroll code. Lines are CR-terminated in
// the file and become "\n".
func DecodeMultiline(data []byte) string {
	var sb strings.Builder
	for _, b := range data {
		if b == '\r' {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteRune(decodeByte(b))
	}
	return sb.String()
}

func EncodeMultiline(s string) ([]byte, error) {
	ret := make([]byte, 0, len(s))
	for _, r := range s {
		if r == '\n' {
			ret = append(ret, '\r')
			continue
		}
		b, ok := encodeRune(r)
		if !ok {
			return nil, fmt.Errorf("cannot encode %q in CP437", r)
		}
		ret = append(ret, b)
	}
	return ret, nil
}
