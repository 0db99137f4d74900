package lines

import "strings"

// Parse classifies one line of ZZT-OOP. Lines that don't match the reference
// grammar are kept verbatim and carry no references.
func Parse(text string, pos Pos) Line {
	if text == "" {
		return Blank{Pos: pos}
	}
	switch text[0] {
	case '\'':
		return Comment{Pos: pos, Text: text}
	case '%':
		return Macro{Pos: pos, Text: text}
	case ':':
		if label, tail, ok := parseLabelDef(text[1:]); ok {
			return LabelDef{Pos: pos, Label: label, Tail: tail}
		}
		return Text{Pos: pos, Text: text}
	case '#', '/', '?':
		p := newParser(text)
		if p.statement() && p.eol() {
			return p.instruction(pos)
		}
		return verbatim(text, pos)
	case '!':
		p := newParser(text)
		if p.hyperlink() {
			return p.instruction(pos)
		}
		return verbatim(text, pos)
	}
	return Text{Pos: pos, Text: text}
}

// ParseAll splits code on newlines and parses each line. Line numbers start
// at 1.
func ParseAll(code string, source string) []Line {
	texts := strings.Split(code, "\n")
	ret := make([]Line, 0, len(texts))
	for i, text := range texts {
		ret = append(ret, Parse(text, Pos{
			Source: source,
			Line:   i + 1,
		}))
	}
	return ret
}

func verbatim(text string, pos Pos) Instruction {
	return Instruction{
		Pos: pos,
		Chunks: []Chunk{
			{Text: text},
		},
	}
}

func parseLabelDef(s string) (label Label, tail string, ok bool) {
	p := newParser(s)
	label, ok = p.labelName(true)
	if !ok {
		return
	}
	tail = s[p.i:]
	if tail != "" && (isWordByte(tail[0]) || tail[0] == '.' || tail[0] == '@') {
		return Label{}, "", false
	}
	return label, tail, true
}
