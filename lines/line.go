package lines

import "strings"

// Line is one of Blank, Comment, Text, Macro, LabelDef or Instruction.
type Line interface {
	Position() Pos
	String() string
	sealed()
}

type Blank struct {
	Pos
}

type Comment struct {
	Pos
	Text string
}

// Text is displayed text, centered text, or the object name line.
type Text struct {
	Pos
	Text string
}

// Macro is a line starting with the macro sigil. It only exists before
// macro expansion.
type Macro struct {
	Pos
	Text string
}

// LabelDef is ":" followed by a label. Tail is anything after the label
// that is kept verbatim.
type LabelDef struct {
	Pos
	Label Label
	Tail  string
}

// Instruction is a command, movement or hyperlink line, split into verbatim
// chunks and label references.
type Instruction struct {
	Pos
	Chunks []Chunk
}

// Chunk is verbatim text when Ref is nil, otherwise a label reference.
type Chunk struct {
	Text string
	Ref  *Label
}

func (Blank) sealed()       {}
func (Comment) sealed()     {}
func (Text) sealed()        {}
func (Macro) sealed()       {}
func (LabelDef) sealed()    {}
func (Instruction) sealed() {}

func (Blank) String() string {
	return ""
}

func (c Comment) String() string {
	return c.Text
}

func (t Text) String() string {
	return t.Text
}

func (m Macro) String() string {
	return m.Text
}

func (l LabelDef) String() string {
	return ":" + l.Label.String() + l.Tail
}

func (in Instruction) String() string {
	var sb strings.Builder
	for _, chunk := range in.Chunks {
		if chunk.Ref != nil {
			sb.WriteString(chunk.Ref.String())
		} else {
			sb.WriteString(chunk.Text)
		}
	}
	return sb.String()
}

// Refs returns the label references of the instruction in order.
func (in Instruction) Refs() []Label {
	var ret []Label
	for _, chunk := range in.Chunks {
		if chunk.Ref != nil {
			ret = append(ret, *chunk.Ref)
		}
	}
	return ret
}

// MapRefs returns a copy of the instruction with every reference replaced by
// fn's result. The receiver is not modified.
func (in Instruction) MapRefs(fn func(Label) (Label, error)) (Instruction, error) {
	chunks := make([]Chunk, len(in.Chunks))
	for i, chunk := range in.Chunks {
		if chunk.Ref != nil {
			label, err := fn(*chunk.Ref)
			if err != nil {
				return in, err
			}
			chunk.Ref = &label
		}
		chunks[i] = chunk
	}
	return Instruction{
		Pos:    in.Pos,
		Chunks: chunks,
	}, nil
}

// Join renders lines back into source text.
func Join(ls []Line) string {
	var sb strings.Builder
	for i, line := range ls {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.String())
	}
	return sb.String()
}
