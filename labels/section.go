package labels

import (
	"strings"

	"github.com/cmounce/marzipan/lines"
	"github.com/samber/lo"
)

// Section is a run of lines ending at an #end line or at the end of the
// object. Anonymous and unqualified local labels do not cross sections.
type Section struct {
	Index int
	Lines []lines.Line
}

// IsEnd reports whether line is exactly the #end command.
func IsEnd(line lines.Line) bool {
	in, ok := line.(lines.Instruction)
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(in.String()), "#end")
}

// Split closes a section after every #end line. No empty trailing section is
// produced.
func Split(ls []lines.Line) []Section {
	var ret []Section
	var current []lines.Line
	for _, line := range ls {
		current = append(current, line)
		if IsEnd(line) {
			ret = append(ret, Section{
				Index: len(ret),
				Lines: current,
			})
			current = nil
		}
	}
	if len(current) > 0 {
		ret = append(ret, Section{
			Index: len(ret),
			Lines: current,
		})
	}
	return ret
}

// Labels returns the global labels defined in the section.
func (s Section) Labels() []string {
	return lo.FilterMap(s.Lines, func(line lines.Line, _ int) (string, bool) {
		def, ok := line.(lines.LabelDef)
		if !ok || !def.Label.IsPlain() {
			return "", false
		}
		return def.Label.Base, true
	})
}

// Has reports whether the section defines the global label name.
func (s Section) Has(name string) bool {
	key := lines.Key(name)
	return lo.ContainsBy(s.Labels(), func(label string) bool {
		return lines.Key(label) == key
	})
}

// Join flattens sections back into lines.
func Join(sections []Section) []lines.Line {
	return lo.FlatMap(sections, func(s Section, _ int) []lines.Line {
		return s.Lines
	})
}

// Names lists the global label names defined or referenced in ls. Local and
// anonymous parts are left out since they never reach the output.
func Names(ls []lines.Line) []string {
	var names []string
	for _, line := range ls {
		switch line := line.(type) {
		case lines.LabelDef:
			if line.Label.IsPlain() {
				names = append(names, line.Label.Base)
			}
		case lines.Instruction:
			for _, ref := range line.Refs() {
				if !ref.Anon && ref.Base != "" {
					names = append(names, ref.Base)
				}
			}
		}
	}
	return lo.UniqBy(names, lines.Key)
}
