package labels

import (
	"sort"

	"github.com/cmounce/marzipan/lines"
)

// ResolveAnonymous names every :@ in source order and points each @f and @b
// at the nearest definition after or before it within the section. The
// input sections are not modified.
func ResolveAnonymous(sections []Section, alloc *Allocator) ([]Section, error) {
	ret := make([]Section, 0, len(sections))
	for _, section := range sections {

		// definition positions, ascending
		var positions []int
		var names []string
		for i, line := range section.Lines {
			if def, ok := line.(lines.LabelDef); ok && def.Label.Anon {
				positions = append(positions, i)
				names = append(names, alloc.Anonymous())
			}
		}

		out := make([]lines.Line, len(section.Lines))
		next := 0
		for i, line := range section.Lines {
			switch line := line.(type) {

			case lines.LabelDef:
				if line.Label.Anon {
					line.Label = lines.Named(names[next])
					next++
				}
				out[i] = line

			case lines.Instruction:
				resolved, err := line.MapRefs(func(ref lines.Label) (lines.Label, error) {
					if !ref.Anon {
						return ref, nil
					}
					var k int
					switch ref.Dir {
					case lines.Forward:
						k = sort.SearchInts(positions, i+1)
						if k == len(positions) {
							k = -1
						}
					case lines.Backward:
						k = sort.SearchInts(positions, i) - 1
					default:
						k = -1
					}
					if k < 0 {
						return ref, &UnresolvedAnonymousLabelError{
							Dir:     ref.Dir,
							Section: section.Index,
							Pos:     line.Position(),
						}
					}
					return lines.Named(names[k]), nil
				})
				if err != nil {
					return nil, err
				}
				out[i] = resolved

			default:
				out[i] = line
			}
		}

		ret = append(ret, Section{
			Index: section.Index,
			Lines: out,
		})
	}
	return ret, nil
}
