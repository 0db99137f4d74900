package labels

import (
	"github.com/cmounce/marzipan/lines"
)

type localDef struct {
	line int
	name string
}

type sectionLocals map[string][]localDef

// ResolveLocal gives every local definition its own global name and binds
// references to them. A .x reference binds to the nearest preceding .x in
// its section, or the first one if none precedes it. A base.x reference
// binds to the first .x of the first section that defines :base and has a
// .x. A :base.x definition counts as .x in its own section.
func ResolveLocal(sections []Section, alloc *Allocator) ([]Section, error) {

	// name definitions in source order
	locals := make([]sectionLocals, len(sections))
	for s, section := range sections {
		locals[s] = make(sectionLocals)
		for i, line := range section.Lines {
			def, ok := line.(lines.LabelDef)
			if !ok || !def.Label.IsLocal() {
				continue
			}
			key := lines.Key(def.Label.Local)
			locals[s][key] = append(locals[s][key], localDef{
				line: i,
				name: alloc.Named(def.Label.Local),
			})
		}
	}

	qualified := func(base string, local string) (string, bool) {
		for s, section := range sections {
			if !section.Has(base) {
				continue
			}
			if defs := locals[s][lines.Key(local)]; len(defs) > 0 {
				return defs[0].name, true
			}
		}
		return "", false
	}

	ret := make([]Section, 0, len(sections))
	for s, section := range sections {
		out := make([]lines.Line, len(section.Lines))
		seen := make(map[string]int)
		for i, line := range section.Lines {
			switch line := line.(type) {

			case lines.LabelDef:
				if line.Label.IsLocal() {
					key := lines.Key(line.Label.Local)
					line.Label = lines.Named(locals[s][key][seen[key]].name)
					seen[key]++
				}
				out[i] = line

			case lines.Instruction:
				resolved, err := line.MapRefs(func(ref lines.Label) (lines.Label, error) {
					if !ref.IsLocal() {
						return ref, nil
					}
					fail := &UnresolvedLocalLabelError{
						Name:    ref.Local,
						Base:    ref.Base,
						Section: section.Index,
						Pos:     line.Position(),
					}
					if ref.IsQualified() {
						name, ok := qualified(ref.Base, ref.Local)
						if !ok {
							return ref, fail
						}
						return lines.Named(name), nil
					}
					defs := locals[s][lines.Key(ref.Local)]
					if len(defs) == 0 {
						return ref, fail
					}
					target := defs[0]
					for _, def := range defs {
						if def.line < i {
							target = def
						}
					}
					return lines.Named(target.name), nil
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
