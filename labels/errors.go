package labels

import (
	"fmt"

	"github.com/cmounce/marzipan/lines"
)

// UnresolvedAnonymousLabelError is an @f with no :@ after it, or an @b with
// no :@ before it, in the same section.
type UnresolvedAnonymousLabelError struct {
	Dir     lines.Direction
	Section int
	Pos     lines.Pos
}

func (u *UnresolvedAnonymousLabelError) Error() string {
	ref := lines.Label{Anon: true, Dir: u.Dir}
	where := "after"
	if u.Dir == lines.Backward {
		where = "before"
	}
	return fmt.Sprintf("%s: %s has no :@ %s it in the same section", u.Pos, ref, where)
}

func (u *UnresolvedAnonymousLabelError) Position() lines.Pos {
	return u.Pos
}

// UnresolvedLocalLabelError is a .name or base.name reference with no
// matching definition.
type UnresolvedLocalLabelError struct {
	Name    string
	Base    string
	Section int
	Pos     lines.Pos
}

func (u *UnresolvedLocalLabelError) Error() string {
	if u.Base != "" {
		return fmt.Sprintf("%s: no section defining :%s has a local label .%s", u.Pos, u.Base, u.Name)
	}
	return fmt.Sprintf("%s: local label .%s is not defined in the same section", u.Pos, u.Name)
}

func (u *UnresolvedLocalLabelError) Position() lines.Pos {
	return u.Pos
}
