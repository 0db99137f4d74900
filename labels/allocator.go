package labels

import (
	"strings"

	"github.com/cmounce/marzipan/lines"
)

// Builtins are the labels ZZT sends to objects on its own.
var Builtins = []string{"bombed", "energize", "shot", "thud", "touch"}

// Allocator hands out label names that collide with nothing seen so far.
// Names are compared case-insensitively. One Allocator serves one object.
type Allocator struct {
	taken   map[string]bool
	counter string
}

// NewAllocator returns an Allocator that avoids the builtins and seed.
func NewAllocator(seed ...string) *Allocator {
	a := &Allocator{
		taken: make(map[string]bool),
	}
	a.Reserve(Builtins...)
	a.Reserve(seed...)
	return a
}

func (a *Allocator) Reserve(names ...string) {
	for _, name := range names {
		a.taken[lines.Key(name)] = true
	}
}

func (a *Allocator) Taken(name string) bool {
	return a.taken[lines.Key(name)]
}

// Anonymous returns the next free value of the shared counter.
func (a *Allocator) Anonymous() string {
	for {
		a.counter = Increment(a.counter)
		if !a.taken[a.counter] {
			a.taken[a.counter] = true
			return a.counter
		}
	}
}

// Named returns the first free name of base, base_, basea, ...
func (a *Allocator) Named(base string) string {
	preferred := PreferredName(base)
	suffix := ""
	for {
		candidate := preferred + suffix
		if key := lines.Key(candidate); !a.taken[key] {
			a.taken[key] = true
			return candidate
		}
		suffix = Increment(suffix)
	}
}

// PreferredName makes a name ZZT accepts as a label: runs of anything but
// letters become a single underscore.
func PreferredName(name string) string {
	var sb strings.Builder
	run := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			sb.WriteByte(c)
			run = false
		} else if !run {
			sb.WriteByte('_')
			run = true
		}
	}
	return sb.String()
}

// Increment steps s through every string of '_' and 'a'..'z', odometer style,
// growing on overflow: "", "_", "a", ..., "z", "__", "_a", ...
func Increment(s string) string {
	b := []byte(s)
	n := len(b)
	for n > 0 && b[n-1] == 'z' {
		n--
	}
	if n == 0 {
		return strings.Repeat("_", len(s)+1)
	}
	if b[n-1] == '_' {
		b[n-1] = 'a'
	} else {
		b[n-1]++
	}
	for i := n; i < len(b); i++ {
		b[i] = '_'
	}
	return string(b)
}
