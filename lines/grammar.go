package lines

import (
	"slices"
	"strings"
)

var (
	commandKeywords = []string{
		"become", "bind", "change", "char", "clear", "cycle", "die", "end",
		"endgame", "give", "go", "idle", "if", "lock", "play", "put",
		"restart", "restore", "send", "set", "shoot", "take", "throwstar",
		"try", "unlock", "walk", "zap",
	}
	directionModifiers = []string{"cw", "ccw", "opp", "rndp"}
	directions         = []string{
		"flow", "rndne", "rndns", "rnd", "seek",
		"north", "south", "east", "west", "idle",
		"n", "s", "e", "w", "i",
	}
	counters = []string{"ammo", "gems", "health", "score", "time", "torches"}
	colors   = []string{"blue", "green", "cyan", "red", "purple", "yellow", "white"}
)

func IsCommandKeyword(word string) bool {
	return slices.Contains(commandKeywords, strings.ToLower(word))
}

type span struct {
	start, end int
	label      Label
}

type parser struct {
	s    string
	i    int
	refs []span
}

type mark struct {
	i    int
	refs int
}

func newParser(s string) *parser {
	return &parser{s: s}
}

func (p *parser) save() mark {
	return mark{i: p.i, refs: len(p.refs)}
}

func (p *parser) restore(m mark) {
	p.i = m.i
	p.refs = p.refs[:m.refs]
}

func (p *parser) instruction(pos Pos) Instruction {
	var chunks []Chunk
	last := 0
	for _, ref := range p.refs {
		if ref.start > last {
			chunks = append(chunks, Chunk{Text: p.s[last:ref.start]})
		}
		label := ref.label
		chunks = append(chunks, Chunk{Ref: &label})
		last = ref.end
	}
	if last < len(p.s) {
		chunks = append(chunks, Chunk{Text: p.s[last:]})
	}
	return Instruction{
		Pos:    pos,
		Chunks: chunks,
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func (p *parser) eol() bool {
	return p.i == len(p.s)
}

func (p *parser) byte(b byte) bool {
	if p.i < len(p.s) && p.s[p.i] == b {
		p.i++
		return true
	}
	return false
}

// spaces consumes zero or more spaces.
func (p *parser) spaces() {
	for p.byte(' ') {
	}
}

// space consumes one or more spaces.
func (p *parser) space() bool {
	if !p.byte(' ') {
		return false
	}
	p.spaces()
	return true
}

func (p *parser) peekWord() string {
	end := p.i
	for end < len(p.s) && isWordByte(p.s[end]) {
		end++
	}
	return p.s[p.i:end]
}

func (p *parser) word() (string, bool) {
	w := p.peekWord()
	p.i += len(w)
	return w, w != ""
}

// keyword consumes one of the candidates as a whole word.
func (p *parser) keyword(candidates ...string) (string, bool) {
	w := strings.ToLower(p.peekWord())
	if w == "" || !slices.Contains(candidates, w) {
		return "", false
	}
	p.i += len(w)
	return w, true
}

func (p *parser) statement() bool {
	m := p.save()
	moved := false
	for p.movement() {
		moved = true
	}
	if p.command() {
		return true
	}
	if moved {
		return true
	}
	p.restore(m)
	return false
}

func (p *parser) movement() bool {
	m := p.save()
	if !p.byte('/') && !p.byte('?') {
		return false
	}
	p.spaces()
	if !p.direction() {
		p.restore(m)
		return false
	}
	return true
}

func (p *parser) command() bool {
	m := p.save()
	if !p.byte('#') {
		return false
	}
	if !p.bareCommand() {
		p.restore(m)
		return false
	}
	return true
}

func (p *parser) rest() bool {
	p.i = len(p.s)
	return true
}

func (p *parser) bareCommand() bool {
	m := p.save()
	word := strings.ToLower(p.peekWord())
	ok := false
	switch word {
	case "give", "take":
		p.i += len(word)
		ok = p.space() && p.counter() && p.space() && p.value() && p.tail()

	case "if":
		p.i += len(word)
		ok = p.space() && p.condition() && p.tail()

	case "try":
		p.i += len(word)
		ok = p.space() && p.direction() && p.tail()

	case "send", "restore", "zap":
		p.i += len(word)
		ok = p.space() && p.message() && p.end()

	default:
		if slices.Contains(commandKeywords, word) {
			p.i += len(word)
			ok = p.rest()
		} else {
			// #label is shorthand for #send label
			ok = p.message() && p.end()
		}
	}
	if !ok {
		p.restore(m)
	}
	return ok
}

func (p *parser) end() bool {
	p.spaces()
	return p.eol()
}

func (p *parser) tail() bool {
	p.spaces()
	if p.eol() {
		return true
	}
	if p.statement() {
		return true
	}
	return p.bareCommand()
}

func (p *parser) value() bool {
	start := p.i
	for p.i < len(p.s) && p.s[p.i] >= '0' && p.s[p.i] <= '9' {
		p.i++
	}
	return p.i > start
}

func (p *parser) counter() bool {
	_, ok := p.keyword(counters...)
	return ok
}

func (p *parser) direction() bool {
	m := p.save()
	for {
		m2 := p.save()
		if _, ok := p.keyword(directionModifiers...); ok && p.space() {
			continue
		}
		p.restore(m2)
		break
	}
	if _, ok := p.keyword(directions...); !ok {
		p.restore(m)
		return false
	}
	return true
}

func (p *parser) condition() bool {
	m := p.save()
	for {
		m2 := p.save()
		if _, ok := p.keyword("not"); ok && p.space() {
			continue
		}
		p.restore(m2)
		break
	}
	word := strings.ToLower(p.peekWord())
	var ok bool
	switch word {
	case "":
		ok = false
	case "alligned", "contact", "energized":
		p.i += len(word)
		ok = true
	case "any":
		p.i += len(word)
		ok = p.space() && p.kind()
	case "blocked":
		p.i += len(word)
		ok = p.space() && p.direction()
	default:
		// flag name
		p.i += len(word)
		ok = true
	}
	if !ok {
		p.restore(m)
	}
	return ok
}

func (p *parser) kind() bool {
	m := p.save()
	if _, ok := p.keyword(colors...); ok {
		if !p.space() {
			p.restore(m)
			return false
		}
	}
	if _, ok := p.word(); !ok {
		p.restore(m)
		return false
	}
	return true
}

// message parses [recipient:]name and records name as a reference.
func (p *parser) message() bool {
	m := p.save()
	if w := p.peekWord(); w != "" {
		p.i += len(w)
		if !p.byte(':') {
			p.i = m.i
		}
	}
	start := p.i
	label, ok := p.labelName(false)
	if !ok {
		p.restore(m)
		return false
	}
	p.refs = append(p.refs, span{
		start: start,
		end:   p.i,
		label: label,
	})
	return true
}

// labelName parses a label as written after ':' (definition) or in a
// reference.
func (p *parser) labelName(definition bool) (Label, bool) {
	m := p.save()
	if p.byte('@') {
		if definition {
			return Label{Anon: true}, true
		}
		switch w := strings.ToLower(p.peekWord()); w {
		case "f":
			p.i++
			return Label{Anon: true, Dir: Forward}, true
		case "b":
			p.i++
			return Label{Anon: true, Dir: Backward}, true
		}
		p.restore(m)
		return Label{}, false
	}
	if p.byte('.') {
		local, ok := p.word()
		if !ok {
			p.restore(m)
			return Label{}, false
		}
		return Label{Local: local}, true
	}
	base, ok := p.word()
	if !ok {
		return Label{}, false
	}
	m2 := p.save()
	if p.byte('.') {
		if local, ok := p.word(); ok {
			return Label{Base: base, Local: local}, true
		}
		p.restore(m2)
	}
	return Label{Base: base}, true
}

func (p *parser) hyperlink() bool {
	m := p.save()
	if !p.byte('!') {
		return false
	}
	if !p.message() || !p.byte(';') {
		p.restore(m)
		return false
	}
	return p.rest()
}
