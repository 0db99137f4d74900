package worlds

import (
	"fmt"

	"github.com/cmounce/marzipan/compiles"
)

// Objects lists every stat that carries its own code. Stats bound to another
// stat's code are skipped.
func (w *World) Objects() []compiles.Object {
	var ret []compiles.Object
	for b, board := range w.Boards {
		for s, stat := range board.Stats {
			if stat.BindIndex < 0 || stat.Code == "" {
				continue
			}
			ret = append(ret, compiles.Object{
				ID: compiles.ObjectID{
					Board:     b,
					BoardName: board.Name,
					Stat:      s,
					X:         int(stat.X),
					Y:         int(stat.Y),
					Name:      compiles.ObjectName(stat.Code),
				},
				Code: stat.Code,
			})
		}
	}
	return ret
}

// SetCode replaces the code of the stat at id. The instruction pointer is
// reset when it would point past the new code.
func (w *World) SetCode(id compiles.ObjectID, code string) error {
	if id.Board < 0 || id.Board >= len(w.Boards) {
		return fmt.Errorf("no board %d", id.Board)
	}
	board := w.Boards[id.Board]
	if id.Stat < 0 || id.Stat >= len(board.Stats) {
		return fmt.Errorf("board %d: no stat %d", id.Board, id.Stat)
	}
	stat := board.Stats[id.Stat]
	if stat.BindIndex < 0 {
		return fmt.Errorf("board %d: stat %d is bound to stat %d", id.Board, id.Stat, -stat.BindIndex)
	}
	stat.Code = code
	if int(stat.InstructionPointer) > len(code) {
		stat.InstructionPointer = 0
	}
	return nil
}
