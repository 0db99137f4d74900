package worlds

import (
	"encoding/binary"
	"fmt"
)

type reader struct {
	data  []byte
	off   int
	board int
	err   error
}

func (r *reader) fail(format string, args ...any) {
	if r.err == nil {
		r.err = &ContainerError{
			Board:  r.board,
			Offset: r.off,
			Msg:    fmt.Sprintf(format, args...),
		}
	}
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.off+n > len(r.data) {
		r.fail("unexpected end of data, want %d more bytes", n)
		return nil
	}
	ret := r.data[r.off : r.off+n]
	r.off += n
	return ret
}

func (r *reader) u8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) bool() bool {
	return r.u8() != 0
}

func (r *reader) u16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *reader) i16() int16 {
	return int16(r.u16())
}

// pstring reads a length byte followed by a field of capacity bytes.
func (r *reader) pstring(capacity int) []byte {
	n := int(r.u8())
	if r.err != nil {
		return nil
	}
	if n > capacity {
		r.fail("string length %d exceeds %d", n, capacity)
		return nil
	}
	data := r.take(capacity)
	if data == nil {
		return nil
	}
	return append([]byte(nil), data[:n]...)
}

// Read parses a ZZT world file.
func Read(data []byte) (*World, error) {
	r := &reader{
		data:  data,
		board: -1,
	}
	w := new(World)

	if magic := r.i16(); r.err == nil && magic != -1 {
		return nil, &ContainerError{Board: -1, Msg: fmt.Sprintf("bad magic %d, not a ZZT world", magic)}
	}
	numBoards := int(r.i16()) + 1
	w.Ammo = r.i16()
	w.Gems = r.i16()
	for i := range w.Keys {
		w.Keys[i] = r.bool()
	}
	w.Health = r.i16()
	w.StartingBoard = r.i16()
	w.Torches = r.i16()
	w.TorchCycles = r.i16()
	w.EnergizerCycles = r.i16()
	r.take(2)
	w.Score = r.i16()
	w.Name = r.pstring(20)
	for i := range w.Flags {
		w.Flags[i] = r.pstring(20)
	}
	w.Time = r.i16()
	w.TimeTicks = r.i16()
	w.Locked = r.bool()
	if r.err != nil {
		return nil, r.err
	}
	if numBoards < 1 {
		return nil, &ContainerError{Board: -1, Offset: 2, Msg: fmt.Sprintf("invalid board count %d", numBoards)}
	}
	r.off = 0
	r.take(headerSize)

	for i := range numBoards {
		r.board = i
		size := int(r.u16())
		chunk := r.take(size)
		if r.err != nil {
			return nil, r.err
		}
		board, err := readBoard(chunk, i, r.off-size)
		if err != nil {
			return nil, err
		}
		w.Boards = append(w.Boards, board)
	}

	return w, nil
}

func readBoard(data []byte, index int, base int) (*Board, error) {
	r := &reader{
		data:  data,
		board: index,
	}
	b := new(Board)
	b.Name = DecodeOneline(r.pstring(50))

	b.Terrain = make([]Tile, 0, NumTiles)
	for r.err == nil && len(b.Terrain) < NumTiles {
		count := int(r.u8())
		tile := Tile{
			Element: r.u8(),
			Color:   r.u8(),
		}
		if count == 0 {
			count = 256
		}
		if len(b.Terrain)+count > NumTiles {
			r.fail("terrain has more than %d tiles", NumTiles)
			break
		}
		for range count {
			b.Terrain = append(b.Terrain, tile)
		}
	}

	b.MaxShots = r.u8()
	b.IsDark = r.bool()
	b.North = r.u8()
	b.South = r.u8()
	b.West = r.u8()
	b.East = r.u8()
	b.ReenterWhenZapped = r.bool()
	b.Message = r.pstring(58)
	b.EnterX = r.u8()
	b.EnterY = r.u8()
	b.TimeLimit = r.i16()
	r.take(16)

	numStats := int(r.i16()) + 1
	if r.err == nil && numStats < 0 {
		r.fail("negative stat count %d", numStats)
	}
	for i := 0; r.err == nil && i < numStats; i++ {
		b.Stats = append(b.Stats, readStat(r))
	}

	if r.err != nil {
		if containerErr, ok := r.err.(*ContainerError); ok {
			containerErr.Offset += base
		}
		return nil, r.err
	}
	return b, nil
}

func readStat(r *reader) *Stat {
	s := new(Stat)
	s.X = r.u8()
	s.Y = r.u8()
	s.XStep = r.i16()
	s.YStep = r.i16()
	s.Cycle = r.i16()
	s.P1 = r.u8()
	s.P2 = r.u8()
	s.P3 = r.u8()
	s.Follower = r.i16()
	s.Leader = r.i16()
	s.UnderElement = r.u8()
	s.UnderColor = r.u8()
	r.take(4)
	s.InstructionPointer = r.i16()
	length := r.i16()
	r.take(8)
	if length < 0 {
		s.BindIndex = length
		return s
	}
	s.Code = DecodeMultiline(r.take(int(length)))
	return s
}
