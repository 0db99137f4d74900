package worlds

import (
	"encoding/binary"
	"fmt"
	"math"
)

type writer struct {
	buf []byte
}

func (w *writer) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *writer) bool(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func (w *writer) i16(v int16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, uint16(v))
}

func (w *writer) pad(n int) {
	w.buf = append(w.buf, make([]byte, n)...)
}

func (w *writer) pstring(capacity int, data []byte) error {
	if len(data) > capacity {
		return fmt.Errorf("string of %d bytes exceeds %d", len(data), capacity)
	}
	w.u8(uint8(len(data)))
	w.buf = append(w.buf, data...)
	w.pad(capacity - len(data))
	return nil
}

// Bytes serializes the world.
func (w *World) Bytes() ([]byte, error) {
	if len(w.Boards) == 0 {
		return nil, fmt.Errorf("world has no boards")
	}
	out := &writer{
		buf: make([]byte, 0, headerSize),
	}
	out.i16(-1)
	out.i16(int16(len(w.Boards) - 1))
	out.i16(w.Ammo)
	out.i16(w.Gems)
	for _, key := range w.Keys {
		out.bool(key)
	}
	out.i16(w.Health)
	out.i16(w.StartingBoard)
	out.i16(w.Torches)
	out.i16(w.TorchCycles)
	out.i16(w.EnergizerCycles)
	out.pad(2)
	out.i16(w.Score)
	if err := out.pstring(20, w.Name); err != nil {
		return nil, fmt.Errorf("world name: %w", err)
	}
	for i, flag := range w.Flags {
		if err := out.pstring(20, flag); err != nil {
			return nil, fmt.Errorf("flag %d: %w", i, err)
		}
	}
	out.i16(w.Time)
	out.i16(w.TimeTicks)
	out.bool(w.Locked)
	out.pad(headerSize - len(out.buf))

	for i, board := range w.Boards {
		data, err := board.bytes()
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", i, err)
		}
		out.buf = append(out.buf, data...)
	}
	return out.buf, nil
}

func (b *Board) bytes() ([]byte, error) {
	out := new(writer)
	out.pad(2) // size, filled in below

	name, err := EncodeOneline(b.Name)
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if err := out.pstring(50, name); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}

	if len(b.Terrain) != NumTiles {
		return nil, fmt.Errorf("terrain has %d tiles, want %d", len(b.Terrain), NumTiles)
	}
	for i := 0; i < len(b.Terrain); {
		tile := b.Terrain[i]
		count := 1
		for count < 255 && i+count < len(b.Terrain) && b.Terrain[i+count] == tile {
			count++
		}
		out.u8(uint8(count))
		out.u8(tile.Element)
		out.u8(tile.Color)
		i += count
	}

	out.u8(b.MaxShots)
	out.bool(b.IsDark)
	out.u8(b.North)
	out.u8(b.South)
	out.u8(b.West)
	out.u8(b.East)
	out.bool(b.ReenterWhenZapped)
	if err := out.pstring(58, b.Message); err != nil {
		return nil, fmt.Errorf("message: %w", err)
	}
	out.u8(b.EnterX)
	out.u8(b.EnterY)
	out.i16(b.TimeLimit)
	out.pad(16)

	if len(b.Stats)-1 > math.MaxInt16 {
		return nil, fmt.Errorf("too many stats: %d", len(b.Stats))
	}
	out.i16(int16(len(b.Stats) - 1))
	for i, stat := range b.Stats {
		if err := stat.write(out); err != nil {
			return nil, fmt.Errorf("stat %d: %w", i, err)
		}
	}

	size := len(out.buf) - 2
	if size > math.MaxUint16 {
		return nil, fmt.Errorf("board data is %d bytes, limit is %d", size, math.MaxUint16)
	}
	binary.LittleEndian.PutUint16(out.buf, uint16(size))
	return out.buf, nil
}

func (s *Stat) write(out *writer) error {
	out.u8(s.X)
	out.u8(s.Y)
	out.i16(s.XStep)
	out.i16(s.YStep)
	out.i16(s.Cycle)
	out.u8(s.P1)
	out.u8(s.P2)
	out.u8(s.P3)
	out.i16(s.Follower)
	out.i16(s.Leader)
	out.u8(s.UnderElement)
	out.u8(s.UnderColor)
	out.pad(4)
	out.i16(s.InstructionPointer)

	if s.BindIndex < 0 {
		out.i16(s.BindIndex)
		out.pad(8)
		return nil
	}

	code, err := EncodeMultiline(s.Code)
	if err != nil {
		return err
	}
	if len(code) > math.MaxInt16 {
		return fmt.Errorf("code is %d bytes, limit is %d", len(code), math.MaxInt16)
	}
	out.i16(int16(len(code)))
	out.pad(8)
	out.buf = append(out.buf, code...)
	return nil
}
