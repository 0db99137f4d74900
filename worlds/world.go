package worlds

const (
	headerSize  = 512
	boardWidth  = 60
	boardHeight = 25
	NumTiles    = boardWidth * boardHeight
)

type World struct {
	Ammo            int16
	Gems            int16
	Keys            [7]bool
	Health          int16
	StartingBoard   int16
	Torches         int16
	TorchCycles     int16
	EnergizerCycles int16
	Score           int16
	Name            []byte
	Flags           [10][]byte
	Time            int16
	TimeTicks       int16
	Locked          bool
	Boards          []*Board
}

type Tile struct {
	Element uint8
	Color   uint8
}

type Board struct {
	Name              string
	Terrain           []Tile
	MaxShots          uint8
	IsDark            bool
	North             uint8
	South             uint8
	West              uint8
	East              uint8
	ReenterWhenZapped bool
	Message           []byte
	EnterX            uint8
	EnterY            uint8
	TimeLimit         int16
	Stats             []*Stat
}

type Stat struct {
	X                  uint8
	Y                  uint8
	XStep              int16
	YStep              int16
	Cycle              int16
	P1, P2, P3         uint8
	Follower           int16
	Leader             int16
	UnderElement       uint8
	UnderColor         uint8
	InstructionPointer int16
	// BindIndex is negative when the stat runs another stat's code.
	BindIndex int16
	Code      string
}
