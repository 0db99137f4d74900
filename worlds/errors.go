package worlds

import "fmt"

// ContainerError reports a malformed world file. Board is -1 for the header.
type ContainerError struct {
	Board  int
	Offset int
	Msg    string
}

func (c *ContainerError) Error() string {
	if c.Board < 0 {
		return fmt.Sprintf("world header at byte %d: %s", c.Offset, c.Msg)
	}
	return fmt.Sprintf("board %d at byte %d: %s", c.Board, c.Offset, c.Msg)
}
