package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"factorgame/game"
)

// Human reads moves from an input, one per line, until a legal one arrives.
type Human struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// SelectMove returns game.NoMove once the input is exhausted.
func (h *Human) SelectMove(state game.View) int {
	for {
		fmt.Fprint(h.out, "Enter move: ")
		if !h.scanner.Scan() {
			fmt.Fprintln(h.out)
			return game.NoMove
		}
		move, err := strconv.Atoi(strings.TrimSpace(h.scanner.Text()))
		if err == nil && state.IsLegalMove(move) {
			return move
		}
		fmt.Fprintln(h.out, "Illegal move. Please try again.")
	}
}
