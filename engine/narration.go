package engine

import (
	"fmt"
	"strconv"
	"strings"

	"factorgame/game"
)

// Narrate describes move by mover, given the open factors it captures for
// the opponent.
func Narrate(mover game.Player, move int, factors []int) string {
	if move == game.Pass {
		return fmt.Sprintf("Player %d loses their turn due to a penalty.", int(mover))
	}
	if len(factors) == 0 {
		return fmt.Sprintf("Player %d circles square %d, causing them to receive a penalty.", int(mover), move)
	}
	noun := "square"
	if len(factors) > 1 {
		noun = "squares"
	}
	labels := make([]string, len(factors))
	for i, f := range factors {
		labels[i] = strconv.Itoa(f)
	}
	return fmt.Sprintf("Player %d circles square %d, causing player %d to circle %s %s.",
		int(mover), move, int(mover.Opponent()), noun, JoinList(labels))
}

// JoinList joins items as English prose: "a", "a and b", "a, b, and c".
func JoinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
