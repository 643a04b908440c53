package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Render draws the board as a grid roughly sqrt(n) squares wide, followed by
// the score and whose turn it is. Circled squares are left blank. With
// colored set, penalty squares are highlighted.
func Render(v View, colored bool) string {
	au := aurora.NewAurora(colored)

	size := v.BoardSize()
	squareWidth := len(strconv.Itoa(size))
	boardWidth := int(math.Sqrt(float64(size)))
	boardHeight := (size + boardWidth - 1) / boardWidth
	border := strings.Repeat("+"+strings.Repeat("-", squareWidth), boardWidth) + "+\n"

	var sb strings.Builder
	for row := 0; row < boardHeight; row++ {
		sb.WriteString(border)
		for col := 0; col < boardWidth; col++ {
			sb.WriteByte('|')
			square := boardWidth*row + col + 1
			if !v.IsSquareOpen(square) {
				sb.WriteString(strings.Repeat(" ", squareWidth))
				continue
			}
			label := fmt.Sprintf("%*d", squareWidth, square)
			if v.IsPenaltySquare(square) {
				sb.WriteString(au.Yellow(label).String())
			} else {
				sb.WriteString(label)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	score1, score2 := v.Scores()
	sb.WriteString(fmt.Sprintf("Score: %d-%d\n", score1, score2))
	if v.IsGameOver() {
		switch v.Winner() {
		case Player1:
			sb.WriteString(au.Bold("Player 1 wins!").String())
		case Player2:
			sb.WriteString(au.Bold("Player 2 wins!").String())
		default:
			sb.WriteString(au.Bold("The game is a draw!").String())
		}
		sb.WriteByte('\n')
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Player %d to move.\n", int(v.ActivePlayer())))
	for _, p := range []Player{Player1, Player2} {
		if v.HasPendingPenalty(p) {
			sb.WriteString(au.Red(fmt.Sprintf("Player %d loses their next turn.", int(p))).String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
