// File: bot/game.go
package bot

import (
	"errors"
	"math/rand"
)

// Mark is a board cell occupant.
type Mark byte

const (
	Empty Mark = 0
	X     Mark = 'X' // the human player
	O     Mark = 'O' // the bot
)

// GameState is the lifecycle of a single game.
type GameState int

const (
	StateInProgress GameState = iota
	StatePlayerWon
	StateBotWon
	StateDraw
)

var (
	ErrCellTaken    = errors.New("cell already taken")
	ErrGameFinished = errors.New("game already finished")
	ErrBadCell      = errors.New("cell index out of range")
)

var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Game is one tic-tac-toe game. The human plays X and always moves first;
// the bot answers with a random empty cell.
type Game struct {
	Board [9]Mark
	State GameState
}

// NewGame starts a fresh game.
func NewGame() *Game {
	return &Game{}
}

// PlayerMove places the player's mark on cell (0..8) and, if the game is
// still open, plays the bot's answer. The resulting state is returned.
func (g *Game) PlayerMove(cell int) (GameState, error) {
	if g.State != StateInProgress {
		return g.State, ErrGameFinished
	}
	if cell < 0 || cell > 8 {
		return g.State, ErrBadCell
	}
	if g.Board[cell] != Empty {
		return g.State, ErrCellTaken
	}

	g.Board[cell] = X
	g.updateState()
	if g.State != StateInProgress {
		return g.State, nil
	}

	g.botMove()
	g.updateState()
	return g.State, nil
}

// botMove picks a uniformly random empty cell.
func (g *Game) botMove() {
	var empty []int
	for i, m := range g.Board {
		if m == Empty {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		return
	}
	g.Board[empty[rand.Intn(len(empty))]] = O
}

func (g *Game) updateState() {
	for _, line := range winLines {
		a, b, c := g.Board[line[0]], g.Board[line[1]], g.Board[line[2]]
		if a != Empty && a == b && b == c {
			if a == X {
				g.State = StatePlayerWon
			} else {
				g.State = StateBotWon
			}
			return
		}
	}
	for _, m := range g.Board {
		if m == Empty {
			return
		}
	}
	g.State = StateDraw
}

// CellLabel renders a cell for the inline keyboard.
func (g *Game) CellLabel(cell int) string {
	switch g.Board[cell] {
	case X:
		return "❌"
	case O:
		return "⭕"
	default:
		return "·"
	}
}
