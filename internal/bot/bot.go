package bot

import (
	"ctchen222/Solo-Tac-Toe/internal/game"
	"math/rand/v2"
)

// SelectMove picks the computer's next cell uniformly at random from
// the empty cells. It returns false when the board is full, which a
// caller driving moves off InProgress outcomes should never see.
func SelectMove(board [9]game.PlayerMark) (int, bool) {
	available := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == game.None {
			available = append(available, i)
		}
	}

	if len(available) == 0 {
		return -1, false
	}

	return available[rand.IntN(len(available))], true
}
