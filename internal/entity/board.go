package entity

import "strings"

// Size is the number of rows and columns on a Kuba board.
const Size = 7

// Marble is the content of a single board cell.
type Marble string

const (
	Empty Marble = "X"
	White Marble = "W"
	Black Marble = "B"
	Red   Marble = "R"
)

func (that Marble) IsValid() bool {
	switch that {
	case Empty, White, Black, Red:
		return true
	default:
		return false
	}
}

// IsPlayerColor reports whether the marble is one a player can own.
func (that Marble) IsPlayerColor() bool {
	return that == White || that == Black
}

// Board is a value type, assigning it copies every cell.
type Board [Size][Size]Marble

// NewBoard returns the standard starting layout: two-by-two blocks of white and black in the corners
// and a diamond of thirteen red marbles in the middle.
func NewBoard() Board {
	return Board{
		{White, White, Empty, Empty, Empty, Black, Black},
		{White, White, Empty, Red, Empty, Black, Black},
		{Empty, Empty, Red, Red, Red, Empty, Empty},
		{Empty, Red, Red, Red, Red, Red, Empty},
		{Empty, Empty, Red, Red, Red, Empty, Empty},
		{Black, Black, Empty, Red, Empty, White, White},
		{Black, Black, Empty, Empty, Empty, White, White},
	}
}

// EmptyBoard returns a board with every cell empty.
func EmptyBoard() Board {
	var board Board
	for row := range board {
		for col := range board[row] {
			board[row][col] = Empty
		}
	}

	return board
}

// MarbleCount holds the number of cells of each kind.
type MarbleCount struct {
	White int `json:"white"`
	Black int `json:"black"`
	Red   int `json:"red"`
	Empty int `json:"empty"`
}

func (that *Board) Count() MarbleCount {
	var count MarbleCount
	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case White:
				count.White++
			case Black:
				count.Black++
			case Red:
				count.Red++
			case Empty:
				count.Empty++
			}
		}
	}

	return count
}

// At returns the marble at c. The caller checks bounds.
func (that *Board) At(c Coordinate) Marble {
	return that[c.Row][c.Col]
}

func (that *Board) Set(c Coordinate, marble Marble) {
	that[c.Row][c.Col] = marble
}

// IsValid reports whether every cell holds one of the four marble values.
func (that *Board) IsValid() bool {
	for _, row := range that {
		for _, cell := range row {
			if !cell.IsValid() {
				return false
			}
		}
	}

	return true
}

// String renders one line per row with cells separated by spaces.
func (that Board) String() string {
	var sb strings.Builder
	for i, row := range that {
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(string(cell))
		}
		if i < Size-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
