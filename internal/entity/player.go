package entity

// Player is one side of a game, identified by name and owning one marble color.
type Player struct {
	Name  string `json:"name"`
	Color Marble `json:"color"`
}

// GameState is everything needed to resume a game with identical behavior, Ko rule included.
type GameState struct {
	Players  [2]Player      `json:"players"`
	Board    Board          `json:"board"`
	Previous *Board         `json:"previous,omitempty"`
	Turn     string         `json:"turn,omitempty"`
	Captured map[string]int `json:"captured"`
	Winner   string         `json:"winner,omitempty"`
}

func (that *GameState) IsFinished() bool {
	return that.Winner != ""
}
