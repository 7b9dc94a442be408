package entity

// Coordinate addresses a board cell by row and column, both zero based.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coordinate) InBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Coordinate) Add(step Coordinate) Coordinate {
	return Coordinate{Row: that.Row + step.Row, Col: that.Col + step.Col}
}

func (that Coordinate) Sub(step Coordinate) Coordinate {
	return Coordinate{Row: that.Row - step.Row, Col: that.Col - step.Col}
}

// Direction is the way a marble is pushed. Left and Right move along a row,
// Forward and Backward along a column (Forward towards row 0).
type Direction string

const (
	Left     Direction = "L"
	Right    Direction = "R"
	Forward  Direction = "F"
	Backward Direction = "B"
)

var steps = map[Direction]Coordinate{
	Left:     {Row: 0, Col: -1},
	Right:    {Row: 0, Col: 1},
	Forward:  {Row: -1, Col: 0},
	Backward: {Row: 1, Col: 0},
}

func (that Direction) IsValid() bool {
	_, ok := steps[that]
	return ok
}

// Step returns the unit vector of the direction, or the zero vector for an unknown direction.
func (that Direction) Step() Coordinate {
	return steps[that]
}

// Horizontal reports whether the push runs along a row.
func (that Direction) Horizontal() bool {
	return that == Left || that == Right
}

// Move is a single push request.
type Move struct {
	Player     string     `json:"player"`
	Coordinate Coordinate `json:"coordinate"`
	Direction  Direction  `json:"direction"`
}
