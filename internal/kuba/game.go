// Package kuba implements the rules of Kuba, a two-player marble pushing game on a 7x7 board.
//
// A Game is not safe for concurrent use. Callers sharing one game serialize access themselves.
package kuba

import (
	"fmt"
	"maps"

	"github.com/rocketscienceinc/kuba-backend/internal/apperror"
	"github.com/rocketscienceinc/kuba-backend/internal/entity"
)

// WinningCaptures is the number of red marbles a player must push off to win.
const WinningCaptures = 7

// redMarbles on the starting board.
const redMarbles = 13

// Game - the state of one Kuba game: board, turn, captures and the previous board for the Ko rule.
type Game struct {
	players  [2]entity.Player
	board    entity.Board
	previous *entity.Board
	turn     string
	captured map[string]int
	winner   string
}

// New - creates a game with the starting layout. Either player may move first.
func New(playerA, playerB entity.Player) (*Game, error) {
	if err := validatePlayers(playerA, playerB); err != nil {
		return nil, err
	}

	return &Game{
		players:  [2]entity.Player{playerA, playerB},
		board:    entity.NewBoard(),
		captured: map[string]int{playerA.Name: 0, playerB.Name: 0},
	}, nil
}

func validatePlayers(playerA, playerB entity.Player) error {
	switch {
	case playerA.Name == "" || playerB.Name == "":
		return fmt.Errorf("%w: player name is empty", apperror.ErrInvalidPlayers)
	case playerA.Name == playerB.Name:
		return fmt.Errorf("%w: duplicate name %q", apperror.ErrInvalidPlayers, playerA.Name)
	case !playerA.Color.IsPlayerColor() || !playerB.Color.IsPlayerColor():
		return fmt.Errorf("%w: colors must be %s or %s", apperror.ErrInvalidPlayers, entity.White, entity.Black)
	case playerA.Color == playerB.Color:
		return fmt.Errorf("%w: both players use %s", apperror.ErrInvalidPlayers, playerA.Color)
	}

	return nil
}

// CurrentTurn - returns the player to move next. It reports false until the first move is made.
func (that *Game) CurrentTurn() (string, bool) {
	return that.turn, that.turn != ""
}

// Winner - returns the player who won. It reports false while the game is running.
func (that *Game) Winner() (string, bool) {
	return that.winner, that.winner != ""
}

// IsFinished - reports whether a player has won.
func (that *Game) IsFinished() bool {
	return that.winner != ""
}

// Captured - returns the number of red marbles the player has pushed off the board.
func (that *Game) Captured(player string) (int, error) {
	count, ok := that.captured[player]
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, player)
	}

	return count, nil
}

// MarbleAt - returns the marble at c, or ErrOutOfBounds off the board.
func (that *Game) MarbleAt(c entity.Coordinate) (entity.Marble, error) {
	if !c.InBounds() {
		return entity.Empty, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, c.Row, c.Col)
	}

	return that.board.At(c), nil
}

// MarbleCounts - returns how many cells hold each marble.
func (that *Game) MarbleCounts() entity.MarbleCount {
	return that.board.Count()
}

// Board - returns a copy of the current board.
func (that *Game) Board() entity.Board {
	return that.board
}

// Players - returns both players in creation order.
func (that *Game) Players() [2]entity.Player {
	return that.players
}

// ValidateMove - reports the error MakeMove would return for the same arguments, without changing the game.
func (that *Game) ValidateMove(player string, c entity.Coordinate, d entity.Direction) error {
	_, _, err := that.prepareMove(player, c, d)
	return err
}

// MakeMove - pushes the player's marble at c in direction d.
// A rejected move returns an error wrapping apperror.ErrMoveRejected and leaves the game as it was.
func (that *Game) MakeMove(player string, c entity.Coordinate, d entity.Direction) error {
	next, pushedOff, err := that.prepareMove(player, c, d)
	if err != nil {
		return err
	}

	previous := that.board
	that.previous = &previous
	that.board = next

	if pushedOff == entity.Red {
		that.captured[player]++
	}

	if that.captured[player] >= WinningCaptures {
		that.winner = player
	}

	// the turn still passes on the winning move, nothing can be played afterwards anyway
	that.turn = that.opponentOf(player)

	return nil
}

// prepareMove - runs every check in order and returns the board the move would produce.
func (that *Game) prepareMove(player string, c entity.Coordinate, d entity.Direction) (entity.Board, entity.Marble, error) {
	if that.IsFinished() {
		return entity.Board{}, entity.Empty, reject(apperror.ErrGameFinished)
	}

	if that.turn != "" && that.turn != player {
		return entity.Board{}, entity.Empty, reject(apperror.ErrNotYourTurn)
	}

	color, ok := that.colorOf(player)
	if !ok {
		return entity.Board{}, entity.Empty, reject(fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, player))
	}

	if !c.InBounds() {
		return entity.Board{}, entity.Empty, reject(fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, c.Row, c.Col))
	}

	if err := validateMove(&that.board, color, c, d); err != nil {
		return entity.Board{}, entity.Empty, reject(fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err))
	}

	next := that.board
	pushedOff := push(&next, c, d.Step())
	if pushedOff == color {
		return entity.Board{}, entity.Empty, reject(fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrSelfPush))
	}

	if that.previous != nil && next == *that.previous {
		return entity.Board{}, entity.Empty, reject(apperror.ErrKoRule)
	}

	return next, pushedOff, nil
}

func reject(err error) error {
	return fmt.Errorf("%w: %w", apperror.ErrMoveRejected, err)
}

func (that *Game) colorOf(player string) (entity.Marble, bool) {
	for _, p := range that.players {
		if p.Name == player {
			return p.Color, true
		}
	}

	return entity.Empty, false
}

func (that *Game) opponentOf(player string) string {
	if that.players[0].Name == player {
		return that.players[1].Name
	}

	return that.players[0].Name
}

// State - exports the full game state. The result shares no memory with the game.
func (that *Game) State() entity.GameState {
	state := entity.GameState{
		Players:  that.players,
		Board:    that.board,
		Turn:     that.turn,
		Captured: maps.Clone(that.captured),
		Winner:   that.winner,
	}

	if that.previous != nil {
		previous := *that.previous
		state.Previous = &previous
	}

	return state
}

// Restore - rebuilds a game from an exported state.
func Restore(state entity.GameState) (*Game, error) {
	playerA, playerB := state.Players[0], state.Players[1]
	if err := validatePlayers(playerA, playerB); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidState, err)
	}

	if !state.Board.IsValid() {
		return nil, fmt.Errorf("%w: board holds an unknown marble", apperror.ErrInvalidState)
	}

	if state.Previous != nil && !state.Previous.IsValid() {
		return nil, fmt.Errorf("%w: previous board holds an unknown marble", apperror.ErrInvalidState)
	}

	if len(state.Captured) != len(state.Players) {
		return nil, fmt.Errorf("%w: captures must list both players", apperror.ErrInvalidState)
	}

	total := 0
	for _, player := range state.Players {
		count, ok := state.Captured[player.Name]
		if !ok || count < 0 {
			return nil, fmt.Errorf("%w: bad capture count for %q", apperror.ErrInvalidState, player.Name)
		}

		if count >= WinningCaptures && state.Winner != player.Name {
			return nil, fmt.Errorf("%w: %q has %d captures but has not won", apperror.ErrInvalidState, player.Name, count)
		}

		total += count
	}

	if total > redMarbles {
		return nil, fmt.Errorf("%w: %d captures with only %d red marbles", apperror.ErrInvalidState, total, redMarbles)
	}

	for _, name := range []string{state.Turn, state.Winner} {
		if name != "" && name != playerA.Name && name != playerB.Name {
			return nil, fmt.Errorf("%w: %w: %q", apperror.ErrInvalidState, apperror.ErrUnknownPlayer, name)
		}
	}

	if state.Winner != "" && state.Captured[state.Winner] < WinningCaptures {
		return nil, fmt.Errorf("%w: winner %q has too few captures", apperror.ErrInvalidState, state.Winner)
	}

	game := &Game{
		players:  state.Players,
		board:    state.Board,
		turn:     state.Turn,
		captured: maps.Clone(state.Captured),
		winner:   state.Winner,
	}

	if state.Previous != nil {
		previous := *state.Previous
		game.previous = &previous
	}

	return game, nil
}
