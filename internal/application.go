package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/kuba-backend/internal/apperror"
	"github.com/rocketscienceinc/kuba-backend/internal/config"
	"github.com/rocketscienceinc/kuba-backend/internal/entity"
	"github.com/rocketscienceinc/kuba-backend/internal/repository"
	"github.com/rocketscienceinc/kuba-backend/internal/usecase"
)

// RunApp - plays the scripted game from the config and writes every board to out.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	gameRepo := repository.NewGameRepository()
	gameManager := usecase.NewGameManager(logger, gameRepo)

	playerA, playerB := conf.Players.PlayerPair()
	gameID, state, err := gameManager.CreateGame(ctx, playerA, playerB)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	moves := conf.ScriptedMoves()
	log.Info("Starting game", "gameID", gameID, "moves", len(moves))

	fmt.Fprintf(out, "%s (%s) vs %s (%s)\n", playerA.Name, playerA.Color, playerB.Name, playerB.Color)
	printBoard(out, state.Board)

	for i, move := range moves {
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Info("Game interrupted", "move", i+1)
			return fmt.Errorf("game interrupted: %w", ctxErr)
		}

		next, err := gameManager.MakeMove(ctx, gameID, move)
		if errors.Is(err, apperror.ErrMoveRejected) {
			fmt.Fprintf(out, "move %d: %s (%d, %d) %s refused: %v\n",
				i+1, move.Player, move.Coordinate.Row, move.Coordinate.Col, move.Direction, err)
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to play move %d: %w", i+1, err)
		}

		state = next
		fmt.Fprintf(out, "move %d: %s (%d, %d) %s\n",
			i+1, move.Player, move.Coordinate.Row, move.Coordinate.Col, move.Direction)

		if !conf.HideBoard {
			printBoard(out, state.Board)
		}
	}

	printSummary(out, state)

	log.Info("Game over", "gameID", gameID, "winner", state.Winner)

	return nil
}

func printBoard(out io.Writer, board entity.Board) {
	fmt.Fprintf(out, "%s\n\n", board)
}

func printSummary(out io.Writer, state *entity.GameState) {
	for _, player := range state.Players {
		fmt.Fprintf(out, "%s captured %d\n", player.Name, state.Captured[player.Name])
	}

	count := state.Board.Count()
	fmt.Fprintf(out, "marbles: white %d, black %d, red %d\n", count.White, count.Black, count.Red)

	if state.IsFinished() {
		fmt.Fprintf(out, "winner: %s\n", state.Winner)
		return
	}

	fmt.Fprintln(out, "winner: none")
}
