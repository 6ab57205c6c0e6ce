package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/pepone42/minesweeper/internal/minefield"
	"github.com/pepone42/minesweeper/internal/render"
)

const (
	Prompt = ">> "

	cmdQuit = "quit"

	msgWin  = "You win!"
	msgLose = "You lose!"
)

var ErrBoardTooWide = errors.New("board has more columns than letters")

type lineReader interface {
	Readline() (string, error)
}

type Shell struct {
	logger *slog.Logger
	in     lineReader
	out    io.Writer
}

func New(logger *slog.Logger, in lineReader, out io.Writer) *Shell {
	return &Shell{
		logger: logger.With("component", "shell"),
		in:     in,
		out:    out,
	}
}

// Play runs one game on board until it is won, lost, quit or input ends.
func (that *Shell) Play(ctx context.Context, board *minefield.Board) (minefield.State, error) {
	log := that.logger.With("method", "Play")

	if board.Width() > len(render.ColumnNames) {
		return board.State(), fmt.Errorf("%w: %d > %d", ErrBoardTooWide, board.Width(), len(render.ColumnNames))
	}

	for {
		if ctx.Err() != nil {
			log.Info("session canceled")
			return board.State(), nil
		}

		if err := render.Board(that.out, board); err != nil {
			return board.State(), err
		}

		line, err := that.in.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			log.Info("input closed")
			return board.State(), nil
		}
		if err != nil {
			return board.State(), fmt.Errorf("failed to read command: %w", err)
		}

		cmd := strings.TrimSpace(line)
		if cmd == cmdQuit {
			return board.State(), nil
		}

		x, y, ok := ParseCommand(cmd)
		if !ok {
			log.Debug("ignored input", "input", cmd)
			continue
		}

		switch state := board.Attempt(x, y); state {
		case minefield.Win:
			return state, that.finish(board, msgWin)
		case minefield.GameOver:
			return state, that.finish(board, msgLose)
		case minefield.Continue:
		}
	}
}

func (that *Shell) finish(board *minefield.Board, message string) error {
	if err := render.Board(that.out, board); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(that.out, message); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}

	return nil
}

// ParseCommand reads "ROW,COLUMN" where COLUMN is a single letter, e.g. "3,B" -> x=1, y=3.
func ParseCommand(cmd string) (int, int, bool) {
	row, column, found := strings.Cut(cmd, ",")
	if !found || strings.Contains(column, ",") {
		return 0, 0, false
	}

	y, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return 0, 0, false
	}

	column = strings.ToUpper(strings.TrimSpace(column))
	if len(column) != 1 {
		return 0, 0, false
	}

	x := strings.IndexByte(render.ColumnNames, column[0])
	if x < 0 {
		return 0, 0, false
	}

	return x, y, true
}
