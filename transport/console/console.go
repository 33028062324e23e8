package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arena/internal/game"
	"github.com/rocketscienceinc/tictactoe-arena/internal/service"
)

var (
	errBadFormat   = errors.New("invalid input format, use 'row,col' (e.g. '1,2')")
	errNotANumber  = errors.New("row and column must be numbers")
	errOutOfBounds = errors.New("row and column must be between 1 and 3")
)

type statsRecorder interface {
	RecordOutcome(ctx context.Context, tier engine.Tier, outcome engine.Outcome) error
}

// Console is the line-based front-end. It owns no game logic: it renders
// the board, translates 1-based user coordinates into the engine's 0-based
// grid, and drives the turn loop through the game controller.
type Console struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer

	bot        service.BotService
	stats      statsRecorder // nil when stats are disabled
	thinkDelay time.Duration
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, bot service.BotService, stats statsRecorder, thinkDelay time.Duration) *Console {
	return &Console{
		logger: logger.With("component", "console"),

		in:  bufio.NewScanner(in),
		out: out,

		bot:        bot,
		stats:      stats,
		thinkDelay: thinkDelay,
	}
}

// Run shows the mode menu and plays games until the user quits or the input
// stream ends.
func (that *Console) Run(ctx context.Context) error {
	ctrl, ok := that.selectMode()
	if !ok {
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("console stopped: %w", err)
		}

		that.render(ctrl)

		if ctrl.State() == game.StateGameOver {
			that.recordOutcome(ctx, ctrl)

			if !that.promptYesNo("\nPlay again? (y/n): ") {
				fmt.Fprintln(that.out, "\nThanks for playing!")
				return nil
			}

			ctrl.Reset()
			continue
		}

		if ctrl.IsComputerTurn() {
			fmt.Fprintln(that.out, "Computer is thinking...")
			time.Sleep(that.thinkDelay)

			if _, moved := ctrl.ComputerMove(); !moved {
				// coincides with a full board; the next render shows it
				that.logger.Debug("computer had no move to make")
			}
			continue
		}

		if !that.promptHumanMove(ctrl) {
			fmt.Fprintln(that.out, "\nThanks for playing!")
			return nil
		}
	}
}

// selectMode asks for the game mode and builds the matching controller.
// The second return is false when the user quits at the menu.
func (that *Console) selectMode() (*game.Controller, bool) {
	fmt.Fprintln(that.out, "\n=== Tic-Tac-Toe ===")
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, "1. Human vs Human")
	fmt.Fprintln(that.out, "2. Human vs Computer (Easy)")
	fmt.Fprintln(that.out, "3. Human vs Computer (Medium)")
	fmt.Fprintln(that.out, "4. Human vs Computer (Hard)")
	fmt.Fprintln(that.out, "5. Quit")
	fmt.Fprint(that.out, "\nSelect game mode: ")

	line, ok := that.readLine()
	if !ok {
		return nil, false
	}

	switch strings.TrimSpace(line) {
	case "1":
		return game.NewController(that.bot, engine.TierMedium, engine.EmptyCell), true
	case "2":
		return game.NewController(that.bot, engine.TierEasy, engine.MarkO), true
	case "3":
		return game.NewController(that.bot, engine.TierMedium, engine.MarkO), true
	case "4":
		return game.NewController(that.bot, engine.TierHard, engine.MarkO), true
	case "5":
		return nil, false
	default:
		fmt.Fprintln(that.out, "Invalid choice. Defaulting to Human vs Human.")
		return game.NewController(that.bot, engine.TierMedium, engine.EmptyCell), true
	}
}

// promptHumanMove reads and applies one human move. It returns false when
// the user quits or the input stream ends.
func (that *Console) promptHumanMove(ctrl *game.Controller) bool {
	fmt.Fprint(that.out, "Enter your move (row,col) or 'q' to quit: ")

	line, ok := that.readLine()
	if !ok {
		return false
	}

	if strings.EqualFold(strings.TrimSpace(line), "q") {
		return false
	}

	row, col, err := parseMove(line)
	if err != nil {
		fmt.Fprintln(that.out, capitalize(err.Error()))
		return true
	}

	if !ctrl.AttemptMove(row, col) {
		fmt.Fprintln(that.out, "Invalid move. Cell already occupied.")
	}

	return true
}

// parseMove turns 1-based "row,col" input into 0-based coordinates.
func parseMove(line string) (int, int, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return 0, 0, errBadFormat
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errNotANumber
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errNotANumber
	}

	row--
	col--
	if row < 0 || row >= engine.Size || col < 0 || col >= engine.Size {
		return 0, 0, errOutOfBounds
	}

	return row, col, nil
}

func (that *Console) render(ctrl *game.Controller) {
	grid := ctrl.Board().Grid()

	fmt.Fprintln(that.out, "\n  Tic-Tac-Toe")
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, "    1   2   3")
	fmt.Fprintln(that.out, "  ┌───┬───┬───┐")

	for row := 0; row < engine.Size; row++ {
		fmt.Fprintf(that.out, "%d │ %s │ %s │ %s │\n",
			row+1, markOrSpace(grid[row][0]), markOrSpace(grid[row][1]), markOrSpace(grid[row][2]))

		if row < engine.Size-1 {
			fmt.Fprintln(that.out, "  ├───┼───┼───┤")
		} else {
			fmt.Fprintln(that.out, "  └───┴───┴───┘")
		}
	}

	outcome := ctrl.Outcome()
	switch {
	case outcome.Won():
		fmt.Fprintf(that.out, "\nGame Over! %s wins!\n", outcome.Winner)
	case outcome.Drawn():
		fmt.Fprintln(that.out, "\nGame Over! It's a draw!")
	default:
		fmt.Fprintf(that.out, "\nPlayer %s's turn\n", ctrl.Board().Turn())
	}
}

func (that *Console) recordOutcome(ctx context.Context, ctrl *game.Controller) {
	if that.stats == nil || ctrl.ComputerMark() == engine.EmptyCell {
		return
	}

	if err := that.stats.RecordOutcome(ctx, ctrl.Tier(), ctrl.Outcome()); err != nil {
		that.logger.Error("failed to record outcome", "error", err)
	}
}

func (that *Console) promptYesNo(prompt string) bool {
	fmt.Fprint(that.out, prompt)

	line, ok := that.readLine()
	if !ok {
		return false
	}

	return strings.EqualFold(strings.TrimSpace(line), "y")
}

func (that *Console) readLine() (string, bool) {
	if !that.in.Scan() {
		return "", false
	}

	return that.in.Text(), true
}

func markOrSpace(mark engine.Mark) string {
	if mark == engine.EmptyCell {
		return " "
	}

	return string(mark)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
