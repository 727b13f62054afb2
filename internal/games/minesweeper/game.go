// Package minesweeper adapts the minesweeper engine to the terminal platform:
// cursor handling, board variants and rendering.
package minesweeper

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	platformcore "github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// Variant is a registered board preset.
type Variant struct {
	ID     string
	Title  string
	Preset string
}

// Variants lists every registered variant. The first one is the default.
var Variants = []Variant{
	{ID: "minesweeper", Title: "Minesweeper", Preset: config.PresetClassic},
	{ID: "minesweeper_beginner", Title: "Minesweeper (Beginner)", Preset: config.PresetBeginner},
	{ID: "minesweeper_intermediate", Title: "Minesweeper (Intermediate)", Preset: config.PresetIntermediate},
	{ID: "minesweeper_expert", Title: "Minesweeper (Expert)", Preset: config.PresetExpert},
}

// DefaultID is the variant used when none is named.
const DefaultID = "minesweeper"

func init() {
	defaults := config.DefaultConfig()
	for _, v := range Variants {
		v := v
		b := defaults.Presets[v.Preset]
		registry.Register(registry.GameInfo{
			ID:          v.ID,
			Title:       v.Title,
			Description: b.String(),
		}, func() registry.Game {
			return New(v)
		})
	}
}

// Game is one player's minesweeper session.
type Game struct {
	variant Variant
	board   config.BoardConfig
	layout  *core.Layout
	cheat   bool
	logger  *log.Logger

	state *core.Guarded
	rng   *rand.Rand
	seed  int64
	tick  uint64

	cursorX, cursorY int
	screenW, screenH int
	tooSmall         bool

	started  bool
	exploded *core.Coord
}

// New creates a game for the given variant with the built-in preset size.
func New(v Variant) *Game {
	b, ok := config.DefaultConfig().Presets[v.Preset]
	if !ok {
		b = config.DefaultConfig().Board
	}
	return &Game{
		variant: v,
		board:   b,
		cheat:   true,
		logger:  log.Default(),
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.variant.Title }

// Configure applies a loaded configuration: the variant's preset size (or the
// configured default board when the preset is missing) and display options.
func (g *Game) Configure(cfg config.SweeperConfig) {
	if b, ok := cfg.Presets[g.variant.Preset]; ok {
		g.board = b
	} else {
		g.board = cfg.Board
	}
	g.cheat = cfg.Display.Cheat
}

// SetBoard overrides the board size for subsequent rounds.
func (g *Game) SetBoard(b config.BoardConfig) {
	g.board = b
	g.layout = nil
}

// BoardConfig returns the size used for the next round.
func (g *Game) BoardConfig() config.BoardConfig {
	return g.board
}

// SetLayout plays a fixed mine arrangement instead of random boards.
func (g *Game) SetLayout(l *core.Layout) {
	g.layout = l
	if l != nil {
		w, h := l.Size()
		mines := 0
		for _, row := range l.Rows {
			mines += strings.Count(row, string(core.LayoutMine))
		}
		g.board = config.BoardConfig{Width: w, Height: h, Mines: mines}
	}
}

// SetLogger sets the logger passed to the engine.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// Reset starts a new round.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.started = false
	g.exploded = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	b, err := g.newBoard()
	if err != nil {
		// Fall back to the classic board rather than leaving the session empty.
		g.logger.Error("cannot create board, using default", "board", g.board.String(), "error", err)
		g.layout = nil
		g.board = config.DefaultConfig().Board
		b, _ = core.NewGame(g.board.Width, g.board.Height, g.board.Mines, g.rng, core.WithLogger(g.logger))
	}
	if g.state == nil {
		g.state = core.NewGuarded(b)
	} else {
		g.state.Replace(b)
	}

	g.cursorX = b.Width() / 2
	g.cursorY = b.Height() / 2
	g.checkScreenSize()
}

func (g *Game) newBoard() (*core.Board, error) {
	if g.layout != nil {
		return core.NewFromLayout(g.layout, core.WithLogger(g.logger))
	}
	return core.NewGame(g.board.Width, g.board.Height, g.board.Mines, g.rng, core.WithLogger(g.logger))
}

// Step applies the frame's actions in the order they were typed.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	for _, a := range in.Actions {
		switch a {
		case platformcore.ActionUp:
			g.moveCursor(0, -1)
		case platformcore.ActionDown:
			g.moveCursor(0, 1)
		case platformcore.ActionLeft:
			g.moveCursor(-1, 0)
		case platformcore.ActionRight:
			g.moveCursor(1, 0)
		case platformcore.ActionReveal:
			res, err := g.state.Reveal(g.cursorX, g.cursorY)
			g.afterReveal(res, err)
		case platformcore.ActionChord:
			res, err := g.state.Chord(g.cursorX, g.cursorY)
			g.afterReveal(res, err)
		case platformcore.ActionFlag:
			if _, err := g.state.ToggleFlag(g.cursorX, g.cursorY); err != nil {
				g.logger.Error("flag failed", "error", err)
			}
		case platformcore.ActionCheat:
			if g.cheat {
				g.state.FlagAllMines()
			}
		}
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) afterReveal(res core.RevealResult, err error) {
	if err != nil {
		g.logger.Error("reveal failed", "x", g.cursorX, "y", g.cursorY, "error", err)
		return
	}
	if len(res.Revealed) > 0 {
		g.started = true
	}
	if res.Outcome == core.Loss {
		for _, c := range res.Revealed {
			if c.IsMine {
				at := core.C(c.X, c.Y)
				g.exploded = &at
				break
			}
		}
	}
}

func (g *Game) moveCursor(dx, dy int) {
	g.state.Do(func(b *core.Board) {
		g.cursorX = platformcore.Wrap(g.cursorX+dx, b.Width())
		g.cursorY = platformcore.Wrap(g.cursorY+dy, b.Height())
	})
}

// Cursor returns the cursor position.
func (g *Game) Cursor() core.Coord {
	return core.C(g.cursorX, g.cursorY)
}

// Board gives synchronized access to the current board.
func (g *Game) Board(fn func(b *core.Board)) {
	g.state.Do(fn)
}

// State returns the current game state. Score is the number of safe cells
// revealed.
func (g *Game) State() platformcore.GameState {
	var st platformcore.GameState
	g.state.Do(func(b *core.Board) {
		st = platformcore.GameState{
			Score:    b.RevealedCount(),
			Started:  g.started,
			GameOver: b.Status().Over(),
			Won:      b.Status() == core.Won,
		}
	})
	return st
}

// Round summarizes the current round for result history.
func (g *Game) Round() platformcore.Round {
	var r platformcore.Round
	g.state.Do(func(b *core.Board) {
		r = platformcore.Round{
			Width:    b.Width(),
			Height:   b.Height(),
			Mines:    b.MineCount(),
			Revealed: b.RevealedCount(),
			Cheated:  b.Cheated(),
		}
	})
	return r
}
