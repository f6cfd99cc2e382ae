package game

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/errors"
	"github.com/samdwyer/dungeoncrawl/internal/pkg/clock"
	"github.com/samdwyer/dungeoncrawl/internal/save"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

const (
	// Difficulty bounds offered at the new-game prompt
	MinDifficulty = 1
	MaxDifficulty = 3

	// Coins found on a defeated monster
	minCorpseCoins = 3
	maxCorpseCoins = 10
)

// Config holds the dependencies and options of a game session.
type Config struct {
	Console Console
	Store   save.Store
	Roller  dice.Roller
	Clock   clock.Clock
	Logger  *slog.Logger

	Width        int
	Height       int
	PlayerHealth int
	VictoryHeal  int

	// Difficulty is used for new games. Zero asks the player.
	Difficulty int
	// PlayerName is used for new games. Empty asks the player.
	PlayerName string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Console == nil {
		vb.RequiredField("Console")
	}
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Width <= 0 || c.Height <= 0 {
		vb.Fieldf("Size", "must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.PlayerHealth <= 0 {
		vb.Fieldf("PlayerHealth", "must be positive, got %d", c.PlayerHealth)
	}
	if c.VictoryHeal < 0 {
		vb.Fieldf("VictoryHeal", "must not be negative, got %d", c.VictoryHeal)
	}
	if c.Difficulty < 0 {
		vb.Fieldf("Difficulty", "must not be negative, got %d", c.Difficulty)
	}

	return vb.Build()
}

// Game holds the entire game state.
type Game struct {
	console Console
	store   save.Store
	roller  dice.Roller
	clock   clock.Clock
	logger  *slog.Logger
	cfg     Config

	player  *entity.Player
	dungeon *world.Dungeon
	state   State
}

// New creates a new game instance.
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	g := &Game{
		console: cfg.Console,
		store:   cfg.Store,
		roller:  cfg.Roller,
		clock:   cfg.Clock,
		logger:  cfg.Logger,
		cfg:     *cfg,
		state:   StatePlaying,
	}
	if g.clock == nil {
		g.clock = clock.New()
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g, nil
}

// Player returns the current player, nil before a game starts.
func (g *Game) Player() *entity.Player { return g.player }

// Dungeon returns the current dungeon, nil before a game starts.
func (g *Game) Dungeon() *world.Dungeon { return g.dungeon }

// State returns where the session stands.
func (g *Game) State() State { return g.state }

// Run executes the main game loop until the player wins, dies, quits or
// input runs out. Only integrity failures are returned as errors.
func (g *Game) Run(ctx context.Context) error {
	g.console.Writeln("=== Text Dungeon ===")
	g.console.Writeln("Type 'help' for commands.")
	g.console.Writeln("")

	if err := g.start(ctx); err != nil {
		return g.inputDone(err)
	}
	if err := g.EnterRoom(ctx); err != nil {
		return err
	}

	for {
		if g.checkEnd(ctx) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := g.console.Read("> ")
		if err != nil {
			return g.inputDone(err)
		}
		if err := g.Handle(ctx, line); err != nil {
			return err
		}
	}
}

// start offers to resume a saved game, falling back to a new one.
func (g *Game) start(ctx context.Context) error {
	exists, err := g.store.Exists(ctx)
	if err != nil {
		g.logger.WarnContext(ctx, "failed to check for saved game", "error", err)
	}

	if exists {
		answer, err := g.console.Read("Saved game found. Type 'load' to continue or press Enter for new: ")
		if err != nil {
			return err
		}
		if normalize(answer) == "load" {
			loaded, err := g.loadSnapshot(ctx)
			if err != nil {
				return err
			}
			if loaded {
				g.console.Writeln("Loaded saved game.")
				return nil
			}
			g.console.Writeln("Failed to load save. Starting new game.")
		}
	}

	name, difficulty, err := g.promptNewGame()
	if err != nil {
		return err
	}
	return g.NewGame(ctx, name, difficulty)
}

// promptNewGame asks for whatever the config leaves open.
func (g *Game) promptNewGame() (string, int, error) {
	name := g.cfg.PlayerName
	if name == "" {
		answer, err := g.console.Read("Enter your name [" + entity.DefaultPlayerName + "]: ")
		if err != nil {
			return "", 0, err
		}
		name = strings.TrimSpace(answer)
	}

	difficulty := g.cfg.Difficulty
	if difficulty == 0 {
		answer, err := g.console.Read("Choose difficulty (1-3) [1]: ")
		if err != nil {
			return "", 0, err
		}
		difficulty = parseDifficulty(answer)
	}
	return name, difficulty, nil
}

// parseDifficulty maps the prompt answer to a level, defaulting to the easiest.
func parseDifficulty(answer string) int {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < MinDifficulty || n > MaxDifficulty {
		return MinDifficulty
	}
	return n
}

// NewGame generates a fresh dungeon and places a new player on the entrance.
func (g *Game) NewGame(ctx context.Context, name string, difficulty int) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.new")
	defer span.End()

	if strings.TrimSpace(name) == "" {
		name = entity.DefaultPlayerName
	}

	dungeon, err := world.Generate(ctx, g.cfg.Width, g.cfg.Height, difficulty, g.roller)
	if err != nil {
		return errors.Wrap(err, "failed to generate dungeon")
	}
	player, err := entity.NewPlayer(name, g.cfg.PlayerHealth)
	if err != nil {
		return errors.Wrap(err, "failed to create player")
	}
	player.Move(dungeon.Entrance)
	if err := dungeon.MarkRoomVisited(player.Position()); err != nil {
		return err
	}

	g.player = player
	g.dungeon = dungeon
	g.state = StatePlaying

	span.SetAttributes(
		attribute.String("player.name", name),
		attribute.Int("game.difficulty", difficulty),
	)
	g.logger.InfoContext(ctx, "new game started",
		"player", name,
		"difficulty", difficulty,
		"width", dungeon.Width,
		"height", dungeon.Height)

	g.console.Writeln("New game started. Find the exit (X).")
	g.console.Writeln("")
	return nil
}

// checkEnd settles the session once the player is dead or on the exit.
func (g *Game) checkEnd(ctx context.Context) bool {
	switch {
	case g.state == StateQuit:
		return true
	case g.player.IsDead():
		g.state = StateLost
		g.console.Writeln("")
		g.console.Writeln("GAME OVER. Final score: " + strconv.Itoa(g.player.Score()))
	case g.onExit():
		g.state = StateWon
		g.console.Writeln("")
		g.console.Writeln("You found the EXIT!")
		g.console.Writeln("Final score: " + strconv.Itoa(g.player.Score()))
	default:
		return false
	}

	g.logger.InfoContext(ctx, "game over",
		"state", g.state.String(),
		"score", g.player.Score())
	return true
}

func (g *Game) onExit() bool {
	room := g.dungeon.GetRoomAtPosition(g.player.Position())
	return room != nil && room.Type == world.RoomExit
}

// inputDone treats exhausted input as leaving the game.
func (g *Game) inputDone(err error) error {
	if stderrors.Is(err, io.EOF) {
		g.state = StateQuit
		return nil
	}
	return err
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
