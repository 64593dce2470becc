package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"mazecrawl/pkg/engine/world"
	"mazecrawl/pkg/game/config"
	"mazecrawl/pkg/game/explore"
	"mazecrawl/pkg/game/generator"
	"mazecrawl/pkg/game/history"
	"mazecrawl/pkg/game/maze"
	"mazecrawl/pkg/game/renderer"
	playback "mazecrawl/pkg/game/renderer/ebiten"
	"mazecrawl/pkg/game/renderer/tui"
)

// demoMap is used when no map file is given: a key behind the start,
// a locked door in the bottom border, escape through it.
const demoMap = `+-----+
|k    |
| --+ |
|x  | |
+---+/+`

func initGotext() {
	gotext.Configure("po", "en_GB", "default")
}

func loadMapText(cfg config.Config, generate string, withDoor bool, rng *rand.Rand) (string, error) {
	if generate != "" {
		var w, h int
		if _, err := fmt.Sscanf(generate, "%dx%d", &w, &h); err != nil {
			return "", fmt.Errorf("bad -generate value %q: %w", generate, err)
		}
		return generator.Generate(w, h, rng, withDoor), nil
	}
	if cfg.MapFile != "" {
		data, err := os.ReadFile(cfg.MapFile)
		if err != nil {
			return "", fmt.Errorf("reading map: %w", err)
		}
		return string(data), nil
	}
	return demoMap, nil
}

func selectRenderer(name string, delay time.Duration) (renderer.Renderer, *playback.Playback) {
	switch name {
	case "ebiten":
		p := playback.New("mazecrawl")
		return p, p
	case "none":
		return nil, nil
	default:
		return tui.New(delay), nil
	}
}

func run() int {
	cfg := config.Load()

	mapFile := flag.String("map", cfg.MapFile, "path to a maze map file")
	moves := flag.Int("moves", cfg.Moves, "move budget for the exploration")
	seed := flag.Int64("seed", cfg.Seed, "random-walk seed (0 = clock)")
	rendererName := flag.String("renderer", cfg.Renderer, "renderer: tui, ebiten or none")
	generate := flag.String("generate", "", "generate a random maze, e.g. 8x6")
	withDoor := flag.Bool("door", true, "generated mazes get a locked exit door")
	delay := flag.Duration("delay", 40*time.Millisecond, "tui frame delay")
	flag.Parse()

	initGotext()
	cfg.MapFile = *mapFile

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	text, err := loadMapText(cfg, *generate, *withDoor, rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	m, err := maze.Construct(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", gotext.Get("invalid maze"), err)
		return 2
	}

	active, player := selectRenderer(*rendererName, *delay)
	if active != nil {
		renderer.SetRenderer(active)
		active.Init()
		defer active.Close()
	}

	crawler := m.NewCrawler()
	explorer, err := explore.NewExplorer(crawler, explore.NewRandomWalk(rng))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	startX, startY := m.Start()
	recorder := history.NewRecorder(startX, startY)

	emitFrame := func(outcome renderer.Outcome) {
		x, y := crawler.Position()
		renderer.RenderFrame(&renderer.Frame{
			Grid:    m.Grid(),
			X:       x,
			Y:       y,
			Dir:     crawler.Direction(),
			Move:    explorer.Stats().Moves,
			Outcome: outcome,
		})
	}

	explorer.OnPositionChanged = func(x, y int, dir world.Direction) {
		recorder.RecordPosition(x, y, dir)
		emitFrame(renderer.OutcomeRunning)
	}
	explorer.OnDirectionChanged = func(x, y int, dir world.Direction) {
		recorder.RecordDirection(x, y, dir)
	}

	emitFrame(renderer.OutcomeRunning)
	escaped := explorer.GetOut(*moves)

	outcome := renderer.OutcomeExhausted
	message := gotext.Get("No way out found in %d moves.", *moves)
	if escaped {
		outcome = renderer.OutcomeEscaped
		message = gotext.Get("Found the way out after %d moves!", explorer.Stats().Moves)
	}
	emitFrame(outcome)
	renderer.ShowMessage(message)
	renderer.ShowMessage(recorder.Summary())
	if active == nil {
		fmt.Println(message)
		fmt.Print(recorder.Summary())
	}

	if player != nil {
		if err := player.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	}

	if escaped {
		return 0
	}
	return 1
}

func main() {
	os.Exit(run())
}
