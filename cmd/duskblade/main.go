package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/duskblade/internal/audio"
	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/game"
	"chosenoffset.com/duskblade/internal/render"
	ebitenrender "chosenoffset.com/duskblade/internal/render/ebiten"
	"chosenoffset.com/duskblade/internal/sprites"
	"chosenoffset.com/duskblade/internal/ui/menu"
)

func main() {
	configPath := flag.String("config", "data/config.yaml", "path to the game config")
	assetRoot := flag.String("assets", ".", "directory the asset paths are resolved against")
	mute := flag.Bool("mute", false, "start with sound off")
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	log.Println("Loading sprites...")
	lib := sprites.Load(renderer, loader, cfg, *assetRoot)

	sound := audio.NewManager(cfg.Audio)
	if err := sound.Init(); err != nil {
		log.Printf("Warning: Audio disabled: %v", err)
	}
	defer sound.Close()

	gameManager := game.NewManager(cfg, renderer, inputMgr, lib, sound, rng)
	opts := menu.DefaultOptions()
	opts.SoundOn = cfg.Audio.Enabled && !*mute
	gameManager.ApplyOptions(opts)

	// Set up the window
	engine.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	engine.SetWindowTitle(cfg.Screen.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Screen.TPS)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil && !errors.Is(err, render.ErrQuit) {
		log.Fatal(err)
	}
	log.Println("Goodbye")
}
