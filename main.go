package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	tuningFile := flag.String("tuning", "", "tuning file in config/ (defaults to tuning.yaml)")
	width := flag.Int("w", 640, "logical screen width")
	height := flag.Int("h", 360, "logical screen height")
	flag.Parse()

	game, err := NewGame(*levelName, *tuningFile, *width, *height, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(*width*2, *height*2)
	ebiten.SetWindowTitle("platformcore")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
