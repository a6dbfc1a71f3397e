package main

import (
	"log"

	"castledefenders/internal/game"
	"castledefenders/shared/protocol"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowSize(protocol.ScreenW, protocol.ScreenH)
	ebiten.SetWindowTitle("Castle Defenders")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New()
	if g.Fullscreen() {
		ebiten.SetFullscreen(true)
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
