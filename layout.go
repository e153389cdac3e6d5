package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// WindowTitle is shown by the OS on the game's window.
const WindowTitle = "Catch em all!"

// Layout keeps the screen bitmap at the play area's size, whatever the size of
// the window. Ebitengine scales the bitmap to fit inside the window and keeps
// the aspect ratio, adding black bars where needed.
func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	defer g.HandlePanic()
	return int(g.params.ScreenWidth), int(g.params.ScreenHeight)
}

func (g *Gui) UpdateWindowSize() {
	ebiten.SetWindowSize(int(g.params.ScreenWidth), int(g.params.ScreenHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(WindowTitle)
}
