package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var colorBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var colorText = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var colorDebugText = color.NRGBA{R: 0, G: 100, B: 0, A: 255}

func (g *Gui) Draw(screen *ebiten.Image) {
	defer g.HandlePanic()

	screen.Fill(colorBackground)
	for _, s := range g.visWorld.Sprites(&g.world) {
		s.Draw(screen)
	}

	g.DrawText(screen, fmt.Sprintf("Score: %d", g.world.Score), 5, 10, colorText)
	g.DrawText(screen, fmt.Sprintf("Lives: %d", g.world.Lives), 5, 34, colorText)

	if g.state == Playback || g.state == DebugCrash {
		status := fmt.Sprintf("frame %d/%d", g.frameIdx,
			len(g.playthrough.History))
		if g.playbackPaused {
			status += " (paused)"
		}
		if g.world.State == Terminated {
			status += " - round over"
		}
		g.DrawText(screen, status, 5, g.params.ScreenHeight-24, colorDebugText)
	}
}

// DrawText draws message with the top-left corner of its bounds at (x, y).
// The origin point that text.Draw uses is kind of the lower-left corner of the
// bounds of the text, most of the text appears above it. So the text is
// moved down by how much it goes above its origin.
func (g *Gui) DrawText(screen *ebiten.Image, message string, x int64, y int64,
	color color.Color) {
	textSize := text.BoundString(g.defaultFont, message)
	textX := screen.Bounds().Min.X + int(x)
	textY := screen.Bounds().Min.Y + int(y) - textSize.Min.Y
	text.Draw(screen, message, g.defaultFont, textX, textY, color)
}
