package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is anything that has a position on the screen and can draw itself
// there.
type Sprite interface {
	Pos() Pt
	Draw(screen *ebiten.Image)
}

// StaticSprite is a single image at a position.
type StaticSprite struct {
	Img *ebiten.Image
	At  Pt
}

func (s StaticSprite) Pos() Pt {
	return s.At
}

func (s StaticSprite) Draw(screen *ebiten.Image) {
	DrawSpriteXY(screen, s.Img, float64(s.At.X), float64(s.At.Y))
}

// AnimatedSprite draws the current image of an animation at a position.
type AnimatedSprite struct {
	Animation Animation
	At        Pt
}

func (s AnimatedSprite) Pos() Pt {
	return s.At
}

func (s AnimatedSprite) Draw(screen *ebiten.Image) {
	DrawSpriteXY(screen, s.Animation.CurrentImg(), float64(s.At.X),
		float64(s.At.Y))
}
