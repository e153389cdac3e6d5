package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Assets are all the images the Gui needs, loaded once at startup.
type Assets struct {
	imgBackground *ebiten.Image
	imgBucket     *ebiten.Image
	imgBall       *ebiten.Image
	imgSpikyBall  *ebiten.Image
	animCatch     Animation
}

// VisWorld is a world parallel to World that knows how World things look.
// World only has positions and indexes. VisWorld turns them into sprites, in
// the order in which they must be drawn.
type VisWorld struct {
	background  *ebiten.Image
	bucket      *ebiten.Image
	variantImgs map[string]*ebiten.Image
	catch       Animation
}

func NewVisWorld(a Assets) (v VisWorld) {
	v.background = a.imgBackground
	v.bucket = a.imgBucket
	v.variantImgs = map[string]*ebiten.Image{
		"ball":       a.imgBall,
		"spiky-ball": a.imgSpikyBall,
	}
	v.catch = a.animCatch
	return v
}

// Sprites returns what must be drawn for the last frame of w, back to front:
// background, falling object, bucket, catch animation.
func (v *VisWorld) Sprites(w *World) []Sprite {
	sprites := make([]Sprite, 0, 4)
	sprites = append(sprites, StaticSprite{v.background, Pt{0, 0}})

	obj := w.FallingDrawn
	variant := w.Generator.Variants[obj.VariantIdx]
	sprites = append(sprites, StaticSprite{v.variantImgs[variant.Name], obj.Pos})

	sprites = append(sprites, StaticSprite{v.bucket, w.Bucket.Pos})

	if w.CatchVisible {
		anim := v.catch
		anim.SetIndex(w.Catch.Index)
		sprites = append(sprites, AnimatedSprite{anim, w.Catch.Pos})
	}
	return sprites
}
