package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Animation holds the images of an animation, in order. It is cheap to copy
// this struct. Once the images are loaded there's no need to change them, so
// copies just share the references to the images.
// Which image is current is decided by the World, not by the Animation.
type Animation struct {
	Imgs     []*ebiten.Image
	ImgIndex int64
}

// NewAnimation loads every .png file in dir. The frames are ordered by file
// name, so "01.png", "02.png" .. is the expected naming.
func NewAnimation(fsys FS, dir string) (a Animation) {
	files, err := FrameFiles(fsys, dir)
	Check(err)
	for _, file := range files {
		a.Imgs = append(a.Imgs, LoadImage(fsys, file))
	}
	a.ImgIndex = 0
	return
}

// SetIndex selects the current image. Indexes outside the animation are
// clamped to the first or last image.
func (a *Animation) SetIndex(idx int64) {
	a.ImgIndex = min(max(idx, 0), int64(len(a.Imgs))-1)
}

func (a *Animation) CurrentImg() *ebiten.Image {
	return a.Imgs[a.ImgIndex]
}

func (a *Animation) NImgs() int64 {
	return int64(len(a.Imgs))
}
