package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadConfig() {
	if g.devModeEnabled {
		LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
	} else {
		LoadYAML(g.FSys, "data/config.yaml", &g.Config)
	}
	log.Info("config loaded", "dev", g.devModeEnabled, "config",
		fmt.Sprintf("%+v", g.Config))
}

// LoadGuiData loads every image and derives the World's sizes from them.
// A missing asset is fatal.
func (g *Gui) LoadGuiData() {
	g.loadAssets()
	g.params = ParamsFromAssets(DefaultParams(), g.Assets)
	g.visWorld = NewVisWorld(g.Assets)
	g.UpdateWindowSize()

	fontData, err := opentype.Parse(gomono.TTF)
	Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	Check(err)
}

// ReloadGuiData is used in developer mode, when the files in data/gui change.
// Read from the disk over and over until a full read is possible. This
// repetition is meant to avoid crashes due to reading files while they are
// still being written.
func (g *Gui) ReloadGuiData() {
	previousVal := CheckCrashes
	CheckCrashes = false
	for {
		CheckFailed = nil
		g.loadAssets()
		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal
	g.visWorld = NewVisWorld(g.Assets)
	g.ApplyParams(ParamsFromAssets(g.params, g.Assets))
	log.Info("assets reloaded")
}

// ApplyParams makes p the sizes used from now on. A round being played
// restarts with the same seed, because the sizes of a round are part of its
// playthrough and can't change halfway. Playback keeps using the sizes
// stored in the playthrough.
func (g *Gui) ApplyParams(p Params) {
	if p == g.params {
		return
	}
	g.params = p
	if g.state != PlayScreen {
		return
	}
	g.playthrough = NewPlaythrough(g.playthrough.Seed, g.params)
	g.world = NewWorldFromPlaythrough(g.playthrough)
	g.clock = NewFrameClock(TPS)
	g.ai = AI{}
	g.frameIdx = 0
	log.Info("sizes changed, round restarted",
		"bucket", g.params.BucketSize,
		"catchFrames", g.params.CatchFrames)
}

func (g *Gui) loadAssets() {
	g.imgBackground = LoadImage(g.FSys, "data/gui/background.png")
	g.imgBucket = LoadImage(g.FSys, "data/gui/bucket.png")
	g.imgBall = LoadImage(g.FSys, "data/gui/ball.png")
	g.imgSpikyBall = LoadImage(g.FSys, "data/gui/spiky-ball.png")
	g.animCatch = NewAnimation(g.FSys, "data/gui/catch")
}

// ParamsFromAssets sets the sizes that the World uses for collisions to the
// sizes of the images that will be drawn.
func ParamsFromAssets(p Params, a Assets) Params {
	p.BenignSize = ImageSize(a.imgBall)
	p.HazardSize = ImageSize(a.imgSpikyBall)
	p.BucketSize = ImageSize(a.imgBucket)
	p.CatchFrames = a.animCatch.NImgs()
	return p
}
