package main

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (g *Gui) Update() error {
	defer g.HandlePanic()

	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.devModeEnabled && g.folderWatcher.FolderContentsChanged() {
		g.ReloadGuiData()
	}

	switch g.state {
	case PlayScreen:
		return g.UpdatePlayScreen()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}

	if ebiten.IsWindowBeingClosed() || g.JustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// PlayerInputFromKeys reads the arrow keys. Only changes are reported: the
// World remembers the direction until the key is released.
func (g *Gui) PlayerInputFromKeys() (input PlayerInput) {
	input.LeftPressed = inpututil.IsKeyJustPressed(ebiten.KeyLeft)
	input.LeftReleased = inpututil.IsKeyJustReleased(ebiten.KeyLeft)
	input.RightPressed = inpututil.IsKeyJustPressed(ebiten.KeyRight)
	input.RightReleased = inpututil.IsKeyJustReleased(ebiten.KeyRight)
	return
}

func (g *Gui) UpdatePlayScreen() error {
	// Get the player input.
	var input PlayerInput
	if g.Autoplay {
		input = g.ai.Step(&g.world)
	} else {
		input = g.PlayerInputFromKeys()
	}
	input.Quit = ebiten.IsWindowBeingClosed() || g.JustPressed(ebiten.KeyEscape)
	input.DeltaMs = g.clock.Tick()

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	// Step the world.
	g.world.Step(input)
	// Finally increase the frame.
	g.frameIdx++

	if g.world.State == Terminated {
		g.FinishRound()
		return ebiten.Termination
	}
	return nil
}

// FinishRound reports the end of the round and hands the playthrough to the
// uploader.
func (g *Gui) FinishRound() {
	s := g.world.Summary()
	reason := "lives"
	if g.world.EndReason == Quit {
		reason = "quit"
	}
	log.Info("round over",
		"reason", reason,
		"score", s.Score,
		"seconds", s.ElapsedSec,
		"dropped", s.Dropped,
		"frames", g.frameIdx)
	g.uploadChannel <- *g.playthrough.Clone()
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	if g.JustPressed(ebiten.KeySpace) {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyLeft) && !g.Pressed(ebiten.KeyShift) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyRight) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipArrow
	}

	// frameIdx is the number of inputs already given to the World, so
	// nFrames means the whole playthrough was played.
	targetFrameIdx = min(max(targetFrameIdx, 0), nFrames)

	if targetFrameIdx != g.frameIdx {
		// Rewind.
		g.world = NewWorldFromPlaythrough(g.playthrough)

		// Replay the world.
		for i := int64(0); i < targetFrameIdx; i++ {
			g.world.Step(g.playthrough.History[i])
		}

		// Set the current frame idx.
		g.frameIdx = targetFrameIdx
	}

	if !g.playbackPaused && g.frameIdx < nFrames {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	}
}

func (g *Gui) UpdateDebugCrash() {
	nFrames := int64(len(g.playthrough.History))

	// Go to the next frame.
	goToNextFrame := g.JustPressed(ebiten.KeyD) || g.JustPressed(ebiten.KeyRight)
	if goToNextFrame && g.frameIdx >= 0 && g.frameIdx < nFrames {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	}

	// Go to the previous frame.
	goToPreviousFrame := g.JustPressed(ebiten.KeyA) || g.JustPressed(ebiten.KeyLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		g.frameIdx--

		// I have no better way to go to the previous frame than redoing all the
		// frames from the beginning.
		g.world = NewWorldFromPlaythrough(g.playthrough)
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	}
}
