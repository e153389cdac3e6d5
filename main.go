package main

import (
	"embed"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play. It must change when SimulationVersion or InputVersion change, and
// also whenever something else about the executable changes (graphics,
// uploading enabled or not, asserts enabled or not).
const ReleaseVersion = 1

// TPS is how many times per second Update() runs.
const TPS = 60

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	Playback
	DebugCrash
)

type Gui struct {
	Config
	Assets
	params              Params
	world               World
	visWorld            VisWorld
	ai                  AI
	clock               FrameClock
	FSys                FS
	folderWatcher       FolderWatcher
	defaultFont         font.Face
	playthrough         Playthrough
	frameIdx            int64
	state               GameState
	playbackPaused      bool
	pressedKeys         []ebiten.Key
	justPressedKeys     []ebiten.Key // keys pressed in this frame
	FrameSkipShiftArrow int64
	FrameSkipArrow      int64
	username            string
	uploadChannel       chan Playthrough
	uploadDone          chan struct{}
	devModeEnabled      bool
}

type Config struct {
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	Autoplay      bool   `yaml:"Autoplay"`
	UploadURL     string `yaml:"UploadURL"`
	Seed          int64  `yaml:"Seed"`
}

func main() {
	var g Gui
	g.username = getUsername()
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data/gui"
		// Initialize the watcher with the current timestamps of files, so
		// that the first check in Update() doesn't reload everything.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadConfig()
	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	switch g.StartState {
	case "Playback":
		g.state = Playback
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	case "DebugCrash":
		g.state = DebugCrash
		// Don't crash when we are debugging the crash. This is useful if the
		// crash was caused by one of my asserts: the World can execute the
		// step with the bug and I can see the results visually.
		CheckCrashes = false
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	case "Play":
		g.state = PlayScreen
		seed := g.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.playthrough = NewPlaythrough(seed, g.params)
	default:
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.world = NewWorldFromPlaythrough(g.playthrough)
	g.clock = NewFrameClock(TPS)

	// The last input caused the crash, so run the whole playthrough except the
	// last input. Then the crash can be triggered by stepping manually.
	if g.state == DebugCrash {
		g.frameIdx = max(int64(len(g.playthrough.History))-1, 0)
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	}

	// A channel size of 10 means the channel will buffer 10 playthroughs
	// before it is full and it blocks. A round ends the program so in
	// practice there is only ever one.
	g.uploadChannel = make(chan Playthrough, 10)
	g.uploadDone = make(chan struct{})
	go UploadPlaythroughs(g.UploadURL, g.username, g.uploadChannel, g.uploadDone)

	log.Info("starting",
		"state", g.StartState,
		"seed", g.playthrough.Seed,
		"id", g.playthrough.Id,
		"autoplay", g.Autoplay,
		"catchFrames", g.params.CatchFrames)

	ebiten.SetTPS(TPS)
	ebiten.SetWindowClosingHandled(true)
	err := ebiten.RunGame(&g)

	close(g.uploadChannel)
	<-g.uploadDone
	Check(err)

	if g.state == PlayScreen && g.world.State == Terminated {
		fmt.Println(g.world.Summary())
	}
}

// HandlePanic is deferred by the ebiten.Game methods. When recording, the
// playthrough (including the input that caused the crash) is saved before
// the panic continues.
func (g *Gui) HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	log.Error("crashed", "err", r, "frame", g.frameIdx,
		"recording", g.RecordingFile)
	if g.state == PlayScreen && g.RecordToFile {
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}
	panic(r)
}

// UploadPlaythroughs uploads every playthrough received on the channel, until
// the channel is closed. Failed uploads are logged and dropped.
func UploadPlaythroughs(url string, user string, ch chan Playthrough,
	done chan struct{}) {
	defer close(done)
	for p := range ch {
		if url == "" {
			continue
		}
		if !UploadEnabled {
			log.Debug("upload skipped, built without http_enabled", "id", p.Id)
			continue
		}
		err := UploadPlaythroughHttp(url, user, p.ReleaseVersion,
			p.SimulationVersion, p.InputVersion, p.Id, p.Serialize())
		if err != nil {
			log.Warn("upload failed", "id", p.Id, "err", err)
			continue
		}
		log.Info("uploaded playthrough", "id", p.Id)
	}
}
