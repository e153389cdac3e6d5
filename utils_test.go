package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestFrameFiles_SortedByName(t *testing.T) {
	fsys := fstest.MapFS{
		"anim/10.png":      {Data: pngBytes(t, 2, 2)},
		"anim/02.png":      {Data: pngBytes(t, 2, 2)},
		"anim/01.png":      {Data: pngBytes(t, 2, 2)},
		"anim/notes.txt":   {Data: []byte("not a frame")},
		"anim/sub/03.png":  {Data: pngBytes(t, 2, 2)},
		"other/ignore.png": {Data: pngBytes(t, 2, 2)},
	}
	files, err := FrameFiles(fsys, "anim")
	require.NoError(t, err)
	assert.Equal(t, []string{"anim/01.png", "anim/02.png", "anim/10.png"}, files)
}

func TestFrameFiles_MissingFolderIsNamed(t *testing.T) {
	fsys := fstest.MapFS{"anim/readme.txt": {Data: []byte("x")}}

	_, err := FrameFiles(fsys, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"missing"`)

	_, err = FrameFiles(fsys, "anim")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"anim"`)
}

func TestDecodeImage(t *testing.T) {
	fsys := fstest.MapFS{
		"ball.png":   {Data: pngBytes(t, 12, 7)},
		"broken.png": {Data: []byte("definitely not a png")},
	}

	img, err := DecodeImage(fsys, "ball.png")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(12, 7), img.Bounds().Size())

	_, err = DecodeImage(fsys, "bucket.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing asset "bucket.png"`)

	_, err = DecodeImage(fsys, "broken.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"broken.png"`)
}

func TestEmbeddedAssetsMatchDefaultParams(t *testing.T) {
	p := DefaultParams()
	sizes := map[string]Pt{
		"data/gui/ball.png":       p.BenignSize,
		"data/gui/spiky-ball.png": p.HazardSize,
		"data/gui/bucket.png":     p.BucketSize,
		"data/gui/background.png": {p.ScreenWidth, p.ScreenHeight},
	}
	for name, size := range sizes {
		img, err := DecodeImage(&embeddedFiles, name)
		require.NoError(t, err)
		sz := img.Bounds().Size()
		assert.Equal(t, size, Pt{int64(sz.X), int64(sz.Y)}, name)
	}

	files, err := FrameFiles(&embeddedFiles, "data/gui/catch")
	require.NoError(t, err)
	assert.Len(t, files, int(p.CatchFrames))
}

func TestLoadYAML_Config(t *testing.T) {
	fsys := fstest.MapFS{
		"config.yaml": {Data: []byte(
			"StartState: Playback\n" +
				"PlaybackFile: some.catch\n" +
				"RecordToFile: true\n" +
				"Autoplay: true\n" +
				"Seed: 42\n")},
	}
	var c Config
	LoadYAML(fsys, "config.yaml", &c)
	assert.Equal(t, Config{
		StartState:   "Playback",
		PlaybackFile: "some.catch",
		RecordToFile: true,
		Autoplay:     true,
		Seed:         42,
	}, c)

	var embedded Config
	LoadYAML(&embeddedFiles, "data/config.yaml", &embedded)
	assert.Equal(t, "Play", embedded.StartState)
	assert.False(t, embedded.Autoplay)
}

func TestZip(t *testing.T) {
	data := []byte("some bytes that go into a zip and come back out")
	assert.Equal(t, data, Unzip(Zip(data)))
}
