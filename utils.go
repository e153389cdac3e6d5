package main

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/hajimehoshi/ebiten/v2"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

// DecodeImage reads an image file. The error names the file, so that a
// missing asset is obvious from the crash message alone.
func DecodeImage(fsys FS, name string) (image.Image, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("missing asset %q: %w", name, err)
	}
	defer CloseFile(file)

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("invalid image %q: %w", name, err)
	}
	return img, nil
}

func LoadImage(fsys FS, name string) *ebiten.Image {
	img, err := DecodeImage(fsys, name)
	Check(err)
	if err != nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

// ImageSize returns the size in pixels of an image loaded with LoadImage.
func ImageSize(img *ebiten.Image) Pt {
	sz := img.Bounds().Size()
	return Pt{int64(sz.X), int64(sz.Y)}
}

// FrameFiles lists the .png files in dir, sorted by name. The order of the
// files is the order of the frames in an animation.
func FrameFiles(fsys FS, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("missing asset folder %q: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		files = append(files, dir+"/"+entry.Name())
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("asset folder %q has no .png files", dir)
	}
	slices.Sort(files)
	return files, nil
}

func LoadYAML(fsys FS, filename string, e any) {
	data, err := fsys.ReadFile(filename)
	Check(err)
	if err != nil {
		return
	}
	err = yaml.Unmarshal(data, e)
	Check(err)
}

func CloseFile(f fs.File) {
	Check(f.Close())
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		CloseFile(file)
		return true
	} else {
		return false
	}
}

// Serialize writes fixed-size data in little endian format. It is meant for
// int64, bool, Pt and structs made only of those.
func Serialize(w io.Writer, data any) {
	err := binary.Write(w, binary.LittleEndian, data)
	Check(err)
}

func Deserialize(r io.Reader, data any) {
	err := binary.Read(r, binary.LittleEndian, data)
	Check(err)
}

func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

func DeserializeSlice[T any](r io.Reader, s *[]T) {
	var n int64
	Deserialize(r, &n)
	if n < 0 {
		Check(fmt.Errorf("invalid slice length: %d", n))
		return
	}
	*s = make([]T, n)
	Deserialize(r, *s)
}

// zipEntryName is the name of the single file inside a zipped buffer.
const zipEntryName = "data"

func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	zipWriter := zip.NewWriter(buf)
	writer, err := zipWriter.Create(zipEntryName)
	Check(err)
	_, err = writer.Write(data)
	Check(err)
	Check(zipWriter.Close())
	return buf.Bytes()
}

func Unzip(data []byte) []byte {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	Check(err)
	if len(zipReader.File) != 1 || zipReader.File[0].Name != zipEntryName {
		Check(fmt.Errorf("expected a zip with a single %q entry", zipEntryName))
		return nil
	}
	file, err := zipReader.File[0].Open()
	Check(err)
	defer func(file io.ReadCloser) { Check(file.Close()) }(file)
	unzipped, err := io.ReadAll(file)
	Check(err)
	return unzipped
}

type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
