package main

import "io/fs"

// FS is what asset and config loading read from. embed.FS, os.DirFS() and
// fstest.MapFS all satisfy it, so the same loading code works for the
// released executable, for developer mode and for tests.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}
