/*
Copyright (c) 2025-2026 The VirtualGT Authors

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

package platform

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

type internalPlatform interface{}

type Config func(internalPlatform) error

type AudioSpec struct {
	Freq,
	Channels,
	Samples int
}

type File interface {
	io.ReadWriteSeeker
	io.ReaderAt
	io.Closer
}

type FileSystem interface {
	Create(name string) (File, error)
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
}

// Button lines of the game controller. The bit layout matches the input
// shift register so the emulator can forward these untranslated.
type Button byte

const (
	ButtonRight  Button = 0x01
	ButtonLeft   Button = 0x02
	ButtonDown   Button = 0x04
	ButtonUp     Button = 0x08
	ButtonStart  Button = 0x10
	ButtonSelect Button = 0x20
	ButtonB      Button = 0x40
	ButtonA      Button = 0x80
)

type Platform interface {
	FileSystem

	HasAudio() bool
	RenderGraphics(backBuffer []byte)
	SetTitle(title string)
	QueueAudio(soundBuffer []byte)
	AudioSpec() AudioSpec
	EnableAudio(b bool)
	SetJoystickHandler(h func(Button, bool))
	SetKeyboardHandler(h func(byte))
}

var Instance Platform

// audioOutput is the host side sound sink. The terminal front end feeds
// one when audio is configured, otherwise the machine runs silent.
type audioOutput interface {
	QueueAudio(soundBuffer []byte)
	Enable(b bool)
	Spec() AudioSpec
	Close() error
}

type fileSystem struct {
	fs afero.Fs
}

func newFileSystem() fileSystem {
	return fileSystem{fs: afero.NewOsFs()}
}

func (f *fileSystem) Create(name string) (File, error) {
	fp, err := f.fs.Create(name)
	if err != nil {
		return nil, err
	}
	return fp, nil
}

func (f *fileSystem) Open(name string) (File, error) {
	fp, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	return fp, nil
}

func (f *fileSystem) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	fp, err := f.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return fp, nil
}
