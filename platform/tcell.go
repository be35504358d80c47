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
	"log"
	"sync"

	"github.com/gdamore/tcell"
)

type tcellPlatform struct {
	sync.Mutex
	fileSystem

	screen tcell.Screen
	frame  []byte

	audio audioOutput

	joystickHandler func(Button, bool)
	keyboardHandler func(byte)
}

var tcellPlatformInstance tcellPlatform

func tcellStart(mainLoop func(Platform), configs ...Config) {
	p := &tcellPlatformInstance
	p.fileSystem = newFileSystem()

	for _, cfg := range configs {
		if err := cfg(p); err != nil {
			log.Fatal(err)
		}
	}

	// The screen owns the terminal from here on.
	log.SetOutput(io.Discard)

	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	var err error
	if p.screen, err = tcell.NewScreen(); err != nil {
		log.Fatal(err)
	}

	Instance = p
	s := p.screen

	if err = s.Init(); err != nil {
		log.Fatal(err)
	}
	defer s.Fini()

	s.HideCursor()
	s.DisableMouse()
	s.Clear()

	if err := p.initializeTcellEvents(); err != nil {
		log.Fatal(err)
	}
	mainLoop(Instance)

	if p.audio != nil {
		p.audio.Close()
	}
}

func (p *tcellPlatform) HasAudio() bool {
	return p.audio != nil
}

func (p *tcellPlatform) RenderGraphics(backBuffer []byte) {
	p.Lock()
	if p.frame == nil {
		p.frame = make([]byte, len(backBuffer))
	}
	copy(p.frame, backBuffer)
	p.Unlock()
	p.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (p *tcellPlatform) SetTitle(title string) {
}

func (p *tcellPlatform) QueueAudio(soundBuffer []byte) {
	if p.audio != nil {
		p.audio.QueueAudio(soundBuffer)
	}
}

func (p *tcellPlatform) AudioSpec() AudioSpec {
	if p.audio == nil {
		return AudioSpec{}
	}
	return p.audio.Spec()
}

func (p *tcellPlatform) EnableAudio(b bool) {
	if p.audio != nil {
		p.audio.Enable(b)
	}
}

func (p *tcellPlatform) SetJoystickHandler(h func(Button, bool)) {
	p.Lock()
	p.joystickHandler = h
	p.Unlock()
}

func (p *tcellPlatform) SetKeyboardHandler(h func(byte)) {
	p.Lock()
	p.keyboardHandler = h
	p.Unlock()
}
