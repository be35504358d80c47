//go:build sdl
// +build sdl

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
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/virtualgt/virtualgt/platform/dialog"
)

// buttonFromKey maps host keys to controller lines. Unmapped printable
// keys go to the serial keyboard instead.
func buttonFromKey(sym sdl.Keycode) Button {
	switch sym {
	case sdl.K_UP:
		return ButtonUp
	case sdl.K_DOWN:
		return ButtonDown
	case sdl.K_LEFT:
		return ButtonLeft
	case sdl.K_RIGHT:
		return ButtonRight
	case sdl.K_RETURN:
		return ButtonStart
	case sdl.K_BACKSPACE:
		return ButtonSelect
	case sdl.K_SPACE:
		return ButtonA
	case sdl.K_TAB:
		return ButtonB
	}
	return 0
}

func (p *sdlPlatform) sdlProcessKey(ev *sdl.KeyboardEvent) {
	sym := ev.Keysym.Sym
	pressed := ev.Type == sdl.KEYDOWN

	if sym == sdl.K_F12 {
		if pressed && ev.Repeat == 0 {
			dialog.RequestRestart()
		}
		return
	}

	if btn := buttonFromKey(sym); btn != 0 {
		if p.joystickHandler != nil && ev.Repeat == 0 {
			p.joystickHandler(btn, pressed)
		}
		return
	}

	if !pressed || p.keyboardHandler == nil {
		return
	}
	if sym == sdl.K_DELETE {
		p.keyboardHandler(0x7F)
		return
	}
	if sym > sdl.K_SPACE && sym <= sdl.Keycode('~') {
		p.keyboardHandler(byte(sym))
	}
}

func (p *sdlPlatform) initializeSDLEvents() error {
	var err error
	sdl.Do(func() {
		err = sdl.InitSubSystem(sdl.INIT_EVENTS)
	})
	if err != nil {
		return err
	}

	p.quitChan = make(chan struct{})
	registerCleanup(p, shutdownSDLEvents)

	go func() {
		ticker := time.NewTicker(time.Second / 30)
		defer ticker.Stop()

		for {
			select {
			case <-p.quitChan:
				close(p.quitChan)
				return
			case <-ticker.C:
				sdl.Do(func() {
					for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
						switch ev := event.(type) {
						case *sdl.QuitEvent:
							dialog.AskToQuit()
						case *sdl.KeyboardEvent:
							p.sdlProcessKey(ev)
						}
					}
				})
			}
		}
	}()
	return nil
}

func shutdownSDLEvents(p *sdlPlatform) {
	p.quitChan <- struct{}{}
	<-p.quitChan
}
