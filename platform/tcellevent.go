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
	"os"
	"time"

	"github.com/gdamore/tcell"
	"github.com/virtualgt/virtualgt/platform/dialog"
)

// Terminal cells pack two pixels with the upper half block rune. The
// 640x480 raster is sampled down to 160x120, giving an 160x60 cell grid.
const (
	textColumns = 160
	textRows    = 60

	cellWidth  = 4
	cellHeight = 8
)

// The terminal delivers no key release events, so controller buttons are
// pulsed: pressed on the key event and released a beat later. Long enough
// for several input frames, short enough to feel instant.
const buttonPulse = time.Second / 10

func (p *tcellPlatform) initializeTcellEvents() error {
	go func() {
		s := p.screen
		for {
			ev := s.PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					dialog.Quit()
					go func() {
						time.Sleep(3 * time.Second)
						os.Exit(-1)
					}()
					return
				}
				p.tcellProcessKey(ev)
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventInterrupt:
				p.draw()
			}
		}
	}()
	return nil
}

func buttonFromTcellKey(ev *tcell.EventKey) Button {
	switch ev.Key() {
	case tcell.KeyUp:
		return ButtonUp
	case tcell.KeyDown:
		return ButtonDown
	case tcell.KeyLeft:
		return ButtonLeft
	case tcell.KeyRight:
		return ButtonRight
	case tcell.KeyEnter:
		return ButtonStart
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ButtonSelect
	case tcell.KeyTab:
		return ButtonB
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return ButtonA
		}
	}
	return 0
}

func (p *tcellPlatform) tcellProcessKey(ev *tcell.EventKey) {
	p.Lock()
	joystick, keyboard := p.joystickHandler, p.keyboardHandler
	p.Unlock()

	if ev.Key() == tcell.KeyF12 {
		dialog.RequestRestart()
		return
	}

	if btn := buttonFromTcellKey(ev); btn != 0 {
		if joystick != nil {
			joystick(btn, true)
			time.AfterFunc(buttonPulse, func() {
				joystick(btn, false)
			})
		}
		return
	}

	if keyboard == nil {
		return
	}
	if ev.Key() == tcell.KeyDelete {
		keyboard(0x7F)
		return
	}
	if r := ev.Rune(); ev.Key() == tcell.KeyRune && r > ' ' && r <= '~' {
		keyboard(byte(r))
	}
}

func (p *tcellPlatform) draw() {
	s := p.screen

	p.Lock()
	defer p.Unlock()
	if len(p.frame) < 640*480*4 {
		return
	}

	for cy := 0; cy < textRows; cy++ {
		for cx := 0; cx < textColumns; cx++ {
			upper := p.sample(cx*cellWidth, cy*cellHeight)
			lower := p.sample(cx*cellWidth, cy*cellHeight+cellHeight/2)
			st := tcell.StyleDefault.Foreground(upper).Background(lower)
			s.SetContent(cx, cy, '▀', nil, st)
		}
	}
	s.Show()
}

func (p *tcellPlatform) sample(x, y int) tcell.Color {
	i := (y*640 + x) * 4
	return tcell.NewRGBColor(int32(p.frame[i]), int32(p.frame[i+1]), int32(p.frame[i+2]))
}
