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

package gamepad

import (
	"errors"
	"io"
	"sync/atomic"

	"github.com/virtualgt/virtualgt/emulator/memory"
	"github.com/virtualgt/virtualgt/emulator/processor"
)

// Button bits of the 74HC165 shift register, active low on the IN bus.
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

// Idle is the IN level with nothing pressed and no serial traffic.
const Idle byte = 0xFF

const MaxEvents = 64

// Keyboard characters are presented on IN the way a serial adapter does
// it: held for a couple of frames with an idle gap before the next one.
const (
	frameCycles    = 521 * 200
	charHoldCycles = 2 * frameCycles
	charGapCycles  = frameCycles / 2
)

// Device is the input latch. The host side presses/releases buttons and
// types characters from its event thread; the engine samples In between
// ticks. A single atomic cell is all the synchronization the handoff
// needs.
type Device struct {
	buttons uint32 // atomic; active-low button byte

	events chan byte

	// Engine-side serial state, only touched from Step and In.
	char byte
	hold int
	gap  int
}

func (m *Device) Install(p processor.Processor) error {
	atomic.StoreUint32(&m.buttons, uint32(Idle))
	m.events = make(chan byte, MaxEvents)
	return p.InstallIODevice(m, memory.PortInput)
}

func (m *Device) Name() string {
	return "Game Controller"
}

func (m *Device) Reset() {
	atomic.StoreUint32(&m.buttons, uint32(Idle))
	m.char = 0
	m.hold = 0
	m.gap = 0
	for {
		select {
		case <-m.events:
		default:
			return
		}
	}
}

func (m *Device) Step(cycles int) error {
	if m.hold > 0 {
		if m.hold -= cycles; m.hold <= 0 {
			m.char = 0
			m.gap = charGapCycles
		}
		return nil
	}
	if m.gap > 0 {
		m.gap -= cycles
		return nil
	}
	select {
	case m.char = <-m.events:
		m.hold = charHoldCycles
	default:
	}
	return nil
}

func (m *Device) In(port memory.Port) byte {
	if m.hold > 0 {
		return m.char
	}
	return byte(atomic.LoadUint32(&m.buttons))
}

func (m *Device) Out(port memory.Port, data byte) {
}

// Press pulls a button line low.
func (m *Device) Press(b Button) {
	v := atomic.LoadUint32(&m.buttons)
	atomic.StoreUint32(&m.buttons, v&^uint32(b))
}

// Release lets a button line float back high.
func (m *Device) Release(b Button) {
	v := atomic.LoadUint32(&m.buttons)
	atomic.StoreUint32(&m.buttons, v|uint32(b))
}

// Type queues one ASCII character for the serial keyboard protocol.
func (m *Device) Type(ch byte) error {
	select {
	case m.events <- ch:
		return nil
	default:
		return errors.New("event queue is full")
	}
}

func (m *Device) SaveState(w io.Writer) error {
	_, err := w.Write([]byte{byte(atomic.LoadUint32(&m.buttons))})
	return err
}

func (m *Device) LoadState(r io.Reader) error {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return err
	}
	atomic.StoreUint32(&m.buttons, uint32(b[0]))
	return nil
}
