//go:build !sdl
// +build !sdl

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
	"errors"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	audioFrequency  = 31250
	audioBufferSize = 1024

	// Cap on queued samples when the consumer stalls, about two seconds.
	maxQueuedAudio = 1 << 16
)

// otoOutput plays the unsigned 8-bit mono sample stream. The player pulls
// through Read; when the queue runs dry the last sample level is repeated
// so underruns stay silent instead of clicking.
type otoOutput struct {
	mu      sync.Mutex
	ctx     *oto.Context
	player  *oto.Player
	buf     []byte
	last    byte
	enabled bool
}

func newOtoOutput() (*otoOutput, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   audioFrequency,
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
	})
	if err != nil {
		return nil, err
	}

	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		return nil, errors.New("timeout waiting for audio device")
	}

	o := &otoOutput{ctx: ctx, last: 0x80}
	o.player = ctx.NewPlayer(o)
	o.player.SetBufferSize(audioBufferSize)
	return o, nil
}

func (o *otoOutput) Read(p []byte) (int, error) {
	o.mu.Lock()
	n := copy(p, o.buf)
	o.buf = o.buf[n:]
	if n > 0 {
		o.last = p[n-1]
	}
	o.mu.Unlock()

	for i := n; i < len(p); i++ {
		p[i] = o.last
	}
	return len(p), nil
}

func (o *otoOutput) QueueAudio(soundBuffer []byte) {
	o.mu.Lock()
	if len(o.buf) < maxQueuedAudio {
		o.buf = append(o.buf, soundBuffer...)
	}
	o.mu.Unlock()
}

func (o *otoOutput) Enable(b bool) {
	if b == o.enabled {
		return
	}
	o.enabled = b
	if b {
		o.player.Play()
		return
	}
	o.player.Pause()
}

func (o *otoOutput) Spec() AudioSpec {
	return AudioSpec{
		Freq:     audioFrequency,
		Channels: 1,
		Samples:  audioBufferSize,
	}
}

func (o *otoOutput) Close() error {
	return o.player.Close()
}
