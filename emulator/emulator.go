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

package emulator

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/virtualgt/virtualgt/emulator/peripheral"
	"github.com/virtualgt/virtualgt/emulator/peripheral/audio"
	"github.com/virtualgt/virtualgt/emulator/peripheral/debug"
	"github.com/virtualgt/virtualgt/emulator/peripheral/gamepad"
	"github.com/virtualgt/virtualgt/emulator/peripheral/ram"
	"github.com/virtualgt/virtualgt/emulator/peripheral/rom"
	"github.com/virtualgt/virtualgt/emulator/peripheral/video"
	"github.com/virtualgt/virtualgt/emulator/processor/cpu"
	"github.com/virtualgt/virtualgt/emulator/processor/validator"
	"github.com/virtualgt/virtualgt/platform"
	"github.com/virtualgt/virtualgt/platform/dialog"
)

var romImage = "ROMv6.rom"

var (
	clockMHz        float64
	garble, mute    bool
	wavCapture      string
	loadImage       string
	saveImage       string
	validatorOutput string
)

func init() {
	if p, ok := os.LookupEnv("VGT_DEFAULT_ROM_PATH"); ok {
		romImage = p
	}

	flag.StringVar(&romImage, "rom", romImage, "Path to ROM image")
	flag.Float64Var(&clockMHz, "clock", 6.25, "Clock frequency in MHz, 0 for free running")
	flag.BoolVar(&garble, "garble", false, "Scramble RAM at power-on like real hardware")
	flag.BoolVar(&mute, "mute", false, "Mute audio output")
	flag.StringVar(&wavCapture, "wav", "", "Record audio to WAV file")
	flag.StringVar(&loadImage, "load", "", "Restore machine state from file")
	flag.StringVar(&saveImage, "save", "", "Save machine state to file on exit")
	flag.StringVar(&validatorOutput, "validator", "", "Record the execution trace to file, requires a validator build")
}

// pauseOnBreak holds the machine while a breakpoint has it stopped. A
// restart request (F12) resumes execution without resetting.
func pauseOnBreak(c *cpu.CPU) {
	if !c.Debug {
		return
	}
	log.Printf("paused: %v", c.GetRegisters())

	for c.Debug && !dialog.ShutdownRequested() {
		if dialog.RestartRequested() {
			c.Debug = false
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func Start(p platform.Platform) {
	romFp, err := p.Open(romImage)
	if err != nil {
		dialog.ShowErrorMessage(err.Error())
		return
	}
	defer romFp.Close()

	vid := &video.Device{Renderer: p}
	aud := &audio.Device{}
	pad := &gamepad.Device{}

	if !mute && p.HasAudio() {
		aud.Output = p
	}

	if wavCapture != "" {
		fp, err := p.Create(wavCapture)
		if err != nil {
			dialog.ShowErrorMessage(err.Error())
			return
		}
		defer fp.Close()
		aud.StartCapture(fp)
	}

	peripherals := []peripheral.Peripheral{
		&ram.Device{Garble: garble},
		&rom.Device{
			RomName: "Gigatron ROM",
			Reader:  romFp,
		},
		vid,
		aud,
		pad,
	}
	if debug.Enabled() {
		peripherals = append(peripherals, &debug.Device{})
	}

	if validatorOutput != "" {
		validator.Initialize(validatorOutput, validator.DefaultQueueSize, validator.DefaultBufferSize)
		defer validator.Shutdown()
	}

	c, errs := cpu.NewCPU(peripherals)
	defer c.Close()

	if len(errs) > 0 {
		for _, err := range errs {
			dialog.ShowErrorMessage(err.Error())
		}
		return
	}

	p.SetJoystickHandler(func(b platform.Button, pressed bool) {
		if pressed {
			pad.Press(gamepad.Button(b))
			return
		}
		pad.Release(gamepad.Button(b))
	})
	p.SetKeyboardHandler(func(ch byte) {
		if err := pad.Type(ch); err != nil {
			log.Print(err)
		}
	})

	c.Reset()

	if loadImage != "" {
		fp, err := p.Open(loadImage)
		if err != nil {
			dialog.ShowErrorMessage(err.Error())
			return
		}
		err = c.LoadState(fp)
		fp.Close()
		if err != nil {
			dialog.ShowErrorMessage(err.Error())
			return
		}
	}

	p.EnableAudio(!mute && p.HasAudio())

	// The machine is paced one scanline at a time, 200 cycles per batch.
	var limitSpeed int64
	if clockMHz > 0 {
		limitSpeed = int64(float64(time.Second) * video.CyclesPerScanline / (clockMHz * 1000000))
	}

	var (
		lastUpdate = time.Now().UnixNano()
		lastCycles uint64
		lastFrames uint64
	)

	for !dialog.ShutdownRequested() {
		var batches int64
		t := time.Now().UnixNano()

		if dialog.RestartRequested() {
			c.Reset()
		}

	step:
		c.TickN(video.CyclesPerScanline)
		batches++

		pauseOnBreak(c)

		if n := time.Now().UnixNano(); n-lastUpdate >= int64(time.Second) {
			seconds := float64(n-lastUpdate) / float64(time.Second)
			cycles, frames := c.Cycles(), vid.Frames()
			p.SetTitle(fmt.Sprintf("VirtualGT - %.2f MHz, %d fps",
				float64(cycles-lastCycles)/(seconds*1000000), uint64(float64(frames-lastFrames)/seconds)))
			lastUpdate, lastCycles, lastFrames = n, cycles, frames

			// Nothing downstream consumes the raw signal here.
			vid.Drain()
		}

		if limitSpeed == 0 {
			continue
		}

	wait:
		if n := time.Now().UnixNano() - t; n <= 0 {
			runtime.Gosched()
			goto step
		} else if n < limitSpeed*batches {
			goto wait
		}
	}

	if saveImage != "" {
		fp, err := p.Create(saveImage)
		if err != nil {
			dialog.ShowErrorMessage(err.Error())
			return
		}
		err = c.SaveState(fp)
		fp.Close()
		if err != nil {
			dialog.ShowErrorMessage(err.Error())
		}
	}
}
