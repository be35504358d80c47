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

package debug

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/virtualgt/virtualgt/emulator/processor"
	"github.com/virtualgt/virtualgt/emulator/processor/cpu"
)

var (
	enableTrace bool
	breakList   string
)

func init() {
	flag.BoolVar(&enableTrace, "trace", false, "Trace executed instructions to the log")
	flag.StringVar(&breakList, "break", "", "Comma separated hex program addresses to break on")
}

// Enabled reports whether any debug option was requested on the command
// line.
func Enabled() bool {
	return enableTrace || breakList != ""
}

func MuteLogging(b bool) {
	if b {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(os.Stderr)
}

// Device traces and breaks on the instruction stream. The word sitting in
// the pipeline slot was fetched at the PC value of the previous cycle, so
// the device remembers it to attribute trace lines correctly.
type Device struct {
	p           processor.Processor
	breakpoints map[uint16]bool
	fetchPC     uint16

	stats       processor.Stats
	mhz         float64
	updateStats time.Time
}

func (m *Device) Install(p processor.Processor) error {
	m.p = p
	m.breakpoints = make(map[uint16]bool)
	if breakList == "" {
		return nil
	}
	for _, s := range strings.Split(breakList, ",") {
		addr, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "0x"), 16, 16)
		if err != nil {
			return fmt.Errorf("bad breakpoint %q: %w", s, err)
		}
		m.breakpoints[uint16(addr)] = true
	}
	return nil
}

func (m *Device) Name() string {
	return "Debugger"
}

func (m *Device) Reset() {
	m.fetchPC = 0
}

func (m *Device) Step(int) error {
	r := m.p.GetRegisters()

	if time.Since(m.updateStats) >= time.Second {
		m.stats = m.p.GetStats()
		m.mhz = float64(m.stats.NumTicks) / 1000000
		m.updateStats = time.Now()
	}

	if enableTrace {
		log.Printf("%04X  %-16s %v", m.fetchPC, cpu.Disassemble(r.IR, r.D), r)
	}
	if m.breakpoints[m.fetchPC] {
		log.Printf("breakpoint at 0x%04X: %v", m.fetchPC, r)
		log.Printf("%.2f MHz, rx %d, tx %d", m.mhz, m.stats.RX, m.stats.TX)
		m.p.Break()
	}

	m.fetchPC = r.PC
	return nil
}
