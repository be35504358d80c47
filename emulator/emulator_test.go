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
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/virtualgt/virtualgt/emulator/processor/cpu"
	"github.com/virtualgt/virtualgt/platform/dialog"
)

func TestPauseOnBreak(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	c, errs := cpu.NewCPU(nil)
	for _, err := range errs {
		t.Fatal(err)
	}
	defer c.Close()

	// Without the flag set this returns immediately.
	pauseOnBreak(c)

	c.Break()
	done := make(chan struct{})
	go func() {
		pauseOnBreak(c)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("breakpoint did not pause execution")
	case <-time.After(50 * time.Millisecond):
	}

	dialog.RequestRestart()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("restart request did not resume execution")
	}
	if c.Debug {
		t.Error("debug flag still set after resume")
	}
}
