//go:build validator
// +build validator

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

package validator

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"os"
)

const Enabled = true

const (
	DefaultQueueSize  = 1024
	DefaultBufferSize = 1024 * 1024
)

var (
	outputFile string
	outputChan chan Event
	quitChan   chan struct{}
)

// Initialize opens the trace output. An empty name disables recording
// even in validator builds.
func Initialize(output string, queueSize, bufferSize int) {
	if outputFile = output; output == "" {
		return
	}

	outputChan = make(chan Event, queueSize)
	quitChan = make(chan struct{})

	fp, err := os.Create(outputFile)
	if err != nil {
		log.Panic(err)
	}

	go func() {
		var buffer bytes.Buffer

		defer fp.Close()
		defer func() { io.Copy(fp, &buffer); quitChan <- struct{}{} }()

		enc := json.NewEncoder(&buffer)

		for ev := range outputChan {
			if err := enc.Encode(ev); err != nil {
				log.Print(err)
				return
			}
			if buffer.Len() >= bufferSize {
				if _, err := io.Copy(fp, &buffer); err != nil {
					log.Print(err)
					return
				}
			}
		}
	}()
}

func Record(ev Event) {
	if outputChan == nil {
		return
	}
	outputChan <- ev
}

func Shutdown() {
	if outputChan == nil {
		return
	}
	close(outputChan)
	<-quitChan
	outputChan = nil
}
