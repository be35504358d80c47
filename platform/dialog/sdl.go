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

package dialog

import (
	"sync/atomic"

	"github.com/veandco/go-sdl2/sdl"
)

func ShowErrorMessage(msg string) error {
	return sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_ERROR, "Error", msg, nil)
}

func AskToQuit() bool {
	buttons := []sdl.MessageBoxButtonData{
		{
			Flags:    sdl.MESSAGEBOX_BUTTON_ESCAPEKEY_DEFAULT,
			ButtonID: 0,
			Text:     "Cancel",
		},
		{
			Flags:    sdl.MESSAGEBOX_BUTTON_RETURNKEY_DEFAULT,
			ButtonID: 1,
			Text:     "Quit",
		},
	}

	mbd := sdl.MessageBoxData{
		Flags:   sdl.MESSAGEBOX_INFORMATION,
		Title:   "Quit",
		Message: "Do you want to quit the emulator?",
		Buttons: buttons,
	}

	if id, err := sdl.ShowMessageBox(&mbd); err == nil && id == 1 {
		atomic.StoreInt32(&quitFlag, 1)
		return true
	}
	return false
}
