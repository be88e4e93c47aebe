package commands

import (
	"os"
	"runtime"
)

// EmojiEnabled can be turned off by the user (--no-color, CI)
var EmojiEnabled = true

var emojiSupport = detectEmojiSupport(runtime.GOOS, os.Getenv)

func detectEmojiSupport(goos string, getenv func(string) string) bool {
	if getenv("TERM") == "dumb" {
		return false
	}

	// check if we are running in the windows terminal
	// (windows terminal does not set this, but raw cmd or powershell do)
	if goos == "windows" && getenv("SESSIONNAME") != "" {
		return false
	}
	return true
}

// Emoji returns the given string (usually a emoji) if the current terminal
// (probably) supports it
func Emoji(e string) string {
	if emojiSupport && EmojiEnabled {
		return e
	}
	return ""
}
