package globals

import (
	"github.com/minepkg/mcassets/internals/cmdlog"
)

var (
	// Logger is the console logger shared by all commands
	Logger = cmdlog.New()
)
