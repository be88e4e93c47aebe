// Package mcroot finds the directory the vanilla launcher installs Minecraft into
package mcroot

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"unicode/utf8"

	"github.com/minepkg/mcassets/internals/merrors"
)

// Platform is one of the operating system families with a known install location
type Platform int

const (
	Linux Platform = iota
	Windows
	MacOS
)

func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case MacOS:
		return "macos"
	default:
		return "linux"
	}
}

// Layout describes where a platform keeps the Minecraft root
type Layout struct {
	// EnvVar is the variable used as the base path
	EnvVar string
	// Suffix gets joined onto the value of EnvVar
	Suffix []string
}

var layouts = map[Platform]Layout{
	Windows: {EnvVar: "APPDATA", Suffix: []string{".minecraft"}},
	Linux:   {EnvVar: "HOME", Suffix: []string{".minecraft"}},
	MacOS:   {EnvVar: "HOME", Suffix: []string{"Library", "Application Support", "cminecraft"}},
}

// Layout returns the root layout for this platform
func (p Platform) Layout() Layout {
	if l, ok := layouts[p]; ok {
		return l
	}
	return layouts[Linux]
}

// Current returns the platform this binary was built for
func Current() Platform {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "darwin": // macOS
		return MacOS
	default:
		return Linux
	}
}

// LookupFunc looks up an environment variable. os.LookupEnv is one
type LookupFunc func(key string) (string, bool)

// ErrEnvNotSet is wrapped when the required variable is missing
var ErrEnvNotSet = errors.New("environment variable not set")

// ErrEnvNotText is wrapped when the variable is not valid UTF-8
var ErrEnvNotText = errors.New("environment variable is not valid unicode")

// Resolve returns the Minecraft root for platform p, reading the environment through lookup.
// It does not check that the directory exists
func Resolve(p Platform, lookup LookupFunc) (string, error) {
	layout := p.Layout()

	value, ok := lookup(layout.EnvVar)
	if !ok {
		return "", merrors.New(merrors.KindEnv, "lookup", layout.EnvVar, ErrEnvNotSet)
	}
	if !utf8.ValidString(value) {
		return "", merrors.New(merrors.KindEnv, "lookup", layout.EnvVar, ErrEnvNotText)
	}

	parts := append([]string{value}, layout.Suffix...)
	return filepath.Join(parts...), nil
}

// ResolveRoot returns the Minecraft root of the current platform using the process environment
func ResolveRoot() (string, error) {
	return Resolve(Current(), os.LookupEnv)
}

// VersionsDir returns the path to the versions directory
func VersionsDir(root string) string {
	return filepath.Join(root, "versions")
}

// VersionArchive returns the path of the client jar for version
func VersionArchive(root string, version string) string {
	return filepath.Join(VersionsDir(root), version, version+".jar")
}
