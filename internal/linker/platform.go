package linker

import (
	"runtime"
	"strings"
)

// Platform is an operating system name as printed by `uname -s`.
type Platform string

const (
	Darwin Platform = "Darwin"
	Linux  Platform = "Linux"
)

// CurrentPlatform maps runtime.GOOS onto the uname spelling.
// Any other OS is returned as-is, so all platform-restricted files are skipped there.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return Darwin
	case "linux":
		return Linux
	default:
		return Platform(runtime.GOOS)
	}
}

// Tag records which platforms a managed file is restricted to.
type Tag uint8

const (
	TagDarwin Tag = 1 << iota
	TagLinux
)

// TagAny carries no restriction.
const TagAny Tag = 0

// Filename markers that restrict a file to one platform.
const (
	markerMac   = "_mac"
	markerLinux = "_linux"
)

// TagOf classifies a file name by the platform markers it contains.
// A name carrying both markers gets both restrictions.
func TagOf(name string) Tag {
	tag := TagAny
	if strings.Contains(name, markerMac) {
		tag |= TagDarwin
	}
	if strings.Contains(name, markerLinux) {
		tag |= TagLinux
	}
	return tag
}

// Allows reports whether a file with this tag should be linked on p.
func (t Tag) Allows(p Platform) bool {
	if t&TagDarwin != 0 && p != Darwin {
		return false
	}
	if t&TagLinux != 0 && p != Linux {
		return false
	}
	return true
}

func (t Tag) String() string {
	switch t {
	case TagAny:
		return "any"
	case TagDarwin:
		return "darwin"
	case TagLinux:
		return "linux"
	default:
		return "darwin+linux"
	}
}
