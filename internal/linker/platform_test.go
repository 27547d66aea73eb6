package linker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagOf(t *testing.T) {
	tests := []struct {
		name string
		file string
		want Tag
	}{
		{name: "plain", file: "bashrc", want: TagAny},
		{name: "mac_suffix", file: "vimrc_mac", want: TagDarwin},
		{name: "linux_suffix", file: "vimrc_linux", want: TagLinux},
		{name: "marker_in_middle", file: "tmux_mac.conf", want: TagDarwin},
		{name: "both_markers", file: "profile_mac_linux", want: TagDarwin | TagLinux},
		{name: "no_underscore", file: "macrc", want: TagAny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TagOf(tt.file))
		})
	}
}

func TestTagAllows(t *testing.T) {
	assert.True(t, TagAny.Allows(Linux))
	assert.True(t, TagAny.Allows(Darwin))
	assert.True(t, TagAny.Allows(Platform("FreeBSD")))

	assert.True(t, TagDarwin.Allows(Darwin))
	assert.False(t, TagDarwin.Allows(Linux))

	assert.True(t, TagLinux.Allows(Linux))
	assert.False(t, TagLinux.Allows(Darwin))
	assert.False(t, TagLinux.Allows(Platform("FreeBSD")))

	both := TagDarwin | TagLinux
	assert.False(t, both.Allows(Darwin))
	assert.False(t, both.Allows(Linux))
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "any", TagAny.String())
	assert.Equal(t, "darwin", TagDarwin.String())
	assert.Equal(t, "linux", TagLinux.String())
	assert.Equal(t, "darwin+linux", (TagDarwin | TagLinux).String())
}
