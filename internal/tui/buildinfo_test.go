package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInfo_Label(t *testing.T) {
	tests := []struct {
		name string
		info BuildInfo
		want string
	}{
		{name: "empty", info: BuildInfo{}, want: ""},
		{name: "version only", info: BuildInfo{Version: "v1.2.0"}, want: "v1.2.0"},
		{name: "short commit", info: BuildInfo{Version: "dev", Commit: "HEAD"}, want: "dev (HEAD)"},
		{name: "long commit", info: BuildInfo{Version: "v1.2.0", Commit: "0123456789abcdef"}, want: "v1.2.0 (0123456)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Label())
		})
	}
}
