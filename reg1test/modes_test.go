package reg1test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeCode(t *testing.T) {
	tests := []struct {
		mode string
		want byte
	}{
		{"SSB", '1'},
		{"CW", '2'},
		{"AM", '5'},
		{"FM", '6'},
		{"RTTY", '7'},
		{"SSTV", '8'},
		{"ATV", '9'},
		{" CW ", '2'},
		{"cw", '0'},
		{"FT8", '0'},
		{"USB", '0'},
		{"", '0'},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(ModeCode(tt.mode)), "ModeCode(%q)", tt.mode)
	}
}
