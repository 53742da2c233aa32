package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue int
		want         int
	}{
		{name: "empty uses default", value: "", defaultValue: 10, want: 10},
		{name: "valid value", value: "25", defaultValue: 10, want: 25},
		{name: "zero is allowed", value: "0", defaultValue: 10, want: 0},
		{name: "negative uses default", value: "-5", defaultValue: 10, want: 10},
		{name: "garbage uses default", value: "abc", defaultValue: 10, want: 10},
		{name: "no upper bound", value: "100000", defaultValue: 10, want: 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInt(tt.value, tt.defaultValue))
		})
	}
}
