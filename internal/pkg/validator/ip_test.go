package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPOrDefault(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.0.0.1", "10.0.0.1"},
		{" 10.0.0.1:8080 ", "10.0.0.1"},
		{"fe80::1%eth0", "fe80::1"},
		{"[::1]:443", "::1"},
		{"", "unknown"},
		{"not-an-ip", "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IPOrDefault(tt.in, "unknown"), tt.in)
	}
}
