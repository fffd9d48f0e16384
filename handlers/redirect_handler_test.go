package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClubCodeFromHost(t *testing.T) {
	h := &RedirectHandler{baseDomain: "naal.org.tr"}

	tests := []struct {
		host string
		want string
	}{
		{"chess.naal.org.tr", "chess"},
		{"Chess.naal.org.tr", "chess"},
		{"chess.naal.org.tr:8080", "chess"},
		{"naal.org.tr", ""},
		{"www.naal.org.tr", ""},
		{"panel.naal.org.tr", ""},
		{"a.b.naal.org.tr", ""},
		{"chess.baska.org", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, h.clubCodeFromHost(tt.host), tt.host)
	}
}
