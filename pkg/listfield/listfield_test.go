package listfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	// Virgül içermeyen elemanlar için join/split kayıpsız olmalı.
	owners := []string{"A", "B"}
	assert.Equal(t, owners, Split(Join(owners)))
}

func TestJoinFiltersBlankEntries(t *testing.T) {
	assert.Equal(t, "Ali Veli, Ayşe", Join([]string{"Ali Veli", "", "  ", "Ayşe"}))
	assert.Equal(t, "", Join(nil))
	assert.Equal(t, "", Join([]string{"", "   "}))
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"tech_club", "naal_tech"}, Split("tech_club, naal_tech"))
	assert.Equal(t, []string{"a", "b"}, Split(" a ,, b , "))
	assert.Nil(t, Split(""))
	assert.Nil(t, Split("  "))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"Ali Veli", "Ayşe"}, SplitLines("Ali Veli\r\n\r\n  Ayşe  \n"))
	assert.Equal(t, []string{"tech_club"}, SplitLines("tech_club"))
	assert.Nil(t, SplitLines(""))
	assert.Nil(t, SplitLines(" \n \r\n "))
}

func TestEmbeddedCommaIsLossy(t *testing.T) {
	// Bilinen sınır: elemanın içindeki virgül ayırıcıdan ayırt edilemez.
	// "A,B" tek eleman olarak kaydedilir ama iki eleman olarak geri okunur.
	got := Split(Join([]string{"A,B"}))
	assert.Equal(t, []string{"A", "B"}, got)
}
