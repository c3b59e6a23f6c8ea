package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageBundle_CombinedText(t *testing.T) {
	b := NewPageBundle()
	b.AddSection("Homepage", "We make furniture.")
	b.AddSection("Contact", "Write to us.")

	got := b.CombinedText()
	assert.Equal(t, "\n--- Homepage ---\nWe make furniture.\n\n--- Contact ---\nWrite to us.\n", got)
}

func TestPageBundle_SkipsEmptySections(t *testing.T) {
	b := NewPageBundle()
	b.AddSection("Homepage", "  \n ")
	assert.True(t, b.Empty())
	assert.Equal(t, "", b.CombinedText())
}
