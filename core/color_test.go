package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialColors(t *testing.T) {
	assert.Equal(t, "#88ccff", ParticleColor.Hex())
	assert.Equal(t, "#404040", AmbientColor.Hex())
	assert.Equal(t, "#333333", HoverEmissive.Hex())
	assert.Equal(t, "#000000", NoEmissive.Hex())
}

func TestMustHexPanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { mustHex("88ccff") })
}
