package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/inkline/pkg/color"
)

func TestDownsampleKeepsRepresentable(t *testing.T) {
	t.Run("default is representable everywhere", func(t *testing.T) {
		for _, sys := range []color.System{color.NoColor, color.Standard, color.EightBit, color.TrueColor} {
			assert.Equal(t, color.Default, color.Downsample(color.Default, sys))
		}
	})

	t.Run("named colors survive standard and above", func(t *testing.T) {
		assert.Equal(t, color.Red, color.Downsample(color.Red, color.Standard))
		assert.Equal(t, color.Red, color.Downsample(color.Red, color.EightBit))
		assert.Equal(t, color.Red, color.Downsample(color.Red, color.TrueColor))
	})

	t.Run("indexed colors survive eight-bit and above", func(t *testing.T) {
		assert.Equal(t, color.Indexed(196), color.Downsample(color.Indexed(196), color.EightBit))
		assert.Equal(t, color.Indexed(196), color.Downsample(color.Indexed(196), color.TrueColor))
	})

	t.Run("rgb survives true color", func(t *testing.T) {
		c := color.RGB(1, 2, 3)
		assert.Equal(t, c, color.Downsample(c, color.TrueColor))
	})
}

func TestDownsampleToStandard(t *testing.T) {
	t.Run("pure red maps to bright red", func(t *testing.T) {
		// (255,0,0) is an exact member of the 16-color palette: index 9.
		assert.Equal(t, color.BrightRed, color.Downsample(color.RGB(255, 0, 0), color.Standard))
	})

	t.Run("dark red maps to red", func(t *testing.T) {
		assert.Equal(t, color.Red, color.Downsample(color.RGB(128, 0, 0), color.Standard))
		assert.Equal(t, color.Red, color.Downsample(color.RGB(140, 10, 10), color.Standard))
	})

	t.Run("near-black maps to black", func(t *testing.T) {
		assert.Equal(t, color.Black, color.Downsample(color.RGB(10, 10, 10), color.Standard))
	})

	t.Run("near-white maps to bright white", func(t *testing.T) {
		assert.Equal(t, color.BrightWhite, color.Downsample(color.RGB(250, 250, 250), color.Standard))
	})

	t.Run("exact ties go to the lowest index", func(t *testing.T) {
		// (64,0,0) is equally far from black (0,0,0) and red (128,0,0).
		assert.Equal(t, color.Black, color.Downsample(color.RGB(64, 0, 0), color.Standard))
		// (64,64,0) ties black, red, green and yellow at once.
		assert.Equal(t, color.Black, color.Downsample(color.RGB(64, 64, 0), color.Standard))
	})

	t.Run("low indexed passes through by index", func(t *testing.T) {
		assert.Equal(t, color.Magenta, color.Downsample(color.Indexed(5), color.Standard))
	})

	t.Run("high indexed resolves through the palette", func(t *testing.T) {
		// 196 resolves to (255,0,0), whose nearest standard color is
		// bright red.
		assert.Equal(t, color.BrightRed, color.Downsample(color.Indexed(196), color.Standard))
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, c := range []color.Color{
			color.RGB(37, 121, 200),
			color.RGB(255, 0, 0),
			color.Indexed(100),
			color.BrightCyan,
		} {
			once := color.Downsample(c, color.Standard)
			assert.Equal(t, once, color.Downsample(once, color.Standard), "color %v", c)
		}
	})
}

func TestDownsampleToEightBit(t *testing.T) {
	t.Run("cube corners map exactly", func(t *testing.T) {
		assert.Equal(t, color.Indexed(16), color.Downsample(color.RGB(0, 0, 0), color.EightBit))
		assert.Equal(t, color.Indexed(231), color.Downsample(color.RGB(255, 255, 255), color.EightBit))
		assert.Equal(t, color.Indexed(196), color.Downsample(color.RGB(255, 0, 0), color.EightBit))
		assert.Equal(t, color.Indexed(46), color.Downsample(color.RGB(0, 255, 0), color.EightBit))
		assert.Equal(t, color.Indexed(21), color.Downsample(color.RGB(0, 0, 255), color.EightBit))
	})

	t.Run("grays prefer the grayscale ramp", func(t *testing.T) {
		// 138 and 8 sit exactly on ramp entries, closer than any cube
		// level, so the ramp wins.
		assert.Equal(t, color.Indexed(245), color.Downsample(color.RGB(138, 138, 138), color.EightBit))
		assert.Equal(t, color.Indexed(232), color.Downsample(color.RGB(8, 8, 8), color.EightBit))
	})

	t.Run("saturated colors use the cube", func(t *testing.T) {
		got := color.Downsample(color.RGB(250, 100, 25), color.EightBit)
		assert.Equal(t, color.KindIndexed, got.Kind())
		assert.GreaterOrEqual(t, got.Index(), uint8(16))
		assert.Less(t, got.Index(), uint8(232))
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, c := range []color.Color{
			color.RGB(37, 121, 200),
			color.RGB(128, 128, 128),
			color.RGB(0, 0, 0),
		} {
			once := color.Downsample(c, color.EightBit)
			assert.Equal(t, once, color.Downsample(once, color.EightBit), "color %v", c)
		}
	})
}

func TestDownsampleToNoColor(t *testing.T) {
	for _, c := range []color.Color{
		color.Red, color.Indexed(200), color.RGB(1, 2, 3),
	} {
		assert.Equal(t, color.Default, color.Downsample(c, color.NoColor))
	}
}
