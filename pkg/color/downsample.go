package color

// standardPalette holds the RGB resolution of the 16 standard colors.
// Values match the xterm defaults used by the reference renderer.
var standardPalette = [16][3]uint8{
	{0, 0, 0},       // black
	{128, 0, 0},     // red
	{0, 128, 0},     // green
	{128, 128, 0},   // yellow
	{0, 0, 128},     // blue
	{128, 0, 128},   // magenta
	{0, 128, 128},   // cyan
	{192, 192, 192}, // white
	{128, 128, 128}, // bright black
	{255, 0, 0},     // bright red
	{0, 255, 0},     // bright green
	{255, 255, 0},   // bright yellow
	{0, 0, 255},     // bright blue
	{255, 0, 255},   // bright magenta
	{0, 255, 255},   // bright cyan
	{255, 255, 255}, // bright white
}

// cubeLevels are the channel values of the 6x6x6 color cube (indices
// 16-231 of the 256-color palette).
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// paletteRGB returns the RGB resolution of a 256-color palette index.
func paletteRGB(index uint8) (r, g, b uint8) {
	switch {
	case index < 16:
		p := standardPalette[index]
		return p[0], p[1], p[2]
	case index < 232:
		// 16 + 36r + 6g + b
		i := index - 16
		return cubeLevels[i/36], cubeLevels[(i%36)/6], cubeLevels[i%6]
	default:
		// grayscale ramp
		v := (index-232)*10 + 8
		return v, v, v
	}
}

// native returns the lowest System able to represent the color unchanged.
func (c Color) native() System {
	switch c.kind {
	case KindDefault:
		return NoColor
	case KindNamed:
		return Standard
	case KindIndexed:
		return EightBit
	default:
		return TrueColor
	}
}

// Downsample maps a color to the nearest value representable under the
// target capability tier. Colors already representable are returned
// unchanged, so repeated downsampling to the same tier is idempotent.
// Downsampling never fails.
func Downsample(c Color, target System) Color {
	if target >= c.native() {
		return c
	}
	switch target {
	case NoColor:
		return Default
	case Standard:
		return toStandard(c)
	case EightBit:
		r, g, b := c.RGBValues()
		return toEightBit(r, g, b)
	}
	return c
}

// toStandard selects the nearest of the 16 standard colors by squared
// RGB distance, ties going to the lowest index.
func toStandard(c Color) Color {
	if c.kind == KindIndexed && c.index < 16 {
		return Named(c.index)
	}
	r, g, b := c.RGBValues()

	best := 0
	bestDist := sqDist(r, g, b, standardPalette[0][0], standardPalette[0][1], standardPalette[0][2])
	for i := 1; i < len(standardPalette); i++ {
		p := standardPalette[i]
		if d := sqDist(r, g, b, p[0], p[1], p[2]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return Named(uint8(best))
}

// toEightBit quantizes an RGB color into the 256-color palette, choosing
// whichever of the 6x6x6 cube point and the grayscale point is closer.
// Ties go to the cube, whose indices are lower.
func toEightBit(r, g, b uint8) Color {
	ri, rv := nearestCubeLevel(r)
	gi, gv := nearestCubeLevel(g)
	bi, bv := nearestCubeLevel(b)
	cubeDist := sqDist(r, g, b, rv, gv, bv)

	avg := (int(r) + int(g) + int(b)) / 3
	grayIdx := nearestGrayLevel(avg)
	grayVal := uint8(grayIdx*10 + 8)
	grayDist := sqDist(r, g, b, grayVal, grayVal, grayVal)

	if grayDist < cubeDist {
		return Indexed(uint8(232 + grayIdx))
	}
	return Indexed(uint8(16 + 36*ri + 6*gi + bi))
}

func nearestCubeLevel(v uint8) (index int, value uint8) {
	best := 0
	bestDiff := absDiff(v, cubeLevels[0])
	for i := 1; i < len(cubeLevels); i++ {
		if d := absDiff(v, cubeLevels[i]); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best, cubeLevels[best]
}

func nearestGrayLevel(avg int) int {
	idx := (avg - 8 + 5) / 10
	if idx < 0 {
		return 0
	}
	if idx > 23 {
		return 23
	}
	return idx
}

func sqDist(r, g, b, pr, pg, pb uint8) int {
	dr := int(r) - int(pr)
	dg := int(g) - int(pg)
	db := int(b) - int(pb)
	return dr*dr + dg*dg + db*db
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a) - int(b)
	}
	return int(b) - int(a)
}
