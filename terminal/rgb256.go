package terminal

// xterm 256-color layout: 16 system colors, a 6x6x6 color cube at
// indices 16-231 (channel levels 0,95,135,175,215,255), and a 24-step
// gray ramp at 232-255 (levels 8,18,...,238).
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// nearestCube maps a 0-255 channel value to its closest cube level index.
var nearestCube [256]uint8

func init() {
	for v := 0; v < 256; v++ {
		best := 0
		for i := 1; i < 6; i++ {
			if dist(v, int(cubeLevels[i])) < dist(v, int(cubeLevels[best])) {
				best = i
			}
		}
		nearestCube[v] = uint8(best)
	}
}

func dist(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}

// RGBTo256 returns the xterm-256 palette index closest to the given
// channels. Near-gray inputs land on the gray ramp when it beats the
// color cube; everything else maps through the cube.
func RGBTo256(r, g, b uint8) uint8 {
	cr, cg, cb := nearestCube[r], nearestCube[g], nearestCube[b]
	cubeDist := dist(int(r), int(cubeLevels[cr])) +
		dist(int(g), int(cubeLevels[cg])) +
		dist(int(b), int(cubeLevels[cb]))

	gray := (int(r) + int(g) + int(b)) / 3
	spread := max(dist(int(r), gray), dist(int(g), gray), dist(int(b), gray))
	if spread < 10 {
		if gray < 4 {
			return 16 // cube black beats the first gray level
		}
		if gray > 243 {
			return 231 // cube white beats the last gray level
		}
		idx := 232 + (gray-8)/10
		level := 8 + (idx-232)*10
		grayDist := dist(int(r), level) + dist(int(g), level) + dist(int(b), level)
		if grayDist < cubeDist {
			return uint8(idx)
		}
	}

	return 16 + 36*cr + 6*cg + cb
}

// Downsample converts an RGB token to its nearest palette token when
// the mode cannot represent 24-bit color. Default and palette tokens
// pass through, as does everything under ColorModeTrueColor. The
// background tag is preserved.
func (c Color) Downsample(mode ColorMode) Color {
	if mode != ColorMode256 || c.kind != ColorRGB {
		return c
	}
	return Color{kind: ColorPalette, r: RGBTo256(c.r, c.g, c.b), bg: c.bg}
}
