package terminal

import "testing"

func TestRGBTo256CubeCorners(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 16},
		{255, 255, 255, 231},
		{255, 0, 0, 196},
		{0, 255, 0, 46},
		{0, 0, 255, 21},
		{95, 135, 175, 67}, // exact cube levels (1,2,3)
	}
	for _, c := range cases {
		if got := RGBTo256(c.r, c.g, c.b); got != c.want {
			t.Errorf("RGBTo256(%d,%d,%d): expected %d, got %d", c.r, c.g, c.b, c.want, got)
		}
	}
}

func TestRGBTo256GrayRamp(t *testing.T) {
	if got := RGBTo256(128, 128, 128); got != 244 {
		t.Errorf("Expected mid gray on the ramp (244), got %d", got)
	}
	if got := RGBTo256(8, 8, 8); got != 232 {
		t.Errorf("Expected first ramp level (232), got %d", got)
	}
}

func TestRGBTo256NearGrayPrefersCloserFamily(t *testing.T) {
	// Near-gray but three cells from exact cube levels (95,95,95):
	// the cube wins the distance comparison.
	if got := RGBTo256(100, 95, 98); got != 59 {
		t.Errorf("Expected cube index 59 for near-gray close to a cube corner, got %d", got)
	}
}

func TestDownsample(t *testing.T) {
	if got := RGBColor(255, 0, 0).Downsample(ColorMode256); got != Palette(196) {
		t.Errorf("Expected RGB red to downsample to palette 196, got %+v", got)
	}
	if got := RGBColor(255, 0, 0).Downsample(ColorModeTrueColor); got != RGBColor(255, 0, 0) {
		t.Errorf("Expected RGB untouched under truecolor, got %+v", got)
	}
	if got := Palette(5).Downsample(ColorMode256); got != Palette(5) {
		t.Errorf("Expected palette token untouched, got %+v", got)
	}
	if got := (Color{}).Downsample(ColorMode256); !got.IsDefault() {
		t.Errorf("Expected default token untouched, got %+v", got)
	}
}

func TestDownsampleKeepsBackgroundTag(t *testing.T) {
	got := RGBColor(0, 0, 0).Background().Downsample(ColorMode256)
	if !got.IsBackground() {
		t.Error("Expected background tag to survive downsampling")
	}
	if got != Palette(16).Background() {
		t.Errorf("Expected palette 16 background, got %+v", got)
	}
}
