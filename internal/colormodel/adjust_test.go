package colormodel

import "testing"

func TestHueShift(t *testing.T) {
	tests := []struct {
		name    string
		h       int
		amount  int
		wantH   int
		wantHex string
	}{
		{"forward", 171, 21, 192, "#3DD8FF"},
		{"backward", 171, -21, 150, "#3DFF9E"},
		{"wraps past 360", 350, 20, 10, ""},
		{"wraps below 0", 10, -21, 349, ""},
		{"full turn", 171, 360, 171, "#3DFFE2"},
		{"two full turns", 171, 720, 171, "#3DFFE2"},
		{"large negative", 171, -1000, 251, ""},
		{"zero", 171, 0, 171, "#3DFFE2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustHSV(t, tt.h, 76, 100)
			if got := c.HueShift(tt.amount); got != c {
				t.Fatal("HueShift should return its receiver")
			}
			if c.h != tt.wantH {
				t.Errorf("h: got %d, want %d", c.h, tt.wantH)
			}
			if c.h < 0 || c.h >= 360 {
				t.Errorf("h %d outside [0, 360)", c.h)
			}
			if tt.wantHex != "" && c.Hex() != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", c.Hex(), tt.wantHex)
			}
		})
	}
}

func TestLightenDarken(t *testing.T) {
	tests := []struct {
		name    string
		apply   func(c *Color) *Color
		wantV   int
		wantHex string
	}{
		{"darken clamps to black", func(c *Color) *Color { return c.Darken(150) }, 0, "#000000"},
		{"lighten clamps at full value", func(c *Color) *Color { return c.Lighten(40) }, 100, "#3DFFE2"},
		{"darken half", func(c *Color) *Color { return c.Darken(50) }, 50, "#1F8071"},
		{"darken then lighten back", func(c *Color) *Color { return c.Darken(50).Lighten(150) }, 100, "#3DFFE2"},
		{"negative lighten darkens", func(c *Color) *Color { return c.Lighten(-50) }, 50, "#1F8071"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustHSV(t, 171, 76, 100)
			if got := tt.apply(c); got != c {
				t.Fatal("mutator should return its receiver")
			}
			if got := c.HSV().V; got != tt.wantV {
				t.Errorf("V: got %d, want %d", got, tt.wantV)
			}
			if got := c.Hex(); got != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", got, tt.wantHex)
			}
		})
	}
}

func TestInvert(t *testing.T) {
	c := mustHSV(t, 171, 76, 100)
	c.Invert()
	if c.h != 351 {
		t.Errorf("h: got %d, want 351", c.h)
	}

	c.Invert()
	if c.Hex() != "#3DFFE2" {
		t.Errorf("double invert: got %s, want #3DFFE2", c.Hex())
	}
}

func TestChainedAdjustments(t *testing.T) {
	c := mustHSV(t, 171, 76, 100)

	got := c.Darken(50).Lighten(25).Invert().Hex()
	if got != "#BF2E44" {
		t.Errorf("Hex: got %s, want #BF2E44", got)
	}

	// Clamping makes order significant.
	d := mustHSV(t, 171, 76, 100)
	if got := d.Lighten(25).Darken(50).Invert().Hex(); got == "#BF2E44" {
		t.Errorf("reordered chain should differ, got %s", got)
	}
}

func TestAdjustSaturation(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v int
		amount  int
		wantS   int
		wantHex string
	}{
		{"drain to gray", 180, 100, 100, -10000, 0, "#FFFFFF"},
		{"clamp at full", 171, 76, 100, 50, 100, "#00FFD9"},
		{"small decrease", 171, 76, 100, -26, 50, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustHSV(t, tt.h, tt.s, tt.v)
			if got := c.AdjustSaturation(tt.amount); got != c {
				t.Fatal("AdjustSaturation should return its receiver")
			}
			if got := c.HSV().S; got != tt.wantS {
				t.Errorf("S: got %d, want %d", got, tt.wantS)
			}
			if tt.wantHex != "" && c.Hex() != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", c.Hex(), tt.wantHex)
			}
		})
	}
}

func TestClone_IsIndependent(t *testing.T) {
	c := mustHSV(t, 171, 76, 100)
	cp := c.Clone()
	cp.Invert().Darken(30)

	if c.Hex() != "#3DFFE2" {
		t.Errorf("original changed: got %s, want #3DFFE2", c.Hex())
	}
	if cp.Equal(c) {
		t.Error("clone should have diverged from the original")
	}
}
