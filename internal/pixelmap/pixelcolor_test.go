package pixelmap

import (
	"encoding/json"
	"errors"
	"image"
	"testing"

	"github.com/ironsheep/iris-color-mcp/internal/colormodel"
)

var square = [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

func TestNewCoordinate(t *testing.T) {
	c, err := NewCoordinate(0, 1)
	if err != nil {
		t.Fatalf("NewCoordinate failed: %v", err)
	}
	if c.X() != 0 || c.Y() != 1 {
		t.Errorf("got (%d,%d), want (0,1)", c.X(), c.Y())
	}
	if x, y := c.XY(); x != 0 || y != 1 {
		t.Errorf("XY: got (%d,%d), want (0,1)", x, y)
	}
	if c.Point() != image.Pt(0, 1) {
		t.Errorf("Point: got %v, want (0,1)", c.Point())
	}
	if c.String() != "(0,1)" {
		t.Errorf("String: got %s, want (0,1)", c.String())
	}
}

func TestNewCoordinate_Negative(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"both negative", -1, -1},
		{"negative x", -1, 0},
		{"negative y", 0, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCoordinate(tt.x, tt.y)
			if !errors.Is(err, colormodel.ErrInvalidArgument) {
				t.Errorf("got %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestCoordinate_MarshalJSON(t *testing.T) {
	c, _ := NewCoordinate(3, 7)
	data, err := json.Marshal([]Coordinate{c})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[[3,7]]" {
		t.Errorf("got %s, want [[3,7]]", data)
	}
}

func TestNew_ExposesColor(t *testing.T) {
	p, err := New(171, 76, 100, square)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got, want := p.HSV(), (colormodel.HSV{H: 171, S: 76, V: 100}); got != want {
		t.Errorf("HSV: got %+v, want %+v", got, want)
	}
	if got := p.Hex(); got != "#3DFFE2" {
		t.Errorf("Hex: got %s, want #3DFFE2", got)
	}
	if got, want := p.RGB(), (colormodel.RGB{R: 61, G: 255, B: 226}); got != want {
		t.Errorf("RGB: got %+v, want %+v", got, want)
	}
}

func TestPixelCount(t *testing.T) {
	p, err := New(171, 76, 100, square)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p.PixelCount() != 4 {
		t.Errorf("PixelCount: got %d, want 4", p.PixelCount())
	}
	if len(p.Coordinates()) != p.PixelCount() {
		t.Errorf("Coordinates: got %d entries, want %d", len(p.Coordinates()), p.PixelCount())
	}

	empty, err := New(0, 0, 0, nil)
	if err != nil {
		t.Fatalf("New with no pixels failed: %v", err)
	}
	if empty.PixelCount() != 0 {
		t.Errorf("PixelCount: got %d, want 0", empty.PixelCount())
	}
}

func TestConstructors_AllColorModels(t *testing.T) {
	tests := []struct {
		name      string
		construct func() (*PixelColor, error)
	}{
		{"hsv", func() (*PixelColor, error) { return FromHSV(171, 76, 100, square) }},
		{"rgb", func() (*PixelColor, error) { return FromRGB(61, 255, 226, square) }},
		{"hex", func() (*PixelColor, error) { return FromHex("#3dffe2", square) }},
		{"cmyk", func() (*PixelColor, error) { return FromCMYK(76, 0, 11, 0, square) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.construct()
			if err != nil {
				t.Fatalf("constructor failed: %v", err)
			}
			if got := p.Hex(); got != "#3DFFE2" {
				t.Errorf("Hex: got %s, want #3DFFE2", got)
			}
			if p.PixelCount() != 4 {
				t.Errorf("PixelCount: got %d, want 4", p.PixelCount())
			}
		})
	}
}

func TestConstructors_ImageColorCases(t *testing.T) {
	pixels := [][2]int{{0, 1}, {1, 0}}

	p, err := FromRGB(252, 186, 3, pixels)
	if err != nil {
		t.Fatalf("FromRGB failed: %v", err)
	}
	if p.Hex() != "#FCBA03" {
		t.Errorf("Hex: got %s, want #FCBA03", p.Hex())
	}

	p, err = FromHex("#fcba03", pixels)
	if err != nil {
		t.Fatalf("FromHex failed: %v", err)
	}
	if got, want := p.RGB(), (colormodel.RGB{R: 252, G: 186, B: 3}); got != want {
		t.Errorf("RGB: got %+v, want %+v", got, want)
	}

	p, err = FromHSV(44, 99, 99, pixels)
	if err != nil {
		t.Fatalf("FromHSV failed: %v", err)
	}
	if got, want := p.CMYK(), (colormodel.CMYK{C: 0, M: 26, Y: 99, K: 1}); got != want {
		t.Errorf("CMYK: got %+v, want %+v", got, want)
	}

	p, err = FromCMYK(0, 26, 99, 1, pixels)
	if err != nil {
		t.Fatalf("FromCMYK failed: %v", err)
	}
	if p.Hex() != "#FCBA03" {
		t.Errorf("Hex: got %s, want #FCBA03", p.Hex())
	}
}

func TestConstructors_Errors(t *testing.T) {
	tests := []struct {
		name      string
		construct func() (*PixelColor, error)
		wantErr   error
	}{
		{"negative pixel", func() (*PixelColor, error) { return New(171, 76, 100, [][2]int{{0, 0}, {-1, 2}}) }, colormodel.ErrInvalidArgument},
		{"bad hue", func() (*PixelColor, error) { return New(10000, 76, 100, square) }, colormodel.ErrInvalidArgument},
		{"bad rgb", func() (*PixelColor, error) { return FromRGB(999, 0, 0, square) }, colormodel.ErrInvalidArgument},
		{"bad cmyk", func() (*PixelColor, error) { return FromCMYK(0, 0, 0, 101, square) }, colormodel.ErrInvalidArgument},
		{"bad hex", func() (*PixelColor, error) { return FromHex("#FFFFFFFF", square) }, colormodel.ErrInvalidFormat},
		{"nil color", func() (*PixelColor, error) { return Attach(nil, square) }, colormodel.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.construct()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
			if p != nil {
				t.Error("constructor returned a PixelColor alongside an error")
			}
		})
	}
}

func TestAttach_ReportsIndex(t *testing.T) {
	c, _ := colormodel.New(0, 0, 0)
	_, err := Attach(c, [][2]int{{0, 0}, {1, 1}, {2, -2}})

	var ce *CoordinateError
	if !errors.As(err, &ce) {
		t.Fatalf("error %v is not a *CoordinateError", err)
	}
	if ce.Index != 2 || ce.X != 2 || ce.Y != -2 {
		t.Errorf("got index %d at (%d,%d), want index 2 at (2,-2)", ce.Index, ce.X, ce.Y)
	}
}

func TestAttach_SharesColor(t *testing.T) {
	c, _ := colormodel.New(171, 76, 100)
	p, err := Attach(c, square)
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	p.Darken(50).Lighten(25).Invert()
	if c.Hex() != "#BF2E44" {
		t.Errorf("shared color: got %s, want #BF2E44", c.Hex())
	}
	if p.PixelCount() != 4 {
		t.Errorf("PixelCount after adjustment: got %d, want 4", p.PixelCount())
	}
}

func TestCoordinates_ReturnsCopy(t *testing.T) {
	p, _ := New(0, 0, 0, square)
	coords := p.Coordinates()
	coords[0] = Coordinate{x: 99, y: 99}

	if got := p.Coordinates()[0]; got.X() != 0 || got.Y() != 0 {
		t.Errorf("pixel map mutated through copy: got %v", got)
	}
}

func TestPixelColor_String(t *testing.T) {
	p, _ := New(171, 76, 100, square)
	if got := p.String(); got != "PixelColor(#3DFFE2, pixels=4)" {
		t.Errorf("String: got %s", got)
	}
}
