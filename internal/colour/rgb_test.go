package colour

import (
	"errors"
	"image/color"
	"testing"
)

func TestToRGB(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  RGB
	}{
		{
			name:  "red",
			color: color.RGBA{R: 255, G: 0, B: 0, A: 255},
			want:  RGB{R: 255, G: 0, B: 0},
		},
		{
			name:  "white",
			color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "black",
			color: color.RGBA{R: 0, G: 0, B: 0, A: 255},
			want:  RGB{R: 0, G: 0, B: 0},
		},
		{
			name:  "round trip",
			color: RGB{R: 18, G: 52, B: 86},
			want:  RGB{R: 18, G: 52, B: 86},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRGB(tt.color)
			if got != tt.want {
				t.Errorf("ToRGB() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#ff0000"},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: "#000000"},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, want: "#808080"},
		{name: "alice blue", rgb: RGB{R: 240, G: 248, B: 255}, want: "#f0f8ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rgb.Hex()
			if got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	rgb := RGB{R: 0, G: 0, B: 255}
	if got := rgb.String(); got != "rgb(0, 0, 255)" {
		t.Errorf("String() = %s, want rgb(0, 0, 255)", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "long form", input: "#ff8000", want: RGB{R: 255, G: 128, B: 0}},
		{name: "upper case", input: "#FF8000", want: RGB{R: 255, G: 128, B: 0}},
		{name: "no hash", input: "102030", want: RGB{R: 16, G: 32, B: 48}},
		{name: "shorthand", input: "#f0a", want: RGB{R: 255, G: 0, B: 170}},
		{name: "surrounding space", input: "  #000000 ", want: RGB{}},
		{name: "too short", input: "#ff", wantErr: true},
		{name: "too long", input: "#ff00ff00", wantErr: true},
		{name: "not hex", input: "#gg0000", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHex) {
					t.Fatalf("ParseHex(%q) error = %v, want ErrInvalidHex", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseHex did not panic on malformed input")
		}
	}()
	MustParseHex("nope")
}

func TestIsHex(t *testing.T) {
	if !IsHex("#abc") {
		t.Error("IsHex(#abc) = false, want true")
	}
	if IsHex("AliceBlue") {
		t.Error("IsHex(AliceBlue) = true, want false")
	}
}
