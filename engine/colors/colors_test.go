package colors

import "testing"

func TestHex(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    Color
		wantErr bool
	}{
		"rgb":     {in: "#ff0000", want: Color{1, 0, 0, 1}},
		"rgba":    {in: "#00ff0080", want: RGBA8(0, 255, 0, 128)},
		"no hash": {in: "0000ff", want: Color{0, 0, 1, 1}},
		"short":   {in: "#fff", wantErr: true},
		"not hex": {in: "#gggggg", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Hex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Hex(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBARoundTrip(t *testing.T) {
	c := RGBA8(7, 7, 7, 255)
	if got := c.RGBA(); got.R != 7 || got.A != 255 {
		t.Errorf("RGBA() = %v", got)
	}
}
