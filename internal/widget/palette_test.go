package widget

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#4285F4", want: ColorBlue},
		{in: "db4437", want: ColorRed},
		{in: " #F4B400 ", want: ColorYellow},
		{in: "#800F9D58", want: color.NRGBA{R: 0x0F, G: 0x9D, B: 0x58, A: 0x80}},
		{in: "#123", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePalette(t *testing.T) {
	got, err := ParsePalette([]string{"#4285F4", "#DB4437", "#F4B400", "#0F9D58"})
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette(), got)

	_, err = ParsePalette([]string{"#4285F4", "nope"})
	require.Error(t, err)
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "#0F9D58", FormatHex(ColorGreen))
	assert.Equal(t, "#800F9D58", FormatHex(color.NRGBA{R: 0x0F, G: 0x9D, B: 0x58, A: 0x80}))
}

func TestParseHex_TranslucentRoundTrip(t *testing.T) {
	for _, in := range []string{"#800F9D58", "#01FFFFFF", "#7FDB4437", "#00000000"} {
		c, err := ParseHex(in)
		require.NoError(t, err)
		assert.Equal(t, in, FormatHex(c))
	}
}

func TestFade(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 127}, Fade(c, 0.5))
	assert.Equal(t, c, Fade(c, 2))
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50}, Fade(c, -1))
}
