package disco

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_linearGradient(t *testing.T) {
	r := RgbRange{Start: Rgb{0, 100, 255}, End: Rgb{255, 200, 0}}
	tests := []struct {
		name string
		dist float64
		want Rgb
	}{
		{"start", 0, Rgb{0, 100, 255}},
		{"end", 1, Rgb{255, 200, 0}},
		{"middle", 0.5, Rgb{127, 150, 127}},
		{"quarter", 0.25, Rgb{63, 125, 191}},
		{"below", -3, Rgb{0, 100, 255}},
		{"above", 42, Rgb{255, 200, 0}},
		{"nan", math.NaN(), Rgb{0, 100, 255}},
		{"inf", math.Inf(1), Rgb{255, 200, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := linearGradient(r, tt.dist)
			assert.InDelta(t, tt.want.R, got.R, 1)
			assert.InDelta(t, tt.want.G, got.G, 1)
			assert.InDelta(t, tt.want.B, got.B, 1)
		})
	}
	t.Run("same_colors", func(t *testing.T) {
		c := Rgb{10, 20, 30}
		for _, d := range []float64{0, 0.3, 0.7, 1} {
			assert.Equal(t, c, linearGradient(RgbRange{c, c}, d))
		}
	})
}

func Test_oscillateDist(t *testing.T) {
	t.Run("triangle_n4", func(t *testing.T) {
		want := []float64{0, 0.25, 0.5, 0.75, 1, 0.75, 0.5, 0.25, 0, 0.25}
		for x, w := range want {
			assert.InDelta(t, w, oscillateDist(uint(x), 4), 1e-9, "x=%d", x)
		}
	})
	t.Run("steps_2", func(t *testing.T) {
		want := []float64{0, 0.5, 1, 0.5, 0, 0.5, 1, 0.5}
		for x, w := range want {
			assert.InDelta(t, w, oscillateDist(uint(x), 2), 1e-9, "x=%d", x)
		}
	})
	t.Run("bounds", func(t *testing.T) {
		for _, n := range []uint{1, 2, 3, 7, 20, 1000} {
			for x := uint(0); x < 5*n; x++ {
				d := oscillateDist(x, n)
				assert.True(t, d >= 0 && d <= 1, "x=%d n=%d d=%f", x, n, d)
			}
			assert.Equal(t, 0.0, oscillateDist(0, n))
			assert.Equal(t, 1.0, oscillateDist(n, n))
			assert.Equal(t, 0.0, oscillateDist(2*n, n))
		}
	})
	t.Run("zero_steps", func(t *testing.T) {
		assert.NotPanics(t, func() {
			for x := uint(0); x < 10; x++ {
				assert.Equal(t, oscillateDist(x, 1), oscillateDist(x, 0))
			}
		})
	})
	t.Run("overflow", func(t *testing.T) {
		assert.NotPanics(t, func() {
			for _, x := range []uint{math.MaxUint, math.MaxUint - 1, math.MaxUint/2 + 1} {
				for _, n := range []uint{1, 20, math.MaxUint, math.MaxUint/2 + 1, math.MaxUint/2 + 2} {
					d := oscillateDist(x, n)
					assert.False(t, math.IsNaN(d))
					assert.True(t, d >= 0 && d <= 1, "x=%d n=%d d=%f", x, n, d)
				}
			}
		})
	})
}

func TestRgb_Colorize(t *testing.T) {
	c := Rgb{1, 22, 255}
	assert.Equal(t, "\033[38;2;1;22;255m"+testlogstr+"\033[39m", c.Colorize(testlogstr))
	assert.Equal(t, "", c.Colorize(""))
	colored := c.Colorize("x")
	assert.True(t, strings.HasPrefix(colored, ANSI_COL_PRFX+ANSI_FG_TRUE))
	assert.True(t, strings.HasSuffix(colored, ANSI_FG_RESET))
}
