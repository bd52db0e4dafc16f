package renderer

import "strings"

// sparklineWidth is the rendered width of the portfolio value curve.
const sparklineWidth = 60

var sparks = []rune("▁▂▃▄▅▆▇█")

// sparkline compresses a series of values into a fixed-width line of block
// characters, scaled between the series minimum and maximum.
func sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		// Downsample by keeping one value per bucket.
		sampled := make([]float64, 0, width)
		for i := 0; i < width; i++ {
			sampled = append(sampled, values[i*len(values)/width])
		}
		values = sampled
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	for _, v := range values {
		i := 0
		if max > min {
			i = int(float64(len(sparks)-1) * (v - min) / (max - min))
		}
		b.WriteRune(sparks[i])
	}
	return b.String()
}
