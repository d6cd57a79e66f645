// Package spark turns a price series into drawable line and area paths for a
// small inline chart. The transform is deterministic and stateless: the same
// series always yields the same paths.
package spark

import (
	"strconv"
	"strings"
)

// Default drawing dimensions for the inline widget chart.
const (
	DefaultWidth   = 280.0
	DefaultHeight  = 60.0
	DefaultPadding = 5.0
)

// Path holds an open polyline and its closed area variant in SVG path syntax.
type Path struct {
	Line string
	Area string
}

// Generate renders prices with the default widget dimensions.
func Generate(prices []float64) Path {
	return GeneratePath(prices, DefaultWidth, DefaultHeight, DefaultPadding)
}

// GeneratePath maps the series onto a width×height box. The vertical axis is
// inverted because drawing coordinates grow downward. Fewer than two points
// degenerates to a flat line at mid height over a full-width area rectangle.
func GeneratePath(prices []float64, width, height, padding float64) Path {
	if len(prices) < 2 {
		mid := height / 2
		return Path{
			Line: "M0 " + num(mid) + " L" + num(width) + " " + num(mid),
			Area: "M0 " + num(height) + " L0 " + num(mid) + " L" + num(width) + " " + num(mid) +
				" L" + num(width) + " " + num(height) + " Z",
		}
	}

	min, max := prices[0], prices[0]
	for _, price := range prices[1:] {
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}
	priceRange := max - min
	if priceRange == 0 {
		// All-equal series; any non-zero divisor keeps the line flat.
		priceRange = 1
	}

	var line, area strings.Builder
	area.WriteString("M0 " + num(height))
	for i, price := range prices {
		x := float64(i) / float64(len(prices)-1) * width
		y := height - padding - (price-min)/priceRange*(height-padding*2)
		if i == 0 {
			line.WriteString("M")
		} else {
			line.WriteString(" L")
		}
		line.WriteString(num(x) + " " + num(y))
		area.WriteString(" L" + num(x) + " " + num(y))
	}
	area.WriteString(" L" + num(width) + " " + num(height) + " Z")

	return Path{Line: line.String(), Area: area.String()}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
