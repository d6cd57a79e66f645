package spark

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDegenerateEmpty(t *testing.T) {
	got := Generate(nil)
	require.Equal(t, "M0 30 L280 30", got.Line)
	require.Equal(t, "M0 60 L0 30 L280 30 L280 60 Z", got.Area)
}

func TestGenerateDegenerateSinglePoint(t *testing.T) {
	got := Generate([]float64{49.99})
	require.Equal(t, "M0 30 L280 30", got.Line)
	require.Equal(t, "M0 60 L0 30 L280 30 L280 60 Z", got.Area)
}

func TestGenerateTwoPoints(t *testing.T) {
	got := Generate([]float64{10, 20})
	// Lowest price sits at the padded bottom, highest at the padded top.
	require.Equal(t, "M0 55 L280 5", got.Line)
	require.Equal(t, "M0 60 L0 55 L280 5 L280 60 Z", got.Area)
}

func TestGenerateConstantSeries(t *testing.T) {
	got := Generate([]float64{15, 15, 15})
	// Zero range substitutes 1: a flat line at the padded bottom, no NaN.
	require.NotContains(t, got.Line, "NaN")
	require.NotContains(t, got.Area, "NaN")
	require.Equal(t, "M0 55 L140 55 L280 55", got.Line)
}

func TestGenerateDeterministic(t *testing.T) {
	prices := []float64{49.99, 39.99, 44.5, 41}
	first := Generate(prices)
	second := Generate(prices)
	require.Equal(t, first, second)
}

func TestGeneratePathSpansFullWidth(t *testing.T) {
	got := GeneratePath([]float64{3, 1, 2}, 100, 40, 4)
	require.True(t, strings.HasPrefix(got.Line, "M0 "), "line starts at x=0: %s", got.Line)
	require.Contains(t, got.Line, "L100 ", "line ends at x=width: %s", got.Line)
	require.True(t, strings.HasPrefix(got.Area, "M0 40"), "area anchors at the baseline: %s", got.Area)
	require.True(t, strings.HasSuffix(got.Area, "L100 40 Z"), "area closes at the baseline: %s", got.Area)
}
