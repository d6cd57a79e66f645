package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingNumber = regexp.MustCompile(`^\d+(?:\.\d*)?|^\.\d+`)

// CleanPrice normalises raw price text into a numeric value. Every character
// except digits, dots and commas is stripped, the first comma is dropped, and
// the leading numeric run of what remains is parsed. Values that do not parse,
// are not finite or are not strictly positive report ok=false.
func CleanPrice(text string) (float64, bool) {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.Replace(b.String(), ",", "", 1)

	// Merged text nodes can leave trailing fragments ("12.34.56"); only the
	// leading numeric run counts.
	number := leadingNumber.FindString(cleaned)
	if number == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, false
	}
	return price, true
}
