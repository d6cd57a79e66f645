package site

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Variant identifies a supported storefront. The variant determines which
// extraction adapter applies and which currency the store displays. Once a
// product record is created under a variant it never changes.
type Variant string

const (
	// AmazonUS is the amazon.com marketplace.
	AmazonUS Variant = "amazon_us"
	// AmazonZA is the amazon.co.za marketplace.
	AmazonZA Variant = "amazon_za"
	// Takealot is the takealot.com marketplace.
	Takealot Variant = "takealot"
	// Unknown marks a page that belongs to no supported storefront.
	Unknown Variant = ""
)

var takealotProductPath = regexp.MustCompile(`/[^/]+-PLID\d+`)

// Classify maps a page to a storefront variant. Matching is by hostname
// substring; when the hostname is empty it is derived from the page URL.
// Unrecognised hosts classify as Unknown.
func Classify(pageURL, hostname string) Variant {
	if hostname == "" {
		if parsed, err := url.Parse(pageURL); err == nil {
			hostname = parsed.Hostname()
		}
	}
	switch {
	case strings.Contains(hostname, "amazon.com"):
		return AmazonUS
	case strings.Contains(hostname, "amazon.co.za"):
		return AmazonZA
	case strings.Contains(hostname, "takealot.com"):
		return Takealot
	default:
		return Unknown
	}
}

// IsProductPage reports whether the URL addresses a single purchasable item
// rather than a search or listing page. Amazon product pages carry /dp/ or
// /gp/product/ path segments; Takealot product pages end in a -PLID<digits>
// slug.
func IsProductPage(v Variant, pageURL string) bool {
	switch v {
	case AmazonUS, AmazonZA:
		return strings.Contains(pageURL, "/dp/") || strings.Contains(pageURL, "/gp/product/")
	case Takealot:
		return takealotProductPath.MatchString(pageURL)
	default:
		return false
	}
}

// CurrencySymbol returns the display symbol for a variant's marketplace.
func CurrencySymbol(v Variant) string {
	if v == Takealot {
		return "R"
	}
	return "$"
}

// FormatPrice renders an amount the way the variant's storefront displays it.
// Takealot uses the rand with a space and thousands separators; the Amazon
// variants use a plain dollar figure.
func FormatPrice(v Variant, amount float64) string {
	if v == Takealot {
		return "R " + groupThousands(fmt.Sprintf("%.2f", amount))
	}
	return fmt.Sprintf("$%.2f", amount)
}

// groupThousands inserts commas into the integer part of a formatted decimal.
func groupThousands(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	if hasFrac {
		out += "." + frac
	}
	return out
}
