package extract

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/motsoagae/ShopWise-Collective/internal/site"
)

// Sentinel errors for required fields the page did not yield. Title and image
// are best effort and never fail extraction.
var (
	ErrMissingID      = errors.New("extract: product id not found")
	ErrMissingPrice   = errors.New("extract: price not found")
	ErrUnknownVariant = errors.New("extract: no adapter for site variant")
)

const fallbackTitle = "Unknown Product"

// Extraction holds the fields read from a rendered product page. Price and
// ProductID are always present; Title falls back to a sentinel and ImageURL
// may be empty.
type Extraction struct {
	ProductID string
	Price     float64
	Title     string
	ImageURL  string
}

// Extract reads price, identity, title and image from a parsed product page.
// Candidates are tried in priority order per field; the first cleanable,
// positive price and the first non-empty id/title win. Missing price or id
// aborts with a sentinel error and nothing else is reported.
func Extract(doc *goquery.Document, pageURL string, variant site.Variant) (*Extraction, error) {
	ad, ok := adapters[variant]
	if !ok {
		return nil, ErrUnknownVariant
	}

	id := ad.productID(doc, pageURL)
	if id == "" {
		return nil, ErrMissingID
	}

	price, ok := extractPrice(doc, ad)
	if !ok {
		return nil, ErrMissingPrice
	}

	return &Extraction{
		ProductID: id,
		Price:     price,
		Title:     extractTitle(doc, ad),
		ImageURL:  extractImage(doc, ad),
	}, nil
}

func extractPrice(doc *goquery.Document, ad adapter) (float64, bool) {
	var price float64
	found := false
	for _, selector := range ad.priceSelectors {
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			text := sel.Text()
			if text == "" {
				text = sel.AttrOr("content", "")
			}
			if value, ok := CleanPrice(text); ok {
				price = value
				found = true
				return false
			}
			return true
		})
		if found {
			return price, true
		}
	}
	if ad.priceFallback != nil {
		return ad.priceFallback(doc)
	}
	return 0, false
}

func extractTitle(doc *goquery.Document, ad adapter) string {
	for _, selector := range ad.titleSelectors {
		if title := strings.TrimSpace(doc.Find(selector).First().Text()); title != "" {
			return title
		}
	}
	if title := documentTitle(doc); title != "" {
		return title
	}
	return fallbackTitle
}

// documentTitle reads the page <title>, keeping only the part before the
// first separator bar.
func documentTitle(doc *goquery.Document) string {
	title := doc.Find("title").First().Text()
	title, _, _ = strings.Cut(title, "|")
	return strings.TrimSpace(title)
}

func extractImage(doc *goquery.Document, ad adapter) string {
	for _, selector := range ad.imageSelectors {
		img := doc.Find(selector).First()
		if img.Length() == 0 {
			continue
		}
		for _, attr := range ad.imageAttrs {
			if src, ok := img.Attr(attr); ok && src != "" {
				return src
			}
		}
	}
	return ""
}
