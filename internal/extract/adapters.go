package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/motsoagae/ShopWise-Collective/internal/site"
)

// adapter carries the ordered candidate locations for one storefront. The
// set of variants is closed; dispatch is by the site.Variant tag.
type adapter struct {
	priceSelectors []string
	titleSelectors []string
	imageSelectors []string
	imageAttrs     []string
	productID      func(doc *goquery.Document, pageURL string) string
	priceFallback  func(doc *goquery.Document) (float64, bool)
}

var (
	amazonASIN   = regexp.MustCompile(`/dp/([A-Z0-9]{10})`)
	takealotPLID = regexp.MustCompile(`PLID(\d+)`)
)

var amazonAdapter = adapter{
	priceSelectors: []string{
		".a-price-whole",
		".a-price .a-offscreen",
		"#priceblock_ourprice",
		"#priceblock_dealprice",
		".a-price-range .a-offscreen",
		`span[class*="priceToPay"] .a-offscreen`,
		"#corePrice_feature_div .a-offscreen",
		".priceToPay .a-offscreen",
	},
	titleSelectors: []string{
		"#productTitle",
		"#title",
		"h1.product-title",
	},
	imageSelectors: []string{
		"#landingImage",
		"#imgBlkFront",
		".a-dynamic-image",
	},
	imageAttrs: []string{"src", "data-old-hires", "data-a-dynamic-image"},
	productID:  amazonProductID,
}

var takealotAdapter = adapter{
	priceSelectors: []string{
		`[class*="currency"] [class*="rand"]`,
		".currency-module_currency-value",
		".price-box .price",
		`div[class*="price"] span[class*="rand"]`,
		"span.currency.plus.format",
		"div.currency span",
	},
	titleSelectors: []string{
		`h1[class*="title"]`,
		".product-title",
		"h1.product-title",
		`div[class*="title"] h1`,
	},
	imageSelectors: []string{
		".gallery-image img",
		`[class*="product-image"] img`,
		`img[class*="main"]`,
	},
	imageAttrs:    []string{"src"},
	productID:     takealotProductID,
	priceFallback: takealotTextScan,
}

var adapters = map[site.Variant]adapter{
	site.AmazonUS: amazonAdapter,
	site.AmazonZA: amazonAdapter,
	site.Takealot: takealotAdapter,
}

func amazonProductID(doc *goquery.Document, pageURL string) string {
	if m := amazonASIN.FindStringSubmatch(pageURL); m != nil {
		return m[1]
	}
	if value, ok := doc.Find(`input[name="ASIN"]`).First().Attr("value"); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

func takealotProductID(_ *goquery.Document, pageURL string) string {
	if m := takealotPLID.FindStringSubmatch(pageURL); m != nil {
		return m[1]
	}
	return ""
}

// takealotTextScan is the last-resort price strategy: walk every leaf node
// for short rand-prefixed text and accept the first cleaned value above 10.
// It runs only after every structured candidate has failed and is the lowest
// confidence path in the extractor.
func takealotTextScan(doc *goquery.Document) (float64, bool) {
	var price float64
	found := false
	doc.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.Children().Length() != 0 {
			return true
		}
		text := strings.TrimSpace(sel.Text())
		if !strings.HasPrefix(text, "R ") || len(text) >= 15 {
			return true
		}
		if value, ok := CleanPrice(text); ok && value > 10 {
			price = value
			found = true
			return false
		}
		return true
	})
	return price, found
}
