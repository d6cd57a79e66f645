package site

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		hostname string
		want     Variant
	}{
		{"www.amazon.com", AmazonUS},
		{"smile.amazon.com", AmazonUS},
		{"www.amazon.co.za", AmazonZA},
		{"www.takealot.com", Takealot},
		{"www.example.com", Unknown},
		{"", Unknown},
	}
	for _, tc := range cases {
		if got := Classify("", tc.hostname); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.hostname, got, tc.want)
		}
	}
}

func TestClassifyDerivesHostnameFromURL(t *testing.T) {
	got := Classify("https://www.amazon.com/dp/B000123456", "")
	if got != AmazonUS {
		t.Fatalf("expected amazon_us from URL host, got %q", got)
	}
}

func TestIsProductPage(t *testing.T) {
	cases := []struct {
		variant Variant
		url     string
		want    bool
	}{
		{AmazonUS, "https://www.amazon.com/dp/B000123456", true},
		{AmazonUS, "https://www.amazon.com/gp/product/B000123456", true},
		{AmazonUS, "https://www.amazon.com/s?k=headphones", false},
		{AmazonZA, "https://www.amazon.co.za/dp/B000123456", true},
		{Takealot, "https://www.takealot.com/some-great-kettle-PLID12345678", true},
		{Takealot, "https://www.takealot.com/all?filter=Category", false},
		{Unknown, "https://www.example.com/dp/B000123456", false},
	}
	for _, tc := range cases {
		if got := IsProductPage(tc.variant, tc.url); got != tc.want {
			t.Errorf("IsProductPage(%q, %q) = %v, want %v", tc.variant, tc.url, got, tc.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		variant Variant
		amount  float64
		want    string
	}{
		{AmazonUS, 49.99, "$49.99"},
		{AmazonUS, 1234.5, "$1234.50"},
		{Takealot, 1234.56, "R 1,234.56"},
		{Takealot, 999.9, "R 999.90"},
		{Takealot, 1234567.89, "R 1,234,567.89"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.variant, tc.amount); got != tc.want {
			t.Errorf("FormatPrice(%q, %v) = %q, want %q", tc.variant, tc.amount, got, tc.want)
		}
	}
}
