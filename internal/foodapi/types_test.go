package foodapi

import (
	"encoding/json"
	"testing"
)

func TestRatingDecodesNumbersAndStrings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Rating
	}{
		{"number", `4.5`, 4.5},
		{"string", `"4.2"`, 4.2},
		{"padded string", `" 3 "`, 3},
		{"trailing text", `"4.5 stars"`, 4.5},
		{"garbage", `"great"`, 0},
		{"null", `null`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Rating
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("Unmarshal(%s) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}

	var bad Rating
	if err := json.Unmarshal([]byte(`true`), &bad); err == nil {
		t.Fatalf("Unmarshal(true) returned nil error, want error")
	}
}

func TestFoodDecodesMissingAndNumericPrice(t *testing.T) {
	var foods []Food
	payload := `[{"id":"1","price":12.5},{"id":"2"},{"id":"3","price":"$$"}]`
	if err := json.Unmarshal([]byte(payload), &foods); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if foods[0].Price != "12.5" || foods[1].Price != "" || foods[2].Price != "$$" {
		t.Fatalf("prices = %q %q %q", foods[0].Price, foods[1].Price, foods[2].Price)
	}
}

func TestFoodLabels(t *testing.T) {
	f := Food{Rating: 4, Open: true}
	if got := f.RatingLabel(); got != "4.0" {
		t.Fatalf("RatingLabel = %q, want 4.0", got)
	}
	if got := f.StatusLabel(); got != "Open" {
		t.Fatalf("StatusLabel = %q, want Open", got)
	}
	if got := f.PriceLabel(); got != "$2.99" {
		t.Fatalf("PriceLabel default = %q, want $2.99", got)
	}

	f = Food{Rating: 4.25, Price: "7.50"}
	if got := f.RatingLabel(); got != "4.2" && got != "4.3" {
		t.Fatalf("RatingLabel = %q, want one decimal", got)
	}
	if got := f.StatusLabel(); got != "Closed" {
		t.Fatalf("StatusLabel = %q, want Closed", got)
	}
	if got := f.PriceLabel(); got != "$7.50" {
		t.Fatalf("PriceLabel = %q, want $7.50", got)
	}
	f.Price = "$$$"
	if got := f.PriceLabel(); got != "$$$" {
		t.Fatalf("PriceLabel = %q, want $$$", got)
	}
}
