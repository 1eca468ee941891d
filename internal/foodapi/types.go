package foodapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const defaultPriceLabel = "$2.99"

// Food mirrors an item returned by /Food.
type Food struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	Rating    Rating `json:"rating"`
	Open      bool   `json:"open"`
	Logo      string `json:"logo"`
	Price     Price  `json:"price,omitempty"`
}

// RatingLabel renders the rating with a single decimal.
func (f Food) RatingLabel() string {
	return fmt.Sprintf("%.1f", float64(f.Rating))
}

// StatusLabel returns the badge text for the restaurant status.
func (f Food) StatusLabel() string {
	if f.Open {
		return "Open"
	}
	return "Closed"
}

// PriceLabel returns the price with a leading dollar sign, or the
// placeholder price when none was provided.
func (f Food) PriceLabel() string {
	price := strings.TrimSpace(string(f.Price))
	if price == "" {
		return defaultPriceLabel
	}
	if strings.HasPrefix(price, "$") {
		return price
	}
	return "$" + price
}

// Rating is a food rating. The API returns it either as a JSON number or as
// a numeric string; both decode to the same value.
type Rating float64

// UnmarshalJSON accepts numbers, numeric strings and null.
func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = 0
		return nil
	}
	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("decode rating: %w", err)
		}
		*r = Rating(parseLooseFloat(text))
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("decode rating: %w", err)
	}
	*r = Rating(value)
	return nil
}

// Price is free-form price text. Numbers are accepted and kept as text.
type Price string

// UnmarshalJSON accepts strings, numbers and null.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("decode price: %w", err)
		}
		*p = Price(text)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("decode price: %w", err)
	}
	*p = Price(number.String())
	return nil
}

// FoodInput is the request body for create and update calls.
type FoodInput struct {
	Name           string  `json:"name"`
	Avatar         string  `json:"avatar"`
	Rating         float64 `json:"rating"`
	Open           bool    `json:"open"`
	Logo           string  `json:"logo"`
	RestaurantName string  `json:"restaurantName"`
}

// parseLooseFloat reads the leading decimal number of text, so "4.5 stars"
// yields 4.5. Text without a leading number yields 0.
func parseLooseFloat(text string) float64 {
	text = strings.TrimSpace(text)
	end := 0
	seenDigit, seenDot, seenExp := false, false, false
scan:
	for end < len(text) {
		c := text[end]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case (c == '+' || c == '-') && (end == 0 || text[end-1] == 'e' || text[end-1] == 'E'):
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && seenDigit && !seenExp:
			seenExp = true
		default:
			break scan
		}
		end++
	}
	for end > 0 {
		value, err := strconv.ParseFloat(text[:end], 64)
		if err == nil && !math.IsNaN(value) && !math.IsInf(value, 0) {
			return value
		}
		end--
	}
	return 0
}
