// Package form holds the add/edit meal form model and its validation rules.
package form

import (
	"math"
	"strconv"
	"strings"

	"github.com/five82/foodwagen/internal/foodapi"
)

// Restaurant status values accepted by the form.
const (
	StatusOpen   = "Open Now"
	StatusClosed = "Closed"
)

// defaultRestaurantName fills the edit form; items carry no restaurant name.
const defaultRestaurantName = "Restaurant"

// Draft is unsaved form input for creating or editing a food item.
// The validate tags run in order and stop at the first failure per field;
// see Validate for the messages each tag maps to.
type Draft struct {
	Name             string  `form:"food_name" validate:"required"`
	Rating           float64 `form:"food_rating" validate:"required,notnan,gte=1,lte=5"`
	Avatar           string  `form:"food_image" validate:"required,url,http_url"`
	RestaurantName   string  `form:"restaurant_name" validate:"required"`
	RestaurantLogo   string  `form:"restaurant_logo" validate:"required,url,http_url"`
	RestaurantStatus string  `form:"restaurant_status" validate:"oneof='Open Now' Closed"`
}

// NewDraft returns the blank add-mode form.
func NewDraft() Draft {
	return Draft{
		Rating:           1,
		RestaurantStatus: StatusOpen,
	}
}

// DraftFromFood pre-populates the edit-mode form from an existing item.
func DraftFromFood(f foodapi.Food) Draft {
	rating := float64(f.Rating)
	if rating == 0 || math.IsNaN(rating) {
		rating = 1
	}
	status := StatusClosed
	if f.Open {
		status = StatusOpen
	}
	return Draft{
		Name:             f.Name,
		Rating:           rating,
		Avatar:           f.Avatar,
		RestaurantName:   defaultRestaurantName,
		RestaurantLogo:   f.Logo,
		RestaurantStatus: status,
	}
}

// Input maps the draft onto the API request body.
func (d Draft) Input() foodapi.FoodInput {
	return foodapi.FoodInput{
		Name:           d.Name,
		Avatar:         d.Avatar,
		Rating:         d.Rating,
		Open:           d.RestaurantStatus == StatusOpen,
		Logo:           d.RestaurantLogo,
		RestaurantName: d.RestaurantName,
	}
}

// ParseRating converts rating field text to a number. Blank text is 0
// (missing); text that is not a number is NaN.
func ParseRating(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

// FormatRating renders a rating for the form's text field.
func FormatRating(r float64) string {
	if math.IsNaN(r) {
		return ""
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// ToggleStatus flips between the two restaurant status values.
func ToggleStatus(status string) string {
	if status == StatusOpen {
		return StatusClosed
	}
	return StatusOpen
}
