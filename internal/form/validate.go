package form

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field identifies a form input.
type Field string

const (
	FieldName             Field = "food_name"
	FieldRating           Field = "food_rating"
	FieldImage            Field = "food_image"
	FieldRestaurantName   Field = "restaurant_name"
	FieldRestaurantLogo   Field = "restaurant_logo"
	FieldRestaurantStatus Field = "restaurant_status"
)

// Fields lists form inputs in display order.
var Fields = []Field{
	FieldName,
	FieldRating,
	FieldImage,
	FieldRestaurantName,
	FieldRestaurantLogo,
	FieldRestaurantStatus,
}

// Errors maps a field to its validation message. Empty means valid.
type Errors map[Field]string

// Valid reports whether no field has an error.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	if e == nil {
		return nil
	}
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// ValidationError is returned when a draft fails validation. It never
// reaches the API client.
type ValidationError struct {
	Errors Errors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid form: %s", strings.Join(fields, ", "))
}

var labels = map[Field]string{
	FieldName:             "Food Name",
	FieldRating:           "Food Rating",
	FieldImage:            "Food Image URL",
	FieldRestaurantName:   "Restaurant Name",
	FieldRestaurantLogo:   "Restaurant Logo URL",
	FieldRestaurantStatus: "Restaurant Status",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	if err := v.RegisterValidation("notnan", func(fl validator.FieldLevel) bool {
		return !math.IsNaN(fl.Field().Float())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks every field independently and returns all errors found.
func Validate(d Draft) Errors {
	errs := Errors{}
	var failed validator.ValidationErrors
	if !errors.As(validate.Struct(d.normalized()), &failed) {
		return errs
	}
	for _, fe := range failed {
		field := Field(fe.Field())
		errs[field] = message(field, fe.Tag())
	}
	return errs
}

// message maps a failed validate tag to the text shown under the field.
func message(f Field, tag string) string {
	label := labels[f]
	switch tag {
	case "required":
		if f == FieldRating {
			return label + " must be a number"
		}
		return label + " is required"
	case "notnan":
		return label + " must be a number"
	case "gte", "lte":
		return label + " must be between 1 and 5"
	case "url":
		return label + " must be a valid URL"
	case "http_url":
		return label + " must start with http:// or https://"
	case "oneof":
		return label + " must be '" + StatusOpen + "' or '" + StatusClosed + "'"
	}
	return label + " is invalid"
}

// normalized trims free-text fields the way the form input does. Status is
// compared exactly and left alone.
func (d Draft) normalized() Draft {
	d.Name = strings.TrimSpace(d.Name)
	d.RestaurantName = strings.TrimSpace(d.RestaurantName)
	d.Avatar = escapeStrayPercent(strings.TrimSpace(d.Avatar))
	d.RestaurantLogo = escapeStrayPercent(strings.TrimSpace(d.RestaurantLogo))
	return d
}

// escapeStrayPercent rewrites a '%' after the host that does not start a
// %XX escape as %25. Browsers accept such URLs; url.Parse does not.
func escapeStrayPercent(raw string) string {
	if !strings.Contains(raw, "%") {
		return raw
	}
	start := 0
	if i := strings.Index(raw, "://"); i >= 0 {
		j := strings.IndexAny(raw[i+3:], "/?#")
		if j < 0 {
			return raw
		}
		start = i + 3 + j
	}
	var b strings.Builder
	b.WriteString(raw[:start])
	for i := start; i < len(raw); i++ {
		if raw[i] == '%' && !(i+2 < len(raw) && isHex(raw[i+1]) && isHex(raw[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
