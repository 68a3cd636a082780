package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// RegisterValidators adds the custom validators to gin's binding engine.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("iso8601", ISODate)
}

// ISODate accepts RFC3339 timestamps and plain dates.
func ISODate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return ParseISODate(val) != nil
}

// ParseISODate parses the accepted ISO-8601 forms, nil when none match.
func ParseISODate(val string) *time.Time {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return &t
		}
	}
	return nil
}
