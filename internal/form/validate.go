package form

import "regexp"

// Field names, matching the JSON names of model.CardSubmission.
const (
	FieldCardNumber          = "cardNumber"
	FieldCardName            = "cardName"
	FieldCardExpirationMonth = "cardExpirationMonth"
	FieldCardExpirationYear  = "cardExpirationYear"
)

// Values are the four user-editable fields of the form.
type Values struct {
	CardNumber          string `schema:"cardNumber"`
	CardName            string `schema:"cardName"`
	CardExpirationMonth string `schema:"cardExpirationMonth"`
	CardExpirationYear  string `schema:"cardExpirationYear"`
}

// FieldErrors maps a field name to its inline message.
type FieldErrors map[string]string

type rule struct {
	field   string
	pattern *regexp.Regexp
	message string
	value   func(Values) string
}

// The month pattern also accepts "0" and "00". Kept as is until product
// decides whether those should be rejected.
var rules = []rule{
	{
		field:   FieldCardNumber,
		pattern: regexp.MustCompile(`^\d{16}$`),
		message: "Card number must be exactly 16 digits",
		value:   func(v Values) string { return v.CardNumber },
	},
	{
		field:   FieldCardName,
		// browser \s: ASCII whitespace, vertical tab and Unicode spaces
		pattern: regexp.MustCompile(`^[a-zA-Z\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}]+$`),
		message: "Name on card may only contain letters and spaces",
		value:   func(v Values) string { return v.CardName },
	},
	{
		field:   FieldCardExpirationMonth,
		pattern: regexp.MustCompile(`^(0?[0-9]|1[0-2])$`),
		message: "Invalid month, please enter a valid month between 01 and 12",
		value:   func(v Values) string { return v.CardExpirationMonth },
	},
	{
		field:   FieldCardExpirationYear,
		pattern: regexp.MustCompile(`^[2-9][0-9]$`),
		message: "Invalid year, please enter a valid year between 24 and 99",
		value:   func(v Values) string { return v.CardExpirationYear },
	},
}

// Validate checks every field and returns the messages of the failing ones.
// An empty result means the values can be submitted.
func Validate(v Values) FieldErrors {
	errs := FieldErrors{}
	for _, r := range rules {
		if !r.pattern.MatchString(r.value(v)) {
			errs[r.field] = r.message
		}
	}
	return errs
}
