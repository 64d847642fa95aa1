package validator

var tagMap = map[string]string{
	"required":         "required",
	"omitempty":        "optional",
	"iban":             "invalid_iban",
	"iban_basic":       "invalid_iban",
	"iso3166_1_alpha2": "invalid_country",
	"hostname_port":    "invalid_address",
	"max":              "too_long",
	"min":              "too_short",
	"gt":               "too_small",
	"lt":               "too_large",
	"gte":              "too_small_or_equal",
	"lte":              "too_large_or_equal",
	"len":              "invalid_length",
	"oneof":            "invalid_choice",
	"alpha":            "only_letters_allowed",
	"alphanum":         "only_letters_and_digits_allowed",
	"numeric":          "only_numbers_allowed",
	"boolean":          "invalid_boolean",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}

// TagReasons returns a copy of the tag -> reason table, suitable for
// errors.FromPlayground.
func TagReasons() map[string]string {
	out := make(map[string]string, len(tagMap))
	for tag, reason := range tagMap {
		out[tag] = reason
	}
	return out
}
