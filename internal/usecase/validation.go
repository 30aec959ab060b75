package usecase

import (
	"math"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kdelarosa/deliverytrack/internal/domain/model"
)

const (
	msgRequired      = "This field is required."
	msgBlank         = "This field may not be blank."
	msgNameTooLong   = "Ensure this field has no more than 200 characters."
	msgPostalTooLong = "Ensure this field has no more than 10 characters."
	msgPhoneCharset  = "Phone number must contain only digits, +, -, and spaces"
	msgPhoneFormat   = "Phone number must be entered in format: '+999999999'. Up to 15 digits."
	msgEmail         = "Enter a valid email address."
	msgURL           = "Enter a valid URL."
	msgCoordinate    = "Ensure that there are no more than 9 digits in total."
	msgDeliveryTime  = "Delivery time is required when marking order as delivered"
	maxCustomerName  = 200
	maxPostalCode    = 10
	maxAbsoluteCoord = 999.999999
)

var (
	validate     = validator.New()
	phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)
	phoneStrip   = strings.NewReplacer("+", "", "-", "", " ", "")
)

func msgInvalidStatus() string {
	names := make([]string, 0, len(model.Statuses))
	for _, s := range model.Statuses {
		names = append(names, string(s))
	}
	return "Invalid status. Must be one of: " + strings.Join(names, ", ")
}

// ValidatePhoneNumber applies both phone rules: the character-set check and
// the numeric pattern. Returns one message per failed rule.
func ValidatePhoneNumber(value string) []string {
	var messages []string
	stripped := phoneStrip.Replace(value)
	if stripped == "" || !allDigits(stripped) {
		messages = append(messages, msgPhoneCharset)
	}
	if !phonePattern.MatchString(value) {
		messages = append(messages, msgPhoneFormat)
	}
	return messages
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validEmail(value string) bool {
	return validate.Var(value, "email") == nil
}

func validURL(value string) bool {
	return validate.Var(value, "url") == nil
}

func validCoordinate(value float64) bool {
	return math.Abs(value) <= maxAbsoluteCoord
}
