package validator

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Names under which the built-in predicates are available to definition files.
const (
	PredicatePhoneInvalid    = "phone_invalid"
	PredicateDate            = "date"
	PredicateLuhn            = "luhn"
	PredicateABARouting      = "aba_routing"
	PredicateMonthOutOfRange = "month_out_of_range"
)

const (
	ascendingDigits  = "01234567890123456789"
	descendingDigits = "98765432109876543210"

	creditCardDigits = 16
	routingRunLength = 3
)

func builtinPredicates() map[string]Predicate {
	return map[string]Predicate{
		PredicatePhoneInvalid:    PhoneNumberInvalid,
		PredicateDate:            ValidDate,
		PredicateLuhn:            Luhn,
		PredicateABARouting:      ABARoutingNumber,
		PredicateMonthOutOfRange: MonthOutOfRange,
	}
}

// digitsOnly strips every character other than ASCII digits.
func digitsOnly(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if c := value[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// PhoneNumberInvalid detects North American numbers that cannot be assigned:
// area codes starting with 0 or 1, repeated second and third digits, exchange
// codes starting with 0 or 1, N11 exchanges, straight digit runs and repeated digits.
func PhoneNumberInvalid(value string) bool {
	input := digitsOnly(value)
	at := func(i int) byte {
		if i < len(input) {
			return input[i]
		}
		return 0
	}

	if at(0) == '0' || at(0) == '1' {
		return true
	}
	if len(input) >= 3 && at(1) == at(2) {
		return true
	}
	// The digit at index 3 is checked for '1' regardless of length.
	if (len(input) >= 4 && at(3) == '0') || at(3) == '1' {
		return true
	}
	if len(input) >= 6 && at(4) == '1' && at(5) == '1' {
		return true
	}
	if len(input) == 10 && strings.Contains(ascendingDigits, input) {
		return true
	}
	if len(input) == 10 && strings.Contains(descendingDigits, input) {
		return true
	}
	if len(input) == 10 && strings.Count(input, input[:1]) == 10 {
		return true
	}
	return false
}

// ValidDate accepts mm/dd/yyyy or mm-dd-yyyy when the digits name a real calendar day.
// The date is normalised and must reproduce the typed digits, so 02/30/2020 is rejected.
func ValidDate(value string) bool {
	if !dateWithSlashes.Match(value) && !dateWithDashes.Match(value) {
		return false
	}

	month, _ := strconv.Atoi(value[0:2])
	day, _ := strconv.Atoi(value[3:5])
	year, _ := strconv.Atoi(value[6:10])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	got := twoDigits(int(t.Month())) + twoDigits(t.Day()) + strconv.Itoa(t.Year())
	return got == digitsOnly(value)
}

var (
	dateWithSlashes = MustPattern(`^\d{2}\/\d{2}\/\d{4}$`)
	dateWithDashes  = MustPattern(`^\d{2}-\d{2}-\d{4}$`)
)

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Luhn validates a 16 digit card number. Non-digit separators are ignored.
func Luhn(value string) bool {
	digits := digitsOnly(value)
	if len(digits) != creditCardDigits {
		return false
	}

	parity := len(digits) % 2
	sum := 0
	for i := 0; i < len(digits); i++ {
		digit := int(digits[i] - '0')
		if i%2 == parity {
			digit *= 2
		}
		if digit > 9 {
			digit -= 9
		}
		sum += digit
	}
	return sum%10 == 0
}

// ABARoutingNumber validates the checksum of a bank routing number: each run of
// three digits contributes 3*d0 + 7*d1 + d2 and the total must be a non-zero
// multiple of ten. Any non-digit, or a length that is not a multiple of three, fails.
func ABARoutingNumber(value string) bool {
	if len(value)%routingRunLength != 0 {
		return false
	}

	n := 0
	for i := 0; i < len(value); i += routingRunLength {
		d0, d1, d2 := value[i], value[i+1], value[i+2]
		if !isDigit(d0) || !isDigit(d1) || !isDigit(d2) {
			return false
		}
		n += int(d0-'0')*3 + int(d1-'0')*7 + int(d2-'0')
	}
	return n != 0 && n%10 == 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// MonthOutOfRange detects values that are not a number between 1 and 12.
// Numbers are read the way a browser coerces a string: blank input counts as
// zero and unsigned 0x, 0o and 0b integer literals are accepted.
func MonthOutOfRange(value string) bool {
	n, ok := coerceNumber(value)
	return !ok || !(n >= 1 && n <= 12)
}

// coerceNumber converts s to a number, reporting false where a browser would
// produce NaN.
func coerceNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	if strings.Contains(s, "_") {
		return 0, false
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			return float64(u), err == nil
		}
	}
	// Hex floats and spellings of infinity other than "Infinity" are Go-only.
	if strings.ContainsAny(s, "xX") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	if math.IsInf(f, 0) && strings.TrimLeft(s, "+-") != "Infinity" {
		return 0, false
	}
	return f, true
}
