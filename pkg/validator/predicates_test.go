package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/validator"
)

func TestLuhn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"4111111111111111", true},
		{"4111-1111-1111-1111", true},
		{"4111 1111 1111 1111", true},
		{"5500000000000004", true},
		{"4111111111111112", false},
		{"411111111111111", false},
		{"41111111111111111", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.Luhn(tt.value), tt.value)
	}
}

func TestABARoutingNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"021000021", true},
		{"011000015", true},
		{"123456789", false},
		{"000000000", false},
		{"02100002", false},
		{"0210000a1", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.ABARoutingNumber(tt.value), tt.value)
	}
}

func TestValidDate(t *testing.T) {
	t.Parallel()

	valid := []string{"01/15/2020", "01-15-2020", "02/29/2020", "12/31/1999", "07/04/1776"}
	invalid := []string{
		"02/29/2021",
		"02/30/2020",
		"13/01/2020",
		"00/10/2020",
		"01/00/2020",
		"01/15/0999",
		"1/15/2020",
		"01/15-2020",
		"2020-01-15",
		"",
	}

	for _, v := range valid {
		assert.True(t, validator.ValidDate(v), v)
	}
	for _, v := range invalid {
		assert.False(t, validator.ValidDate(v), v)
	}
}

func TestPhoneNumberInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"assignable", "(212) 555-1234", false},
		{"assignable digits only", "2125551234", false},
		{"area code starts with zero", "0125551234", true},
		{"area code starts with one", "1125551234", true},
		{"repeated area code digits", "2225551234", true},
		{"exchange starts with zero", "2130551234", true},
		{"exchange starts with one", "2131551234", true},
		{"N11 exchange", "2135111234", true},
		{"ascending run", "2345678901", true},
		{"descending run", "9876543210", true},
		{"short input with one at index three", "2131", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.PhoneNumberInvalid(tt.value))
		})
	}
}

func TestMonthOutOfRange(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"0", "13", "", "  ", "abc", "-1", "12.5", "0x", "-0x5", "0x1p0", "1_0", "0b2", "NaN", "Infinity", "inf"} {
		assert.True(t, validator.MonthOutOfRange(v), v)
	}
	for _, v := range []string{"1", "7", "12", " 6 ", "1.5", "0x5", "0X0c", "0o7", "0b11", "1e1", ".5e1"} {
		assert.False(t, validator.MonthOutOfRange(v), v)
	}
}
