package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/validator"
)

func resolve(t *testing.T, name string) *validator.RuleSet {
	t.Helper()
	rs, err := validator.NewDefaultRegistry().Resolve(name)
	require.NoError(t, err, name)
	return rs
}

func verdicts(rs *validator.RuleSet, value string) []validator.Verdict {
	out := make([]validator.Verdict, 0, rs.Len())
	for _, o := range rs.Evaluate(value) {
		out = append(out, o.Verdict)
	}
	return out
}

func TestCatalogue_Validity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		valid   []string
		invalid []string
	}{
		{
			name:    validator.NamePassword,
			valid:   []string{"abc12345", "S3cure-enough", "a1b2c3d4e5f6g7h8i9j0k1l2m3n4o5p6"},
			invalid: []string{"", "abc1234", "abcdefgh", "12345678", "password1", "myPassword9", "a1b2c3d4e5f6g7h8i9j0k1l2m3n4o5p6q"},
		},
		{
			name:    validator.NameEmail,
			valid:   []string{"user@example.com", "first.last@sub.example.org", "o'brien_99@mail-host.co"},
			invalid: []string{"", "ab", "user@example", "user@@example.com", "user@.example.com", "@example.com", "user@example.com.", ".user@example.com"},
		},
		{
			name:    validator.NamePhone,
			valid:   []string{"(212) 555-1234", "212.555.1234", "2125551234"},
			invalid: []string{"", "212-55-1234", "(012) 555-1234", "(222) 555-1234", "(212) 055-1234", "(212) 511-1234", "2345678901", "9876543210"},
		},
		{
			name:    validator.NameSSN,
			valid:   []string{"123456789", "123-45-6789"},
			invalid: []string{"", "12345678", "123-456789", "123 45 6789"},
		},
		{
			name:    validator.NameSSN4,
			valid:   []string{"1234"},
			invalid: []string{"", "123", "12345", "12a4"},
		},
		{
			name:    validator.NameZip,
			valid:   []string{"12345"},
			invalid: []string{"", "1234", "123456", "1234a"},
		},
		{
			name:    validator.NameZip4,
			valid:   []string{"12345", "12345-6789"},
			invalid: []string{"", "123456789", "12345-678"},
		},
		{
			name:    validator.NameDate,
			valid:   []string{"01/15/2020", "01-15-2020", "02/29/2020", "12/31/1999"},
			invalid: []string{"", "1/15/2020", "02/29/2021", "02/30/2020", "13/01/2020", "00/10/2020", "01/32/2020", "01/15/20"},
		},
		{
			name:    validator.NameCreditCardNumber,
			valid:   []string{"4111111111111111", "4111 1111 1111 1111", "4111-1111-1111-1111", "5500000000000004"},
			invalid: []string{"", "4111111111111112", "411111111111111", "4111 1111-1111 1111"},
		},
		{
			name:    validator.NameCreditCardExpiry,
			valid:   []string{"01/2030", "12/1999"},
			invalid: []string{"", "1/2030", "01-2030", "01/30"},
		},
		{
			name:    validator.NameCardVerification,
			valid:   []string{"123", "000"},
			invalid: []string{"", "12", "1234", "12a"},
		},
		{
			name:    validator.NameBankRoutingNumber,
			valid:   []string{"021000021", "011000015"},
			invalid: []string{"", "123456789", "000000000", "02100002", "02100002a", "021000021021"},
		},
		{
			name:    validator.NameRequired,
			valid:   []string{"x", "  "},
			invalid: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rs := resolve(t, tt.name)
			for _, v := range tt.valid {
				assert.True(t, rs.IsValid(v), "%s should accept %q: %v", tt.name, v, verdicts(rs, v))
			}
			for _, v := range tt.invalid {
				assert.False(t, rs.IsValid(v), "%s should reject %q: %v", tt.name, v, verdicts(rs, v))
			}
		})
	}
}

func TestCatalogue_ChecksumRulesAreSeparate(t *testing.T) {
	t.Parallel()

	t.Run("luhn fails while length passes", func(t *testing.T) {
		t.Parallel()
		rs := resolve(t, validator.NameCreditCardNumber)
		assert.Equal(t, []validator.Verdict{validator.Pass, validator.Pass}, verdicts(rs, "4111111111111111"))
		assert.Equal(t, []validator.Verdict{validator.Pass, validator.Fail}, verdicts(rs, "4111111111111112"))
	})

	t.Run("routing checksum fails while length passes", func(t *testing.T) {
		t.Parallel()
		rs := resolve(t, validator.NameBankRoutingNumber)
		assert.Equal(t, []validator.Verdict{validator.Pass, validator.Pass}, verdicts(rs, "021000021"))
		assert.Equal(t, []validator.Verdict{validator.Fail, validator.Pass}, verdicts(rs, "123456789"))
	})
}

func TestCatalogue_EmailMinLengthRules(t *testing.T) {
	t.Parallel()

	rs := resolve(t, validator.NameEmail)
	got := verdicts(rs, "a@b")
	// The "@ and ." rule waits for five characters.
	assert.Equal(t, validator.NotApplicable, got[2])
	assert.Equal(t, validator.Fail, got[1])

	got = verdicts(rs, "")
	assert.Equal(t, validator.Fail, got[0])
	assert.Equal(t, validator.NotApplicable, got[1])
	assert.Equal(t, validator.NotApplicable, got[2])
}

func TestCatalogue_Meta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		maxLength   int
		placeholder string
	}{
		{validator.NamePassword, 32, ""},
		{validator.NameEmail, 48, ""},
		{validator.NamePhone, 14, "(XXX) XXX-XXXX"},
		{validator.NameSSN, 11, "XXX-XX-XXXX"},
		{validator.NameSSN4, 4, "XXXX"},
		{validator.NameZip, 5, "XXXXX"},
		{validator.NameZip4, 9, "XXXXX-XXXX"},
		{validator.NameDate, 10, "mm/dd/yyyy"},
		{validator.NameCreditCardNumber, 19, "XXXX-XXXX-XXXX-XXXX"},
		{validator.NameCreditCardExpiry, 7, "mm/yyyy"},
		{validator.NameCardVerification, 3, ""},
		{validator.NameBankRoutingNumber, 9, ""},
	}

	for _, tt := range tests {
		rs := resolve(t, tt.name)
		assert.Equal(t, tt.maxLength, rs.Meta.MaxLength, tt.name)
		assert.Equal(t, tt.placeholder, rs.Meta.Placeholder, tt.name)
	}
}

func TestCatalogue_Aliases(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{validator.NameCreditCardNumber, validator.AliasCreditCardNumber},
		{validator.NameCreditCardExpiry, validator.AliasCreditCardExpiry},
		{validator.NameCardVerification, validator.AliasCardVerification},
		{validator.NameBankRoutingNumber, validator.AliasBankRoutingNumber},
	}
	for _, p := range pairs {
		a, b := resolve(t, p[0]), resolve(t, p[1])
		assert.Equal(t, a.Meta, b.Meta, p[1])
		require.Equal(t, a.Len(), b.Len(), p[1])
		for i := range a.Rules {
			assert.Equal(t, a.Rules[i].Message, b.Rules[i].Message, p[1])
		}
	}
}

func TestCatalogue_RequiredDefinitionMatchesRequiredRule(t *testing.T) {
	t.Parallel()

	rs := resolve(t, validator.NameRequired)
	require.Equal(t, 1, rs.Len())
	r := validator.RequiredRule("")
	assert.Equal(t, r.Message, rs.Rules[0].Message)
	assert.Equal(t, r.Help, rs.Rules[0].Help)
	assert.Equal(t, r.ShowOnFirstFocus, rs.Rules[0].ShowOnFirstFocus)
}
