package validator

// Names of the built-in validators.
const (
	NamePassword           = "password"
	NameEmail              = "email"
	NamePhone              = "phone"
	NameSSN                = "ssn"
	NameSSN4               = "ssn4"
	NameZip                = "zip"
	NameZip4               = "zip4"
	NameDate               = "date"
	NameCreditCardNumber   = "ccnum"
	NameCreditCardExpiry   = "ccexp"
	NameCardVerification   = "ccv"
	NameBankRoutingNumber  = "abartn"
	NameRequired           = "required"
	AliasCreditCardNumber  = "credit-card-number"
	AliasCreditCardExpiry  = "credit-card-expiry"
	AliasCardVerification  = "card-verification-value"
	AliasBankRoutingNumber = "bank-routing-number"
)

type catalogueEntry struct {
	names      []string
	definition Definition
}

// catalogue lists every built-in definition with the names it is registered under.
func catalogue() []catalogueEntry {
	return []catalogueEntry{
		{names: []string{NamePassword}, definition: passwordDefinition()},
		{names: []string{NameEmail}, definition: emailDefinition()},
		{names: []string{NamePhone}, definition: phoneDefinition()},
		{names: []string{NameSSN}, definition: ssnDefinition()},
		{names: []string{NameSSN4}, definition: ssn4Definition()},
		{names: []string{NameZip}, definition: zipDefinition()},
		{names: []string{NameZip4}, definition: zip4Definition()},
		{names: []string{NameDate}, definition: dateDefinition()},
		{names: []string{NameCreditCardNumber, AliasCreditCardNumber}, definition: creditCardNumberDefinition()},
		{names: []string{NameCreditCardExpiry, AliasCreditCardExpiry}, definition: creditCardExpiryDefinition()},
		{names: []string{NameCardVerification, AliasCardVerification}, definition: cardVerificationDefinition()},
		{names: []string{NameBankRoutingNumber, AliasBankRoutingNumber}, definition: bankRoutingNumberDefinition()},
		{names: []string{NameRequired}, definition: requiredDefinition()},
	}
}

// BuiltinNames returns every name registered by WithBuiltins, in catalogue order.
func BuiltinNames() []string {
	var names []string
	for _, e := range catalogue() {
		names = append(names, e.names...)
	}
	return names
}

func requiredDefinition() Definition {
	return Definition{
		Rules: []RuleDef{
			{
				Message:          DefaultRequiredMessage,
				Pattern:          `.+`,
				Help:             boolPtr(false),
				ShowOnFirstFocus: boolPtr(false),
			},
		},
	}
}
