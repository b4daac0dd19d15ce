package validator

func creditCardNumberDefinition() Definition {
	return Definition{
		MaxLength:   19,
		Placeholder: "XXXX-XXXX-XXXX-XXXX",
		Rules: []RuleDef{
			{
				Message: "Enter 16 digits",
				Patterns: []string{
					`^\d{16}$`,
					`^\d{4}\s\d{4}\s\d{4}\s\d{4}$`,
					`^\d{4}-\d{4}-\d{4}-\d{4}$`,
				},
			},
			{
				Message:   "Input is not a valid credit card number",
				Predicate: Luhn,
			},
		},
	}
}

func creditCardExpiryDefinition() Definition {
	return Definition{
		MaxLength:   7,
		Placeholder: "mm/yyyy",
		Rules: []RuleDef{
			{
				Message: "Enter a proper format (e.g., mm/yyyy)",
				Pattern: `^\d{2}\/\d{4}$`,
			},
		},
	}
}

func cardVerificationDefinition() Definition {
	return Definition{
		MaxLength: 3,
		Rules: []RuleDef{
			{
				Message: "Enter the last 3 digits of the ID number on the back of your Credit Card",
				Pattern: `^\d{3}$`,
			},
		},
	}
}

func bankRoutingNumberDefinition() Definition {
	return Definition{
		MaxLength: 9,
		Rules: []RuleDef{
			{
				Message:   "Enter a valid bank account routing number",
				Predicate: ABARoutingNumber,
			},
			{
				Message: "Enter 9 digits",
				Pattern: `^\d{9}$`,
			},
		},
	}
}
