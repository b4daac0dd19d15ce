package validator

func ssnDefinition() Definition {
	return Definition{
		MaxLength:   11,
		Placeholder: "XXX-XX-XXXX",
		Rules: []RuleDef{
			{
				Message:  "Enter 9 digits",
				Patterns: []string{`^\d{9}$`, `^\d{3}-\d{2}-\d{4}$`},
			},
		},
	}
}

func ssn4Definition() Definition {
	return Definition{
		MaxLength:   4,
		Placeholder: "XXXX",
		Rules: []RuleDef{
			{
				Message: "Enter 4 digits",
				Pattern: `^\d{4}$`,
			},
		},
	}
}
