package validator

func passwordDefinition() Definition {
	return Definition{
		MaxLength: 32,
		Rules: []RuleDef{
			{
				Message: "Enter 8 to 32 characters",
				Pattern: `^.{8,32}$`,
			},
			{
				Message: "Enter at least 1 letter and at least 1 number",
				Pattern: `^(?=.*\d)(?=.*[a-zA-Z]).+$`,
			},
			{
				Kind:    Restriction,
				Message: `Input must not contain the word "Password"`,
				Pattern: `[Pp]assword`,
			},
		},
	}
}
