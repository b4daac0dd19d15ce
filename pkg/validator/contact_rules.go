package validator

const emailFormatMessage = "Enter a proper email format (e.g., email@domain.com)"

func emailDefinition() Definition {
	return Definition{
		MaxLength: 48,
		Rules: []RuleDef{
			{
				Message: emailFormatMessage,
				Pattern: `.+`,
			},
			{
				Message:   emailFormatMessage,
				Pattern:   `^['_a-zA-Z0-9-]+(\.['_a-zA-Z0-9-]+)*@[a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)*(\.[a-zA-Z]{2,})$`,
				MinLength: 1,
				Help:      boolPtr(false),
			},
			{
				Message:   `Input must contain "@" and "."`,
				Pattern:   `^(?=.*@)(?=.*\.).+$`,
				MinLength: 5,
				Help:      boolPtr(false),
			},
			{
				Kind:    Restriction,
				Message: "Input must not have more than 48 characters",
				Pattern: `^.{49,}$`,
			},
			{
				Kind:     Restriction,
				Message:  `Input must not start or end with "@" and "."`,
				Patterns: []string{`^@`, `@$`, `^\.`, `\.$`},
			},
			{
				Kind:    Restriction,
				Message: `Input must not contain more than one "@"`,
				Pattern: `^[^@]*@[^@]*(?=@)`,
			},
			{
				Kind:    Restriction,
				Message: `Input must not have "." immediately following "@"`,
				Pattern: `@\.`,
			},
		},
	}
}

func phoneDefinition() Definition {
	return Definition{
		MaxLength:   14,
		Placeholder: "(XXX) XXX-XXXX",
		Rules: []RuleDef{
			{
				Message: "Enter 10 digits, no hyphens",
				Pattern: `^\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}$`,
			},
			{
				Kind:      Restriction,
				Message:   "Invalid Phone Number",
				Predicate: PhoneNumberInvalid,
			},
		},
	}
}

func zipDefinition() Definition {
	return Definition{
		MaxLength:   5,
		Placeholder: "XXXXX",
		Rules: []RuleDef{
			{
				Message: "Enter 5 digits",
				Pattern: `^\d{5}$`,
			},
		},
	}
}

func zip4Definition() Definition {
	return Definition{
		MaxLength:   9,
		Placeholder: "XXXXX-XXXX",
		Rules: []RuleDef{
			{
				Message:  "Enter 5 plus 4 digits",
				Patterns: []string{`^\d{5}$`, `^\d{5}-\d{4}$`},
			},
		},
	}
}
