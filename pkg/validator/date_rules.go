package validator

func dateDefinition() Definition {
	return Definition{
		MaxLength:   10,
		Placeholder: "mm/dd/yyyy",
		Rules: []RuleDef{
			{
				Message:   "Enter a proper date format (e.g., mm/dd/yyyy)",
				Predicate: ValidDate,
			},
		},
	}
}
