package form

// SummaryEntry is one line of the error summary, linking to its field.
type SummaryEntry struct {
	FieldID string
	Href    string
	Text    string
}

// Summary is the state of the form's error summary.
type Summary struct {
	// ID of the summary element, from Config.Summary.
	ID      string
	Visible bool
	// FocusRequested is set when the summary was just shown and should take focus.
	FocusRequested bool
	Entries        []SummaryEntry
}

func entriesFor(errs ErrorList) []SummaryEntry {
	entries := make([]SummaryEntry, len(errs))
	for i, fe := range errs {
		entries[i] = SummaryEntry{
			FieldID: fe.FieldID,
			Href:    "#" + fe.FieldID,
			Text:    fe.Label + " is invalid.",
		}
	}
	return entries
}

func (s Summary) clone() Summary {
	out := s
	if s.Entries != nil {
		out.Entries = make([]SummaryEntry, len(s.Entries))
		copy(out.Entries, s.Entries)
	}
	return out
}
