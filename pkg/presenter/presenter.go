package presenter

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/field"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/form"
)

// RuleView is one hint as rendered next to a field.
type RuleView struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Visible bool   `json:"visible"`
	Help    bool   `json:"help"`
}

// GroupView carries the markers of the element group wrapping a field.
type GroupView struct {
	Warning bool `json:"warning"`
	Error   bool `json:"error"`
}

// FieldView is the render state of one field.
type FieldView struct {
	ID           string            `json:"id"`
	Label        string            `json:"label"`
	Validator    string            `json:"validator,omitempty"`
	Interaction  string            `json:"interaction"`
	Invalid      bool              `json:"invalid"`
	DescribedBy  string            `json:"describedBy"`
	PanelVisible bool              `json:"panelVisible"`
	Group        GroupView         `json:"group"`
	Rules        []RuleView        `json:"rules"`
	Attributes   map[string]string `json:"attributes"`
}

// FieldErrorView lists the submit errors of one field.
type FieldErrorView struct {
	FieldID  string   `json:"fieldId"`
	Label    string   `json:"label"`
	Messages []string `json:"messages"`
}

// EntryView is one summary link.
type EntryView struct {
	FieldID string `json:"fieldId"`
	Href    string `json:"href"`
	Text    string `json:"text"`
}

// FormView is the render state of a form and, optionally, its fields.
type FormView struct {
	SummaryID      string           `json:"summaryId,omitempty"`
	SummaryVisible bool             `json:"summaryVisible"`
	Errors         []FieldErrorView `json:"errors"`
	Entries        []EntryView      `json:"entries"`
	Fields         []FieldView      `json:"fields,omitempty"`
}

// Field converts a field snapshot into its view.
func Field(st field.State) FieldView {
	rules := make([]RuleView, len(st.Hints.Hints))
	for i, h := range st.Hints.Hints {
		rules[i] = RuleView{
			Message: h.Message,
			Kind:    string(h.Kind),
			Visible: h.Visible,
			Help:    h.Help,
		}
	}

	attrs := st.Attributes
	if attrs == nil {
		attrs = map[string]string{}
	}

	return FieldView{
		ID:           st.ID,
		Label:        st.Label,
		Validator:    st.Validator,
		Interaction:  st.Interaction,
		Invalid:      st.Invalid,
		DescribedBy:  st.DescribedBy,
		PanelVisible: st.Hints.Visible,
		Group:        GroupView{Warning: st.GroupWarning, Error: st.GroupError},
		Rules:        rules,
		Attributes:   attrs,
	}
}

// Form converts a form and the given fields into a view.
func Form(f *form.Form, fields ...*field.Field) FormView {
	summary := f.Summary()
	errs := f.Errors()

	view := FormView{
		SummaryID:      summary.ID,
		SummaryVisible: summary.Visible,
		Errors:         make([]FieldErrorView, len(errs)),
		Entries:        make([]EntryView, len(summary.Entries)),
	}
	for i, fe := range errs {
		view.Errors[i] = FieldErrorView{FieldID: fe.FieldID, Label: fe.Label, Messages: fe.Messages}
	}
	for i, e := range summary.Entries {
		view.Entries[i] = EntryView{FieldID: e.FieldID, Href: e.Href, Text: e.Text}
	}
	for _, fld := range fields {
		if fld != nil {
			view.Fields = append(view.Fields, Field(fld.State()))
		}
	}
	return view
}

// Marshal encodes a view as JSON.
func Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("presenter: marshal view: %w", err)
	}
	return b, nil
}

// Encode writes a view to w as a JSON document followed by a newline.
func Encode(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("presenter: encode view: %w", err)
	}
	return nil
}
