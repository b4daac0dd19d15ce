package presenter_test

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/field"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/form"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/presenter"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/validator"
)

func TestField(t *testing.T) {
	t.Parallel()

	el := field.NewInput("zip", "text")
	f, err := field.Attach(validator.NewDefaultRegistry(), el, field.Config{Validator: validator.NameZip, Label: "Zip"})
	require.NoError(t, err)

	el.SetValue("12a")
	f.KeyUp()

	view := presenter.Field(f.State())
	assert.Equal(t, "zip", view.ID)
	assert.Equal(t, "Zip", view.Label)
	assert.Equal(t, "zipValidations", view.DescribedBy)
	assert.True(t, view.Invalid)
	assert.True(t, view.PanelVisible)
	assert.Equal(t, "interacting", view.Interaction)
	assert.Equal(t, []presenter.RuleView{{Message: "Enter 5 digits", Kind: "requirement", Visible: true, Help: true}}, view.Rules)
	assert.Equal(t, "5", view.Attributes["maxlength"])

	b, err := presenter.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "zipValidations", decoded["describedBy"])
	assert.Equal(t, map[string]any{"warning": false, "error": false}, decoded["group"])
}

func TestForm(t *testing.T) {
	t.Parallel()

	reg := validator.NewDefaultRegistry()
	el := field.NewInput("zip", "text")
	el.SetValue("1")
	zip, err := field.Attach(reg, el, field.Config{Validator: validator.NameZip, Label: "Zip"})
	require.NoError(t, err)

	f, err := form.Attach(form.Fields{zip}, form.Config{Summary: "summary"})
	require.NoError(t, err)

	view := presenter.Form(f)
	assert.False(t, view.SummaryVisible)
	assert.Empty(t, view.Errors)
	assert.Empty(t, view.Fields)

	require.False(t, f.Validate())
	view = presenter.Form(f, zip, nil)
	assert.True(t, view.SummaryVisible)
	assert.Equal(t, []presenter.EntryView{{FieldID: "zip", Href: "#zip", Text: "Zip is invalid."}}, view.Entries)
	require.Len(t, view.Errors, 1)
	assert.Equal(t, []string{"Enter 5 digits"}, view.Errors[0].Messages)
	require.Len(t, view.Fields, 1)
	assert.True(t, view.Fields[0].Group.Error)

	var buf bytes.Buffer
	require.NoError(t, presenter.Encode(&buf, view))
	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, `"summaryId":"summary"`)
	assert.Contains(t, out, `"href":"#zip"`)
}

func TestMarshal_Error(t *testing.T) {
	t.Parallel()

	_, err := presenter.Marshal(make(chan int))
	assert.Error(t, err)
}
