package field

// Element tags a field can be attached to.
const (
	TagInput  = "input"
	TagSelect = "select"
)

// Element is the presentation layer's view of a form control.
type Element interface {
	ID() string
	// Tag is the lower-case element name, e.g. "input".
	Tag() string
	// Type is the input type attribute, empty for selects.
	Type() string
	Value() string
	Disabled() bool
	Required() bool
	// Invalid reports a server-side aria-invalid="true" present at attach time.
	Invalid() bool
}

// BasicElement is a plain in-memory Element.
type BasicElement struct {
	ElementID   string
	TagName     string
	InputType   string
	Text        string
	IsDisabled  bool
	IsRequired  bool
	AriaInvalid bool
}

// NewInput returns a text-like input element.
func NewInput(id, inputType string) *BasicElement {
	return &BasicElement{ElementID: id, TagName: TagInput, InputType: inputType}
}

// NewSelect returns a select element.
func NewSelect(id string) *BasicElement {
	return &BasicElement{ElementID: id, TagName: TagSelect}
}

func (e *BasicElement) ID() string { return e.ElementID }
func (e *BasicElement) Tag() string { return e.TagName }
func (e *BasicElement) Type() string { return e.InputType }
func (e *BasicElement) Value() string { return e.Text }
func (e *BasicElement) Disabled() bool { return e.IsDisabled }
func (e *BasicElement) Required() bool { return e.IsRequired }
func (e *BasicElement) Invalid() bool { return e.AriaInvalid }
func (e *BasicElement) SetValue(v string) { e.Text = v }
