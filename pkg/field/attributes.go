package field

import (
	"strconv"

	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/validator"
)

// Attributes computed at attach time.
const (
	AttrDescribedBy    = "aria-describedby"
	AttrRequired       = "aria-required"
	AttrValidation     = "data-validation"
	AttrMaxLength      = "maxlength"
	AttrAutocapitalize = "autocapitalize"
	AttrAutocorrect    = "autocorrect"
	AttrPlaceholder    = "placeholder"
)

// textLikeTypes receive length, casing and placeholder attributes.
var textLikeTypes = map[string]bool{
	"text":     true,
	"email":    true,
	"tel":      true,
	"password": true,
}

func bindAttributes(f *Field, inputType string) map[string]string {
	attrs := map[string]string{
		AttrDescribedBy: validator.HintsID(f.id),
		AttrValidation:  "true",
	}
	if f.validatorName != "" {
		attrs[AttrValidation] = f.validatorName
	}
	if f.required {
		attrs[AttrRequired] = "true"
	}

	if f.tag != TagInput || !textLikeTypes[inputType] {
		return attrs
	}

	meta := f.rules.Meta
	if meta.MaxLength > 0 {
		attrs[AttrMaxLength] = strconv.Itoa(meta.MaxLength)
	}
	attrs[AttrAutocapitalize] = onOff(meta.Autocapitalize)
	attrs[AttrAutocorrect] = onOff(meta.Autocorrect)
	if meta.Placeholder != "" {
		attrs[AttrPlaceholder] = meta.Placeholder
	}
	return attrs
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
