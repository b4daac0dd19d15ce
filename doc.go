// Package adavalidate bootstraps the form validation engine: it builds the
// logger and the validator registry from configuration and attaches fields and
// forms to them.
//
// The rule engine lives in pkg/validator, per-field evaluation in pkg/field
// and submit aggregation in pkg/form. This package only wires them together.
//
//	engine, err := adavalidate.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	email, err := engine.AttachField(el, field.Config{Validator: validator.NameEmail, Label: "Email"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	signup, err := engine.AttachForm(form.Fields{email}, form.Config{Summary: "errorSummary", Submits: true})
//
// # Configuration
//
//	VALIDATION_LOG_LEVEL        debug, info (default), warn, error
//	VALIDATION_LOG_FORMAT       json (default) or text
//	VALIDATION_BUILTINS         register the built-in catalogue (default true)
//	VALIDATION_EXTENSIONS_FILE  YAML file with additional definitions
//
// A .env file in the working directory is read when present.
package adavalidate
