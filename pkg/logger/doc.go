// Package logger builds the *slog.Logger used by the validation engine and
// the attribute constructors that keep key names consistent across packages.
//
//	log := logger.New(
//	    logger.WithDevelopment("checkout-form"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("field validated",
//	    logger.FieldID("email"),
//	    logger.Mode(true),
//	    logger.Count("errors", 2),
//	)
//
// ParseLevel and ParseFormat convert configuration strings into option values.
// The top-level "value" key is always masked; WithRedact masks more.
//
// Library packages accept a nil logger and fall back to Discard.
package logger
