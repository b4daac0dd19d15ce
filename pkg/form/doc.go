// Package form aggregates submit-time validation over the fields of a form.
//
// Validate evaluates every field of the container in submit mode. When any
// field fails, the error summary becomes visible with one entry per failing
// field, in document order, and Config.OnError receives the ErrorList.
// Otherwise the summary is hidden and Config.OnSuccess runs.
//
//	f, err := form.Attach(form.Fields{name, email, zip}, form.Config{
//	    Summary: "errorSummary",
//	    Submits: true,
//	    OnError: func(errs form.ErrorList) { /* ... */ },
//	})
//	if err != nil {
//	    return err
//	}
//	if !f.Click() {
//	    // prevent the default submission
//	}
package form
