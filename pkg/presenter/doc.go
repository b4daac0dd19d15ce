// Package presenter turns field and form state into JSON view models for the
// presentation layer. The engine never styles anything itself; a client
// script applies these views to the document.
package presenter
