// Package llm holds the shared error taxonomy for the go-bedrock library.
//
// Every failure crossing a package boundary is a *llm.Error with a stable
// Code, so callers can branch on failure kind without string matching on
// messages. The helpers (IsUnknownModel, IsMalformedResponse, ...) work
// through error wrapping.
package llm
