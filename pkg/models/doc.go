// Package models maps model identifiers to their wire formats.
//
// A single registry holds, per model identifier, the request builder, the
// complete-response decoder, the streaming-chunk decoder and the multimodal
// flag. Keeping all four behind one key means the set of models that can be
// built and the set that can be decoded are the same set by construction.
//
// Adding a model family is additive: implement Family, declare its
// identifiers and call Register from an init function.
package models
