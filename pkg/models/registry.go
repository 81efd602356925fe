package models

import (
	"sort"
	"sync"

	"github.com/inercia/go-bedrock/pkg/captioner"
)

// Family implements the wire format of one model family.
type Family interface {
	// NewRequest builds the family-specific request payload for modelID.
	NewRequest(modelID string, question *string, image *captioner.Image, d Defaults) (ModelRequest, error)

	// DecodeResponse extracts text from a complete response payload.
	DecodeResponse(modelID string, payload []byte) (string, error)

	// DecodeChunk extracts text from a single streaming chunk. Chunks that
	// carry no text decode to "".
	DecodeChunk(modelID string, payload []byte) (string, error)
}

type entry struct {
	family     Family
	multimodal bool
}

// modelRegistry holds all registered model identifiers
type modelRegistry struct {
	mu     sync.RWMutex
	models map[string]entry
}

var globalRegistry = &modelRegistry{
	models: make(map[string]entry),
}

// Register binds a model identifier to its family implementation.
// Multimodal marks identifiers that accept image input.
func Register(modelID string, family Family, multimodal bool) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.models[modelID] = entry{family: family, multimodal: multimodal}
}

func lookup(modelID string) (entry, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	e, exists := globalRegistry.models[modelID]
	return e, exists
}

// Known reports whether modelID is in the registered set.
func Known(modelID string) bool {
	_, exists := lookup(modelID)
	return exists
}

// Multimodal reports whether modelID is registered and accepts image input.
func Multimodal(modelID string) bool {
	e, exists := lookup(modelID)
	return exists && e.multimodal
}

// KnownModels returns all registered model identifiers, sorted.
func KnownModels() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	ids := make([]string, 0, len(globalRegistry.models))
	for id := range globalRegistry.models {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MultimodalModels returns the registered identifiers that accept image
// input, sorted.
func MultimodalModels() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	ids := make([]string, 0, len(globalRegistry.models))
	for id, e := range globalRegistry.models {
		if e.multimodal {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
