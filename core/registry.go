package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ConstructorRegistry is the dispatch table from external type tags to
// imagery constructors. Registration happens at wiring time; resolution only
// ever read-locks it.
type ConstructorRegistry struct {
	mu           sync.RWMutex
	constructors map[ExternalType]ImageryConstructor
}

func NewConstructorRegistry() *ConstructorRegistry {
	return &ConstructorRegistry{constructors: make(map[ExternalType]ImageryConstructor)}
}

func (r *ConstructorRegistry) Register(externalType ExternalType, constructor ImageryConstructor) error {
	if constructor == nil {
		return fmt.Errorf("core: imagery constructor is nil")
	}
	tag := ExternalType(strings.TrimSpace(string(externalType)))
	if tag == ExternalTypeNone {
		return fmt.Errorf("core: external type tag is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.constructors[tag]; exists {
		return fmt.Errorf("core: external type already registered: %s", tag)
	}
	r.constructors[tag] = constructor
	return nil
}

func (r *ConstructorRegistry) Get(externalType ExternalType) (ImageryConstructor, bool) {
	tag := ExternalType(strings.TrimSpace(string(externalType)))
	if tag == ExternalTypeNone {
		return nil, false
	}
	r.mu.RLock()
	constructor, ok := r.constructors[tag]
	r.mu.RUnlock()
	return constructor, ok
}

func (r *ConstructorRegistry) Tags() []ExternalType {
	r.mu.RLock()
	tags := make([]ExternalType, 0, len(r.constructors))
	for tag := range r.constructors {
		tags = append(tags, tag)
	}
	r.mu.RUnlock()
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
