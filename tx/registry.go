// SPDX-License-Identifier: MIT
// Dev KryperAI

package tx

import (
	"fmt"
	"sort"
	"sync"
)

// Factory returns a fresh, empty message ready to be decoded into.
type Factory func() Decodable

// Registry maps type URLs to message factories. It is the explicit table of
// every message kind a process understands.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds factories to the table. A type URL may only be registered
// once; on a duplicate nothing from this call is added.
func (r *Registry) Register(factories ...Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	batch := make(map[string]Factory, len(factories))
	for _, f := range factories {
		url := f().TypeURL()
		if url == "" {
			return fmt.Errorf("register %T: empty type url", f())
		}
		if _, ok := r.factories[url]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateTypeURL, url)
		}
		if _, ok := batch[url]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateTypeURL, url)
		}
		batch[url] = f
	}

	for url, f := range batch {
		r.factories[url] = f
	}
	return nil
}

func (r *Registry) Lookup(typeURL string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[typeURL]
	return f, ok
}

// TypeURLs lists every registered type URL in sorted order.
func (r *Registry) TypeURLs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.factories))
	for url := range r.factories {
		out = append(out, url)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Decode parses msg into whichever registered type its URL names.
func (r *Registry) Decode(msg Msg) (Decodable, error) {
	f, ok := r.Lookup(msg.typeURL)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTypeURL, msg.typeURL)
	}

	out := f()
	if err := out.Unmarshal(msg.value); err != nil {
		return nil, &CodecError{Op: "decode", TypeURL: msg.typeURL, Err: err}
	}
	return out, nil
}

// Encode is ToMsg restricted to registered message kinds.
func (r *Registry) Encode(m MsgProto) (Msg, error) {
	if _, ok := r.Lookup(m.TypeURL()); !ok {
		return Msg{}, fmt.Errorf("%w: %s", ErrUnknownTypeURL, m.TypeURL())
	}
	return ToMsg(m)
}

// New returns an empty message for typeURL, for callers that fill it from
// another representation (JSON) before encoding.
func (r *Registry) New(typeURL string) (Decodable, error) {
	f, ok := r.Lookup(typeURL)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTypeURL, typeURL)
	}
	return f(), nil
}
