package registry

import (
	"strconv"
	"sync"
)

// TracerIdentity is the tracer name/version pair associated with a
// target type. It is written once per target during startup and is
// immutable afterwards.
//
// Either field may be empty. An empty Name defers the naming decision
// to a per-method override; the span wrapper treats the combination of
// an empty Name and no override as a configuration error.
type TracerIdentity struct {
	// Name identifies the tracer obtained from the provider for all
	// methods of the target, unless a per-method override is set.
	//
	// Example values: "user-service", "payment-processor"
	Name string

	// Version is the instrumentation version reported alongside Name.
	// Optional.
	Version string
}

// AttributeTag marks one positional call argument for recording as a
// span attribute. Tags are stored per (target, method) pair in
// registration order.
type AttributeTag struct {
	// AttributeName is the suffix of the recorded attribute key; the
	// span wrapper prefixes it with "parameter.". If empty at
	// registration time, the decimal ParameterIndex is used instead.
	AttributeName string

	// ParameterIndex is the zero-based position of the call argument
	// whose value is recorded. Tags whose index is out of range for a
	// given call are skipped silently.
	ParameterIndex int
}

// methodKey addresses the attribute-tag sequence of one method.
type methodKey struct {
	target string
	method string
}

// Registry is the metadata store read by the span wrapper. The zero
// value is not usable; create instances with NewRegistry.
//
// Registry is safe for concurrent use. The intended access pattern is
// write-once during startup followed by read-only lookups, but the
// internal lock makes out-of-order registration safe as well.
type Registry struct {
	mu         sync.RWMutex
	identities map[string]TracerIdentity
	tags       map[methodKey][]AttributeTag
}

// Default is the process-wide registry used by components that
// register themselves from init functions.
var Default = NewRegistry()

// NewRegistry creates an empty metadata registry.
func NewRegistry() *Registry {
	return &Registry{
		identities: make(map[string]TracerIdentity),
		tags:       make(map[methodKey][]AttributeTag),
	}
}

// SetTracerIdentity records the tracer identity for a target type,
// overwriting any previously registered value for that target.
//
// Registration with an empty target name is ignored.
func (r *Registry) SetTracerIdentity(target string, identity TracerIdentity) {
	if target == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.identities[target] = identity
}

// LookupTracerIdentity returns the tracer identity registered for the
// target, and whether one was registered at all.
func (r *Registry) LookupTracerIdentity(target string) (TracerIdentity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.identities[target]
	return identity, ok
}

// AddAttributeTag appends one attribute tag to the sequence registered
// for (target, method). Tags accumulate in registration order, which
// is also the order the span wrapper writes them in.
//
// Registrations that cannot be resolved to a named method (empty
// target or method) and tags with a negative parameter index are
// ignored without error: a missing tag only loses an attribute, never
// correctness.
//
// A tag with an empty AttributeName is stored under the decimal form
// of its parameter index, so a tag for index 2 records the attribute
// "parameter.2".
func (r *Registry) AddAttributeTag(target, method string, tag AttributeTag) {
	if target == "" || method == "" || tag.ParameterIndex < 0 {
		return
	}

	if tag.AttributeName == "" {
		tag.AttributeName = strconv.Itoa(tag.ParameterIndex)
	}

	key := methodKey{target: target, method: method}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags[key] = append(r.tags[key], tag)
}

// AttributeTags returns the attribute tags registered for
// (target, method), in registration order. The returned slice is a
// copy; mutating it does not affect the registry. A method with no
// registered tags yields nil.
func (r *Registry) AttributeTags(target, method string) []AttributeTag {
	key := methodKey{target: target, method: method}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.tags[key]
	if !ok {
		return nil
	}

	tags := make([]AttributeTag, len(stored))
	copy(tags, stored)
	return tags
}
