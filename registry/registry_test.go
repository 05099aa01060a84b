package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTracerIdentity_RoundTrip(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	reg.SetTracerIdentity("UserService", TracerIdentity{Name: "user-tracer", Version: "1.2.3"})

	identity, ok := reg.LookupTracerIdentity("UserService")
	require.True(t, ok)
	assert.Equal(t, "user-tracer", identity.Name)
	assert.Equal(t, "1.2.3", identity.Version)
}

func TestSetTracerIdentity_Overwrites(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	reg.SetTracerIdentity("UserService", TracerIdentity{Name: "old"})
	reg.SetTracerIdentity("UserService", TracerIdentity{Name: "new", Version: "2"})

	identity, ok := reg.LookupTracerIdentity("UserService")
	require.True(t, ok)
	assert.Equal(t, "new", identity.Name)
	assert.Equal(t, "2", identity.Version)
}

func TestSetTracerIdentity_EmptyTargetIgnored(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	reg.SetTracerIdentity("", TracerIdentity{Name: "ghost"})

	_, ok := reg.LookupTracerIdentity("")
	assert.False(t, ok)
}

func TestLookupTracerIdentity_Unregistered(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	identity, ok := reg.LookupTracerIdentity("Nobody")

	assert.False(t, ok)
	assert.Empty(t, identity.Name)
	assert.Empty(t, identity.Version)
}

func TestAddAttributeTag_PreservesRegistrationOrder(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	// Registered out of parameter order on purpose.
	reg.AddAttributeTag("Svc", "Do", AttributeTag{AttributeName: "second", ParameterIndex: 1})
	reg.AddAttributeTag("Svc", "Do", AttributeTag{AttributeName: "first", ParameterIndex: 0})

	tags := reg.AttributeTags("Svc", "Do")
	require.Len(t, tags, 2)
	assert.Equal(t, "second", tags[0].AttributeName)
	assert.Equal(t, 1, tags[0].ParameterIndex)
	assert.Equal(t, "first", tags[1].AttributeName)
	assert.Equal(t, 0, tags[1].ParameterIndex)
}

func TestAddAttributeTag_FallbackName(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	reg.AddAttributeTag("Svc", "Do", AttributeTag{ParameterIndex: 2})

	tags := reg.AttributeTags("Svc", "Do")
	require.Len(t, tags, 1)
	assert.Equal(t, "2", tags[0].AttributeName)
}

func TestAddAttributeTag_UnresolvableTargetIsNoOp(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	reg.AddAttributeTag("Svc", "", AttributeTag{AttributeName: "x", ParameterIndex: 0})
	reg.AddAttributeTag("", "Do", AttributeTag{AttributeName: "x", ParameterIndex: 0})
	reg.AddAttributeTag("Svc", "Do", AttributeTag{AttributeName: "x", ParameterIndex: -1})

	assert.Nil(t, reg.AttributeTags("Svc", "Do"))
	assert.Nil(t, reg.AttributeTags("Svc", ""))
	assert.Nil(t, reg.AttributeTags("", "Do"))
}

func TestAttributeTags_ScopedPerMethod(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	reg.AddAttributeTag("Svc", "A", AttributeTag{AttributeName: "a", ParameterIndex: 0})
	reg.AddAttributeTag("Svc", "B", AttributeTag{AttributeName: "b", ParameterIndex: 0})
	reg.AddAttributeTag("Other", "A", AttributeTag{AttributeName: "other", ParameterIndex: 0})

	tagsA := reg.AttributeTags("Svc", "A")
	require.Len(t, tagsA, 1)
	assert.Equal(t, "a", tagsA[0].AttributeName)

	tagsB := reg.AttributeTags("Svc", "B")
	require.Len(t, tagsB, 1)
	assert.Equal(t, "b", tagsB[0].AttributeName)
}

func TestAttributeTags_ReturnsCopy(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	reg.AddAttributeTag("Svc", "Do", AttributeTag{AttributeName: "x", ParameterIndex: 0})

	tags := reg.AttributeTags("Svc", "Do")
	require.Len(t, tags, 1)
	tags[0].AttributeName = "mutated"

	fresh := reg.AttributeTags("Svc", "Do")
	require.Len(t, fresh, 1)
	assert.Equal(t, "x", fresh[0].AttributeName)
}

func TestDefaultRegistry_Shared(t *testing.T) {
	t.Parallel()

	Default.SetTracerIdentity("registry-test-default", TracerIdentity{Name: "default-tracer"})

	identity, ok := Default.LookupTracerIdentity("registry-test-default")
	require.True(t, ok)
	assert.Equal(t, "default-tracer", identity.Name)
}
