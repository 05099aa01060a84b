package registry

import (
	"go.uber.org/fx"
)

// FXModule provides a Uber FX module that supplies the metadata
// registry to the dependency injection graph.
//
// The module provides a single *Registry instance shared by every
// consumer in the application, so identities and attribute tags
// registered by one component are visible to the instrumentor that
// wraps another.
//
// Usage:
//
//	app := fx.New(
//	    registry.FXModule,
//	    instrument.FXModule,
//	    // other modules...
//	)
//
// Components that register metadata should accept *Registry in their
// constructors and perform registration there, before any wrapped
// method can be invoked.
var FXModule = fx.Module("registry",
	fx.Provide(NewRegistry),
)
