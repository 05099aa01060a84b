// Package registry implements the instrumentation metadata store.
//
// The registry holds two kinds of metadata, both written during
// application startup and read on every instrumented invocation:
//
//   - TracerIdentity: a tracer name/version pair registered once per
//     target type. It is the default tracer identity for every
//     instrumented method of that target.
//   - AttributeTag: a (attribute name, parameter index) pair
//     registered per method. Each tag tells the span wrapper to copy
//     one positional call argument into a span attribute.
//
// # Lifecycle
//
// Registration happens at construction/init time, strictly before any
// instrumented method is invoked. After startup, the registry is only
// read. The Registry is safe for concurrent use; lookups return
// defensive copies so callers can never alias internal state.
//
// # Basic Usage
//
//	reg := registry.NewRegistry()
//
//	// Register the tracer identity for a target type.
//	reg.SetTracerIdentity("UserService", registry.TracerIdentity{
//		Name:    "user-service-tracer",
//		Version: "1.0.0",
//	})
//
//	// Tag the first parameter of UserService.GetUser as a span attribute.
//	reg.AddAttributeTag("UserService", "GetUser", registry.AttributeTag{
//		AttributeName:  "userID",
//		ParameterIndex: 0,
//	})
//
// A package-level Default registry is provided for components that
// register themselves from init functions without dependency
// injection. Applications built on FX should prefer the *Registry
// provided by FXModule.
package registry
