package instrument

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
)

// defaultSpanName derives the span name used when no WithSpanName
// override is set: "<Target>.<Method>".
func defaultSpanName(target, method string) string {
	return target + "." + method
}

// attributeValue converts an arbitrary Go value to an OpenTelemetry
// attribute. Common scalar types map to their native attribute kinds;
// anything else is rendered with fmt.Sprint.
func attributeValue(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	default:
		// For unsupported types, convert to string
		return attribute.String(key, fmt.Sprint(v))
	}
}
