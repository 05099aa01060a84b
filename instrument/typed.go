package instrument

import (
	"context"
	"fmt"
)

// Typed adapts a WrappedFunc to return a concrete result type instead
// of any. A nil result or an error passes through with the zero value;
// a non-nil result of the wrong dynamic type fails with ErrResultType.
//
// Example:
//
//	getUser := instrument.Typed[*User](
//	    instr.WrapFunc("UserService", "GetUser", getUserBody),
//	)
//
//	user, err := getUser(ctx, "usr_123") // user is *User
func Typed[T any](fn WrappedFunc) func(ctx context.Context, args ...any) (T, error) {
	return func(ctx context.Context, args ...any) (T, error) {
		var zero T

		value, err := fn(ctx, args...)
		if err != nil || value == nil {
			return zero, err
		}

		typed, ok := value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: got %T", ErrResultType, value)
		}
		return typed, nil
	}
}
