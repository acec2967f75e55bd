// Package deprecation reports use of retired settings and fields.
package deprecation

import (
	"fmt"

	"go.uber.org/zap"
)

var ErrDeprecated = fmt.Errorf("deprecated")

// Field describes something that is retired. When Fail is false a use is
// logged as a warning and allowed; otherwise it is an error.
type Field struct {
	Name    string
	Message string
	Fail    bool
}

func (f Field) String() string {
	return fmt.Sprintf("The attribute %s is deprecated: %s", f.Name, f.Message)
}

// Check records one use of f.
func (f Field) Check() error {
	if f.Fail {
		return fmt.Errorf("%w: %s", ErrDeprecated, f.String())
	}
	zap.L().Warn(f.String(), zap.String("attribute", f.Name))
	return nil
}

// Get runs f.Check and, if the use is allowed, returns get().
func Get[T any](f Field, get func() T) (T, error) {
	if err := f.Check(); err != nil {
		var zero T
		return zero, err
	}
	return get(), nil
}
