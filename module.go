package jsonattr

import (
	"errors"
	"fmt"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// NewModule creates an Fx module providing a named *Accessor.
// The name is used as both the Fx module name and the DI named tag: the
// module consumes a Record named name from the container and provides an
// *Accessor under the same name. Call multiple times with different names to
// wire accessors for multiple record types.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, registry *Registry, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	if registry == nil {
		return fx.Error(ErrNilRegistry)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func(record Record) (*Accessor, error) {
					return New(record, registry, opts...)
				},
				fx.ParamTags(fmt.Sprintf(`name:"%s"`, name)),
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
