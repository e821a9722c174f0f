package application

import (
	"go.uber.org/dig"
)

// RegisterProviders registers the request dispatcher with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewDispatcher); err != nil {
		return err
	}
	return container.Provide(func(impl *Dispatcher) Handler {
		return impl
	})
}
