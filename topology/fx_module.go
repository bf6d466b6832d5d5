package topology

import (
	"github.com/queueworks/mqkit/observability"
	"go.uber.org/fx"
)

// FXModule provides the topology registry and applier to an fx application.
//
// The application supplies the routing units (typically from its own
// config) and a Transport; logger and observer are injected when available:
//
//	app := fx.New(
//		rabbit.FXModule,
//		topology.FXModule,
//		fx.Provide(func() []topology.Unit { return appUnits() }),
//	)
var FXModule = fx.Module("topology",
	fx.Provide(
		NewRegistryWithDI,
		NewApplierWithDI,
	),
)

// RegistryParams groups the dependencies needed to build the registry.
type RegistryParams struct {
	fx.In

	Units []Unit
}

// NewRegistryWithDI builds a registry from the provided units, in slice
// order. Any registration error aborts application startup: a topology that
// fails validation must never reach the broker.
func NewRegistryWithDI(params RegistryParams) (*Registry, error) {
	registry := NewRegistry()
	for _, unit := range params.Units {
		if err := registry.Register(unit); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// ApplierParams groups the dependencies needed to create an applier.
type ApplierParams struct {
	fx.In

	Transport Transport
	Logger    Logger                 `optional:"true"`
	Observer  observability.Observer `optional:"true"`
}

// NewApplierWithDI creates an applier with the optional logger and
// observer attached.
func NewApplierWithDI(params ApplierParams) *Applier {
	applier := NewApplier(params.Transport)
	if params.Logger != nil {
		applier = applier.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		applier = applier.WithObserver(params.Observer)
	}
	return applier
}
