// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which names the module, reports
// whether it is enabled, and mounts its routes.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registry and loads enabled features in registration
// order. The wardrobe and integrity features are both registered this way.
package loader
