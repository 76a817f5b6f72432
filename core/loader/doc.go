// Package loader provides the plugin-like feature loading system.
//
// Each feature (product, counting, integrity, snapshot, ui) implements the
// Feature interface and is registered with a Manager at startup.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
//   - Register() adds a feature; registration order is load order.
//   - LoadAll() mounts every enabled feature and reports the first failure.
package loader
