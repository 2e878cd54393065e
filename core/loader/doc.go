// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which names it, says whether
// it is enabled and registers its routes.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps registered features and loads the enabled ones in order
// with LoadAll. Features such as 'availability', 'integrity' and 'snapshot'
// are developed and tested in isolation and wired together in cmd/start.go.
package loader
