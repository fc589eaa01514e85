// Package core contains canonical asset-resolution domain contracts, entities,
// and orchestration logic. Lower-level adapters (transport, caches, imagery
// provider families) must depend on this package; core must not depend on
// provider-specific or transport-specific adapters.
package core
