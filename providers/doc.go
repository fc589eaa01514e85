// Package providers hosts the imagery provider families and the shared tiled
// base they build on. Each family package decodes its own options schema and
// returns a ready core.ImageryProvider; dispatch happens in core, wiring in
// the root package.
package providers
