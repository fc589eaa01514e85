// Package transport implements the endpoint fetch seam over HTTP. It is the
// only place in the module that performs network I/O.
package transport
