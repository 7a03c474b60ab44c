// Package imaging holds the caller-side collaborators of the edge
// extraction core: decoding and caching source images, the noise-removal
// pre-blur the core expects to have run upstream, and an optional size cap
// for oversized inputs.
//
// The edge core (internal/edge) never performs I/O or resampling;
// everything format- or size-related lives here so the core stays a pure
// buffer-to-buffer computation.
//
// # Thread Safety
//
// Cache is safe for concurrent use. Denoise and Fit are stateless and
// return fresh images, so they can run concurrently on different inputs.
package imaging
