// Package edge implements gradient-based (Canny-style) edge extraction,
// the middle stage of the image-to-mesh pipeline: the caller removes noise
// upstream, this package produces a thin binary edge map, and the
// triangulation stage downstream samples the 255-valued pixels as input
// points.
//
// # Pipeline
//
// Extract runs the stages in fixed order, each stage reading its
// predecessor's frozen buffer and writing a fresh one:
//
//  1. Grayscale reduction: RGB -> luminance using ITU-R BT.601 weights
//     (0.299*R + 0.587*G + 0.114*B), truncated to 8 bits.
//
//  2. Gradient estimation: 3x3 Sobel kernel pair over interior pixels.
//     magnitude = sqrt(gx² + gy²), stored as uint8
//     direction = atan2(gy, gx) in degrees, range (-180, 180]
//     Border pixels are never assigned a gradient and stay zero.
//
//  3. Non-maximum suppression: each interior pixel's direction is
//     discretized to one of four orientations and the pixel is kept only
//     if its magnitude is >= both neighbors along that orientation.
//
//  4. Adaptive thresholds: low = mean + stddev, high = mean + 2*stddev,
//     computed over the full suppressed map.
//
//  5. Hysteresis tracking: pixels at or above the high threshold seed an
//     8-connected flood through pixels at or above the low threshold;
//     everything unreached is cleared. The output is strictly {0, 255}.
//
// # Magnitude truncation
//
// Gradient magnitudes and the derived thresholds are stored in 8 bits with
// plain integer truncation, so values above 255 wrap rather than saturate.
// High-contrast steps therefore store a wrapped magnitude. Downstream
// behavior depends on this, so the conversion is deliberate; see trunc8.
//
// # Concurrency
//
// All stages are synchronous and single-threaded per call. No state is
// shared between calls; every buffer is allocated fresh inside Extract.
package edge
