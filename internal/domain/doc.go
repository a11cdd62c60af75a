// Package domain contains the core entities and value objects for frameblend.
//
// This package is the innermost layer of the engine. It has no dependencies
// on logging, configuration or I/O and contains only pixel-buffer types and
// their invariants.
//
// # Entities
//
//   - [Shape]: height, width and channel count of a frame
//   - [Frame]: an 8-bit HWC pixel buffer viewed through a [Shape]
//   - [Batch]: an ordered, non-empty sequence of same-shaped frames
//
// # Ownership
//
// Frames are views. Constructors wrap caller-owned buffers without copying,
// and nothing in the engine writes to an input frame's pixels. Only the
// reducer allocates, when it produces an averaged frame.
package domain
