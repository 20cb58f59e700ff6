// SPDX-License-Identifier: MIT
// Package: unitgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w and a method prefix.
//   • Runtime code never panics; option constructors do.

package builder

import "errors"

// ErrNonFinitePoint indicates a NaN or infinite coordinate in the input.
var ErrNonFinitePoint = errors.New("builder: non-finite point")

// ErrUnknownGadget indicates an unsupported name passed to GadgetByName.
var ErrUnknownGadget = errors.New("builder: unknown gadget")

// ErrTooSmall indicates a size parameter below its documented minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a nil constructor or a constructor failure in BuildPoints.
var ErrConstructFailed = errors.New("builder: construction failed")
