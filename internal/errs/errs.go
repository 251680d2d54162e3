// Package errs provides a single log-and-propagate helper in the style
// of cogentcore.org/core/base/errors.Log: fallible calls that the
// caller wants logged but not turned into a fatal path read as
// errs.Log(thing()) instead of a manual if err != nil block.
package errs

import "log/slog"

// Log logs err at error level if it is non-nil, and returns it
// unchanged so the call can be wrapped inline:
//
//	if err := errs.Log(scene.BuildBVH()); err != nil { ... }
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}
