package sixaxis

import "errors"

// ErrDeviceNotFound is returned by Connect when no input device
// matching the configured controller name is present.
var ErrDeviceNotFound = errors.New("no sixaxis controller found")
