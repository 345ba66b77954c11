// Package sixaxis reads a PS3 SixAxis controller through the Linux
// input subsystem and turns its raw event stream into four calibrated
// analogue axis values in [-1.0, 1.0] plus button press state with
// handler dispatch.
//
// A Controller is created disconnected; Connect finds the device and
// starts a background goroutine that feeds events into the state
// machine. Axis values auto-calibrate as more extreme readings are
// observed, with configurable dead and hot zones per the Config.
// Motion sensing and rumble output are not supported.
package sixaxis
