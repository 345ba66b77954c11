package sixaxis

import (
	"fmt"
	"os"
	"strings"
)

// DeviceInfo describes one input device node found during discovery.
type DeviceInfo struct {
	Path string
	Name string
}

// ListDevices enumerates the event device nodes under /dev/input and
// queries each for its reported name. Nodes that cannot be opened
// (typically a permissions problem on another user's device) are
// skipped rather than failing the whole scan.
func ListDevices() (devices []DeviceInfo, err error) {
	entries, err := os.ReadDir(inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "event") {
			continue
		}
		path := fmt.Sprintf("%s/%s", inputPath, entry.Name())
		dev, err := openDevice(path)
		if err != nil {
			continue
		}
		devices = append(devices, DeviceInfo{Path: dev.path, Name: dev.name})
		_ = dev.close()
	}
	return devices, nil
}

// findDeviceByName returns the path of the first input device whose
// reported name matches exactly. Non-genuine controllers often report
// a different name; callers can override the name in Config.
func findDeviceByName(name string) (path string, err error) {
	devices, err := ListDevices()
	if err != nil {
		return "", err
	}
	for _, dev := range devices {
		if dev.Name == name {
			return dev.Path, nil
		}
	}
	return "", fmt.Errorf("%w: no device named %q", ErrDeviceNotFound, name)
}
