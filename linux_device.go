package sixaxis

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	inputPath = "/dev/input"

	deviceNameLen = 128
	// EVIOCGNAME(deviceNameLen), get the device's reported name
	evGetName = 0x80004506 + (deviceNameLen << 16)
)

// rawEvent mirrors the kernel's input_event struct as read from an
// event device node.
type rawEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// device wraps an open /dev/input/eventN node.
type device struct {
	file *os.File
	path string
	name string
}

func openDevice(path string) (*device, error) {
	f, err := openFilePersistent(path)
	if err != nil {
		return nil, err
	}

	dev := &device{
		file: f,
		path: path,
	}
	if err = ioctlStr(f, evGetName, &dev.name); err != nil {
		_ = f.Close()
		return nil, err
	}
	return dev, nil
}

func (d *device) close() error {
	return d.file.Close()
}

// startReadLoop spawns the single background goroutine that reads raw
// events from the device and delivers them to HandleEvent in arrival
// order. The returned stop function cancels the loop and closes the
// file, which also unblocks a read in progress.
func (c *Controller) startReadLoop(dev *device) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		for {
			var e rawEvent
			if binary.Read(dev.file, binary.LittleEndian, &e) != nil {
				return
			}

			select {
			case <-ctx.Done():
				return
			default:
			}

			c.HandleEvent(Event{
				Type:  EventType(e.Type),
				Code:  e.Code,
				Value: e.Value,
			})
		}
	}()

	return func() {
		cancel()
		_ = dev.close()
	}
}

func ioctl(f *os.File, request int, dest unsafe.Pointer) (err error) {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL,
		f.Fd(),
		uintptr(request),
		uintptr(dest),
	)
	if errno != 0 {
		return fmt.Errorf("ioctl error: %d", errno)
	}
	return
}

func ioctlStr(f *os.File, request int, dest *string) (err error) {
	info := make([]byte, deviceNameLen)
	if err = ioctl(f, request, unsafe.Pointer(&info[0])); err != nil {
		return
	}
	*dest = escapeString(info)
	return
}
