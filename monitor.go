package sixaxis

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// DeviceEventType says whether a device node appeared or vanished.
type DeviceEventType int

const (
	DeviceAttached DeviceEventType = iota
	DeviceDetached
)

// DeviceEvent reports a change to the set of event device nodes.
type DeviceEvent struct {
	Type DeviceEventType
	Path string
}

// Monitor watches /dev/input for event device nodes appearing and
// disappearing, so applications can connect a Controller when a pad is
// plugged in and notice when it goes away. The core never depends on
// it; it is an optional collaborator around Connect and Disconnect.
type Monitor struct {
	watcher *fsnotify.Watcher
	events  chan DeviceEvent

	closeOnce sync.Once
	done      chan struct{}
}

// NewMonitor starts watching /dev/input.
func NewMonitor() (*Monitor, error) {
	return newMonitorDir(inputPath)
}

func newMonitorDir(dir string) (*Monitor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	m := &Monitor{
		watcher: watcher,
		events:  make(chan DeviceEvent, 16),
		done:    make(chan struct{}),
	}
	go m.watch()
	return m, nil
}

// Events delivers attach and detach notifications. The channel is
// closed when the monitor is closed.
func (m *Monitor) Events() <-chan DeviceEvent {
	return m.events
}

// Close stops watching and closes the event channel. Safe to call more
// than once.
func (m *Monitor) Close() error {
	var err error
	m.closeOnce.Do(func() {
		err = m.watcher.Close()
		<-m.done
		close(m.events)
	})
	return err
}

func (m *Monitor) watch() {
	defer close(m.done)

	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasPrefix(filepath.Base(event.Name), "event") {
				continue
			}
			switch {
			case event.Op.Has(fsnotify.Create):
				m.deliver(DeviceEvent{Type: DeviceAttached, Path: event.Name})
			case event.Op.Has(fsnotify.Remove):
				m.deliver(DeviceEvent{Type: DeviceDetached, Path: event.Name})
			}

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("device monitor error", "err", err)
		}
	}
}

// deliver drops the event when the consumer has fallen behind rather
// than stalling the watcher.
func (m *Monitor) deliver(e DeviceEvent) {
	select {
	case m.events <- e:
	default:
		slog.Debug("device monitor event dropped", "path", e.Path)
	}
}
