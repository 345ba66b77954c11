package sixaxis

import (
	"errors"
	"os"
	"time"
)

// escapeString trims NUL padding out of a fixed-size ioctl buffer.
func escapeString(src []byte) string {
	n := 0
	for _, b := range src {
		if b != 0 {
			src[n] = b
			n++
		}
	}
	return string(src[:n])
}

// openFilePersistent opens an input device node, retrying briefly on
// permission errors. udev takes a moment to apply group permissions to
// freshly created device nodes, so a hotplug-triggered open can hit
// EACCES on the first attempt.
func openFilePersistent(path string) (f *os.File, err error) {
	for i := 0; i < 5; i++ {
		if f, err = os.OpenFile(path, os.O_RDONLY, 0); err != nil {
			if errors.Is(err, os.ErrPermission) {
				if i == 4 {
					return
				}
				timer := time.NewTimer(200 * time.Millisecond)
				<-timer.C
				timer.Stop()
				continue
			} else {
				return
			}
		}
		break
	}
	return
}
