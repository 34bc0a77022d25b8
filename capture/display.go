package capture

import (
	"sync"

	"github.com/gogpu/haircolor"
)

// Status describes what the Display is showing.
type Status int

const (
	// StatusEmpty shows nothing yet.
	StatusEmpty Status = iota
	// StatusReady shows a recolored photo.
	StatusReady
	// StatusNoRegion means the last capture found no hair to recolor.
	StatusNoRegion
	// StatusFailed means the last capture or recolor failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusReady:
		return "ready"
	case StatusNoRegion:
		return "no-region"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Display is the observable output of the pipeline. Writes happen on the
// Loop; reads may happen anywhere.
type Display struct {
	mu     sync.RWMutex
	image  *haircolor.Pixmap
	status Status
	subs   []chan struct{}
}

// NewDisplay creates an empty Display.
func NewDisplay() *Display {
	return &Display{}
}

// Image returns the image being shown, or nil.
func (d *Display) Image() *haircolor.Pixmap {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.image
}

// Status returns the current status.
func (d *Display) Status() Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

// Subscribe returns a channel that receives a value after each change.
// Notifications coalesce when the subscriber falls behind.
func (d *Display) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	d.mu.Lock()
	d.subs = append(d.subs, ch)
	d.mu.Unlock()
	return ch
}

// set replaces the shown status and image. A nil img keeps the previous
// image unless status is StatusEmpty.
func (d *Display) set(img *haircolor.Pixmap, status Status) {
	d.mu.Lock()
	if img != nil || status == StatusEmpty {
		d.image = img
	}
	d.status = status
	subs := d.subs
	d.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
