// Package capture connects a camera to a haircolor.Changer.
//
// A capture is started on the UI side, completes on whatever goroutine the
// camera delivers its callback on, and is processed on a worker goroutine.
// Results are handed back to a single UI Loop, which is the only writer of
// the Display.
package capture

import (
	"context"
	"image"
	"sync"
)

// Shot is a captured photo and its hair matte. Matte is nil when the camera
// could not segment any hair.
type Shot struct {
	Photo image.Image
	Matte image.Image
}

// Pending is a one-shot capture result. The camera resolves it exactly once;
// any number of goroutines may wait on it.
type Pending struct {
	once sync.Once
	done chan struct{}
	shot Shot
}

// NewPending creates an unresolved capture.
func NewPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Resolve completes the capture. Only the first call has an effect; it
// reports whether this call was that one.
func (p *Pending) Resolve(s Shot) bool {
	resolved := false
	p.once.Do(func() {
		p.shot = s
		close(p.done)
		resolved = true
	})
	return resolved
}

// Done is closed when the capture is resolved.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the capture is resolved or ctx is done.
func (p *Pending) Wait(ctx context.Context) (Shot, error) {
	select {
	case <-p.done:
		return p.shot, nil
	case <-ctx.Done():
		return Shot{}, ctx.Err()
	}
}

// Camera starts a photo capture. Implementations return immediately and
// resolve p from their own completion callback.
type Camera interface {
	TakePhoto(p *Pending)
}

// CameraFunc adapts a function to the Camera interface.
type CameraFunc func(p *Pending)

// TakePhoto calls f(p).
func (f CameraFunc) TakePhoto(p *Pending) {
	f(p)
}
