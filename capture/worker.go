package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/haircolor"
	"github.com/gogpu/haircolor/chart"
)

// Request is work a Worker can be asked to do.
type Request int

const (
	// RequestCapture takes a photo and recolors it with the current chart.
	RequestCapture Request = iota
	// RequestRecolor advances to the next chart and recolors the last photo.
	RequestRecolor
)

func (r Request) String() string {
	switch r {
	case RequestCapture:
		return "capture"
	case RequestRecolor:
		return "recolor"
	default:
		return "unknown"
	}
}

// ErrBusy is returned by Trigger while another request is in flight.
var ErrBusy = errors.New("capture: request in flight")

// Worker runs the recoloring pipeline off the UI Loop. It owns the Changer
// and the chart Matrix; both are only touched while holding mu.
type Worker struct {
	camera  Camera
	changer *haircolor.Changer
	charts  *chart.Matrix
	loop    *Loop
	display *Display

	mu       sync.Mutex
	busy     atomic.Bool
	requests chan Request
}

// NewWorker creates a Worker. Results are posted to loop, which writes them
// to display.
func NewWorker(camera Camera, changer *haircolor.Changer, charts *chart.Matrix, loop *Loop, display *Display) *Worker {
	return &Worker{
		camera:   camera,
		changer:  changer,
		charts:   charts,
		loop:     loop,
		display:  display,
		requests: make(chan Request, 1),
	}
}

// Trigger queues r for Run without blocking. Only one request is in flight
// at a time; Trigger returns ErrBusy until the previous one has finished.
func (w *Worker) Trigger(r Request) error {
	if !w.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	w.requests <- r
	return nil
}

// Run serves triggered requests and runs the Loop until ctx is done or the
// Loop fails.
func (w *Worker) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.loop.Run(ctx)
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case r := <-w.requests:
				var err error
				switch r {
				case RequestCapture:
					err = w.Capture(ctx)
				case RequestRecolor:
					err = w.Recolor(ctx)
				}
				w.busy.Store(false)
				if err != nil && ctx.Err() == nil {
					haircolor.Logger().Warn("capture: request failed", "request", r.String(), "err", err)
				}
			}
		}
	})
	return g.Wait()
}

// Capture takes a photo, waits for the camera to deliver it, recolors the
// hair with the current chart and posts the result to the Loop.
func (w *Worker) Capture(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	p := NewPending()
	w.camera.TakePhoto(p)
	shot, err := p.Wait(ctx)
	if err != nil {
		return err
	}

	if err := w.changer.SetupPhoto(shot.Photo, shot.Matte); err != nil {
		status := StatusFailed
		if errors.Is(err, haircolor.ErrNoRegion) {
			status = StatusNoRegion
		}
		w.post(nil, status)
		return fmt.Errorf("capture: %w", err)
	}
	w.changer.SetupColor(w.charts.Current())
	return w.render()
}

// Recolor switches to the next chart and re-renders the last photo. Without
// a photo it only advances the chart.
func (w *Worker) Recolor(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	w.changer.SetupColor(w.charts.Next())
	if w.changer.State() == haircolor.StateEmpty {
		return nil
	}
	return w.render()
}

func (w *Worker) render() error {
	img, err := w.changer.Render()
	if err != nil {
		w.post(nil, StatusFailed)
		return fmt.Errorf("capture: %w", err)
	}
	w.post(img, StatusReady)
	return nil
}

func (w *Worker) post(img *haircolor.Pixmap, status Status) {
	d := w.display
	if !w.loop.Post(func() { d.set(img, status) }) {
		haircolor.Logger().Debug("capture: loop stopped, dropping result", "status", status.String())
	}
}
