package resource

import (
	"context"
	"io"
)

// RateLimitedWriter wraps an io.Writer with the controller's output limit.
type RateLimitedWriter struct {
	ctx context.Context
	w   io.Writer
	rc  *Controller
}

// NewRateLimitedWriter creates a new RateLimitedWriter.
func NewRateLimitedWriter(ctx context.Context, w io.Writer, rc *Controller) *RateLimitedWriter {
	return &RateLimitedWriter{
		ctx: ctx,
		w:   w,
		rc:  rc,
	}
}

// Write implements io.Writer. Buffers larger than the limiter's burst are
// written in burst-sized chunks.
func (w *RateLimitedWriter) Write(p []byte) (int, error) {
	chunk := w.rc.OutputBurst()
	if chunk <= 0 {
		return w.w.Write(p)
	}

	written := 0
	for len(p) > 0 {
		n := min(len(p), chunk)
		if err := w.rc.AcquireOutput(w.ctx, n); err != nil {
			return written, err
		}
		m, err := w.w.Write(p[:n])
		written += m
		if err != nil {
			return written, err
		}
		p = p[n:]
	}
	return written, nil
}
