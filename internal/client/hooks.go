package client

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// timing is the per-request record the interceptor pair writes into.
// It travels in the request context so concurrent senders never share one.
type timing struct {
	start   time.Time
	elapsed time.Duration
}

type timingKey struct{}

func withTiming(ctx context.Context) (context.Context, *timing) {
	t := &timing{}
	return context.WithValue(ctx, timingKey{}, t), t
}

func timingFrom(ctx context.Context) *timing {
	if ctx == nil {
		return nil
	}
	t, _ := ctx.Value(timingKey{}).(*timing)
	return t
}

func (t *timing) finish() {
	if t == nil || t.start.IsZero() {
		return
	}
	t.elapsed = time.Since(t.start)
}

// stampStart is the request interceptor: it records when the call began.
func stampStart(_ *resty.Client, r *resty.Request) error {
	if t := timingFrom(r.Context()); t != nil {
		t.start = time.Now()
	}
	return nil
}

// stampEnd is the response interceptor. resty runs it for every response
// that arrived, whatever its status code.
func stampEnd(_ *resty.Client, resp *resty.Response) error {
	if resp.Request != nil {
		timingFrom(resp.Request.Context()).finish()
	}
	return nil
}

// stampError closes the timing record when no response arrived.
func stampError(r *resty.Request, _ error) {
	if r != nil {
		timingFrom(r.Context()).finish()
	}
}
