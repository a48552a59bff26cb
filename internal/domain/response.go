package domain

import "time"

// Snapshot is the transient record of one completed HTTP exchange.
// It is held for one render and replaced by the next submission.
type Snapshot struct {
	ID         string
	Timestamp  time.Time
	Method     string
	URL        string        // final request URL including query string
	Status     int           // 0 when no response was received
	StatusText string        // e.g. "200 OK", or the failure title
	Elapsed    time.Duration // measured by the request/response hooks
	Size       int           // serialized body length + serialized header length
	Headers    Pairs         // response headers in the order the client reported them
	Body       []byte        // raw response body
	Data       any           // decoded JSON body, or the body as a string
	Err        string        // transport error message, if any
}

// Failed reports whether the exchange ended without an HTTP response.
func (s *Snapshot) Failed() bool {
	return s.Err != ""
}

// IsSuccess reports a 2xx status.
func (s *Snapshot) IsSuccess() bool {
	return s.Status >= 200 && s.Status < 300
}
