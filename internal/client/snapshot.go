package client

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/shhac/burrow/internal/domain"
	apperrors "github.com/shhac/burrow/internal/errors"
)

func responseSnapshot(req Request, resp *resty.Response, elapsed time.Duration) *domain.Snapshot {
	body := resp.Body()
	headers := flattenHeaders(resp.Header())
	data := decodeBody(body)

	return &domain.Snapshot{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Method:     req.Method,
		URL:        finalURL(req, resp),
		Status:     resp.StatusCode(),
		StatusText: statusText(resp),
		Elapsed:    elapsed,
		Size:       computeSize(data, headers),
		Headers:    headers,
		Body:       body,
		Data:       data,
	}
}

func failedSnapshot(req Request, err error, elapsed time.Duration) *domain.Snapshot {
	text := err.Error()
	if uiErr := apperrors.ClassifyTransportError(err); uiErr != nil {
		text = uiErr.Title
	}
	return &domain.Snapshot{
		ID:         uuid.NewString(),
		Timestamp:  time.Now(),
		Method:     req.Method,
		URL:        req.URL,
		StatusText: text,
		Elapsed:    elapsed,
		Err:        err.Error(),
	}
}

func finalURL(req Request, resp *resty.Response) string {
	if resp.RawResponse != nil && resp.RawResponse.Request != nil && resp.RawResponse.Request.URL != nil {
		return resp.RawResponse.Request.URL.String()
	}
	return req.URL
}

// statusText prefers the server's status line and falls back to the
// canonical reason phrase.
func statusText(resp *resty.Response) string {
	if s := resp.Status(); s != "" {
		return s
	}
	code := resp.StatusCode()
	return strings.TrimSpace(http.StatusText(code))
}

// flattenHeaders lower-cases names, joins repeated values with ", " and
// orders the result by name.
func flattenHeaders(h http.Header) domain.Pairs {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make(domain.Pairs, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, domain.KeyValue{
			Key:   strings.ToLower(name),
			Value: strings.Join(h[name], ", "),
		})
	}
	return pairs
}

// decodeBody returns the JSON value of body, or the body as a string when
// it is not JSON. An empty body decodes to the empty string.
func decodeBody(body []byte) any {
	if len(bytes.TrimSpace(body)) == 0 {
		return string(body)
	}
	if !gjson.ValidBytes(body) {
		return string(body)
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return string(body)
	}
	return v
}

// computeSize is the length of the serialized data plus the length of the
// serialized header object.
func computeSize(data any, headers domain.Pairs) int {
	return jsonLen(data) + jsonLen(headers.Map())
}

func jsonLen(v any) int {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return 0
	}
	return len(bytes.TrimRight(buf.Bytes(), "\n"))
}
