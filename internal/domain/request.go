package domain

import "strings"

// Methods lists the HTTP methods offered by the method selector.
var Methods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}

// KeyValue is one editable key/value row, used for both query
// parameters and headers.
type KeyValue struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Pairs is an ordered list of key/value rows.
type Pairs []KeyValue

// Map folds the rows into a map. Rows with an empty key are skipped and a
// later duplicate key overwrites an earlier one.
func (p Pairs) Map() map[string]string {
	out := make(map[string]string, len(p))
	for _, kv := range p {
		if kv.Key == "" {
			continue
		}
		out[kv.Key] = kv.Value
	}
	return out
}

// Get returns the value of the last row whose key matches name, compared
// case-insensitively.
func (p Pairs) Get(name string) (string, bool) {
	var (
		value string
		found bool
	)
	for _, kv := range p {
		if kv.Key != "" && strings.EqualFold(kv.Key, name) {
			value, found = kv.Value, true
		}
	}
	return value, found
}

// Draft is the request being composed in the request panel.
type Draft struct {
	Method  string `json:"method" validate:"required,oneof=GET POST PUT PATCH DELETE HEAD OPTIONS"`
	URL     string `json:"url" validate:"required,http_url"`
	Params  Pairs  `json:"params"`
	Headers Pairs  `json:"headers"`
	Body    string `json:"body"` // raw editor text, parsed as JSON at submit time
}

// Normalize upper-cases the method, trims the URL and adds an http://
// scheme when the user typed a bare host.
func (d Draft) Normalize() Draft {
	d.Method = strings.ToUpper(strings.TrimSpace(d.Method))
	d.URL = strings.TrimSpace(d.URL)
	if d.URL != "" && !strings.Contains(d.URL, "://") {
		d.URL = "http://" + d.URL
	}
	return d
}
