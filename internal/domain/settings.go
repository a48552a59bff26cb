package domain

import "time"

// ClientSettings configures how requests are sent. They come from the
// config file and are overridden by preferences saved in the UI.
type ClientSettings struct {
	Timeout            time.Duration // 0 waits indefinitely
	FollowRedirects    bool
	MaxRedirects       int
	InsecureSkipVerify bool
	CACertFile         string // PEM bundle added to the system roots
	ClientCertFile     string // client certificate for mutual TLS
	ClientKeyFile      string
	Proxy              string
	UserAgent          string
}
