package client

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"log/slog"
	"os"

	"github.com/shhac/burrow/internal/domain"
)

// FromSettings builds a Sender from client settings, loading any
// certificate files they name.
func FromSettings(logger *slog.Logger, s domain.ClientSettings) (*Sender, error) {
	opts := []Option{
		WithTimeout(s.Timeout),
		WithFollowRedirects(s.FollowRedirects),
		WithInsecureSkipVerify(s.InsecureSkipVerify),
		WithProxy(s.Proxy),
		WithUserAgent(s.UserAgent),
	}
	if s.MaxRedirects > 0 {
		opts = append(opts, WithMaxRedirects(s.MaxRedirects))
	}

	if s.CACertFile != "" {
		pool, err := loadRootCAs(s.CACertFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithRootCAs(pool))
	}

	if s.ClientCertFile != "" || s.ClientKeyFile != "" {
		if s.ClientCertFile == "" || s.ClientKeyFile == "" {
			return nil, fmt.Errorf("client certificate and key must both be set")
		}
		cert, err := tls.LoadX509KeyPair(s.ClientCertFile, s.ClientKeyFile)
		if err != nil {
			return nil, fmt.Errorf("load client certificate: %w", err)
		}
		opts = append(opts, WithClientCertificates(cert))
	}

	return New(logger, opts...), nil
}

func loadRootCAs(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read CA certificate: %w", err)
	}

	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", path)
	}
	return pool, nil
}
