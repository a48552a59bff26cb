package client

import (
	"context"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/burrow/internal/domain"
	"github.com/shhac/burrow/internal/logging"
)

func newTLSServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"secure":true}`))
	}))
	t.Cleanup(srv.Close)

	caPath := filepath.Join(t.TempDir(), "ca.pem")
	block := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw})
	require.NoError(t, os.WriteFile(caPath, block, 0600))
	return srv, caPath
}

func TestFromSettings_TLS(t *testing.T) {
	srv, caPath := newTLSServer(t)

	tests := []struct {
		name     string
		settings domain.ClientSettings
		wantOK   bool
	}{
		{"unknown authority", domain.ClientSettings{}, false},
		{"custom CA", domain.ClientSettings{CACertFile: caPath}, true},
		{"skip verify", domain.ClientSettings{InsecureSkipVerify: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromSettings(logging.NewNopLogger(), tt.settings)
			require.NoError(t, err)

			snap := s.Send(context.Background(), Request{Method: "GET", URL: srv.URL})
			if tt.wantOK {
				require.False(t, snap.Failed(), snap.Err)
				assert.Equal(t, http.StatusOK, snap.Status)
				return
			}
			assert.True(t, snap.Failed())
			assert.Equal(t, "TLS Verification Failed", snap.StatusText)
		})
	}
}

func TestFromSettings_Errors(t *testing.T) {
	dir := t.TempDir()
	notPEM := filepath.Join(dir, "bad.pem")
	require.NoError(t, os.WriteFile(notPEM, []byte("nope"), 0600))

	tests := []struct {
		name     string
		settings domain.ClientSettings
	}{
		{"missing CA file", domain.ClientSettings{CACertFile: filepath.Join(dir, "missing.pem")}},
		{"CA file without certificates", domain.ClientSettings{CACertFile: notPEM}},
		{"cert without key", domain.ClientSettings{ClientCertFile: notPEM}},
		{"unreadable key pair", domain.ClientSettings{ClientCertFile: notPEM, ClientKeyFile: notPEM}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSettings(logging.NewNopLogger(), tt.settings)
			assert.Error(t, err)
		})
	}
}

func TestFromSettings_Options(t *testing.T) {
	s, err := FromSettings(logging.NewNopLogger(), domain.ClientSettings{
		Timeout:         2 * time.Second,
		FollowRedirects: false,
		MaxRedirects:    3,
		UserAgent:       "custom/1.0",
	})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, s.timeout)
	assert.False(t, s.followRedirect)
	assert.Equal(t, 3, s.maxRedirects)
	assert.Equal(t, "custom/1.0", s.userAgent)

	s, err = FromSettings(logging.NewNopLogger(), domain.ClientSettings{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxRedirects, s.maxRedirects)
}
