package errors

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"net/url"
)

// ClassifyTransportError converts a failure of the network exchange itself
// (no HTTP response arrived) into a UIError. It returns nil when err is not
// a recognised transport failure.
func ClassifyTransportError(err error) *UIError {
	if err == nil {
		return nil
	}

	details := err.Error()

	var (
		dnsErr      *net.DNSError
		opErr       *net.OpError
		netErr      net.Error
		unknownCA   x509.UnknownAuthorityError
		hostnameErr x509.HostnameError
		certErr     *tls.CertificateVerificationError
		urlErr      *url.Error
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, ErrTimeout):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Timeout",
			Message:  "The server took too long to respond.",
			Recovery: []string{"Try again", "Increase the timeout in Preferences"},
			Details:  details,
		}

	case errors.As(err, &dnsErr):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Host Not Found",
			Message:  "The host name could not be resolved.",
			Recovery: []string{"Check the URL for typos", "Check your DNS or network connection"},
			Details:  details,
		}

	case errors.As(err, &certErr), errors.As(err, &unknownCA), errors.As(err, &hostnameErr):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "TLS Verification Failed",
			Message:  "The server certificate could not be verified.",
			Recovery: []string{"Check the host name", "Disable TLS verification in Preferences for test servers"},
			Details:  details,
		}

	case errors.As(err, &opErr) && opErr.Op == "dial", errors.Is(err, ErrConnectionFailed):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Connection Failed",
			Message:  "Unable to connect to the server.",
			Recovery: []string{
				"Check that the server is running",
				"Verify the host and port",
				"Check your network connection",
			},
			Details: details,
		}

	case errors.As(err, &netErr) && netErr.Timeout():
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Timeout",
			Message:  "The network operation timed out.",
			Recovery: []string{"Try again"},
			Details:  details,
		}

	case errors.As(err, &urlErr):
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Request Failed",
			Message:  "The request could not be completed.",
			Recovery: []string{"Check the URL and try again"},
			Details:  details,
		}
	}

	return nil
}
