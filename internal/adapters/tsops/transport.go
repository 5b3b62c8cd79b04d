package tsops

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

type TLSOptions struct {
	// CAFile is a PEM bundle trusted in addition to the system roots. The
	// TSOps endpoints are served with an internal CA chain.
	CAFile             string
	InsecureSkipVerify bool
}

func NewHTTPClient(opts TLSOptions) (*http.Client, error) {
	caFile := strings.TrimSpace(opts.CAFile)
	if caFile == "" && !opts.InsecureSkipVerify {
		return &http.Client{}, nil
	}

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: opts.InsecureSkipVerify, //nolint:gosec // opt-in for lab environments
	}

	if caFile != "" {
		pool, err := x509.SystemCertPool()
		if err != nil || pool == nil {
			pool = x509.NewCertPool()
		}

		pem, err := os.ReadFile(caFile)
		if err != nil {
			return nil, fmt.Errorf("read ca file: %w", err)
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.New("ca file contains no PEM certificates")
		}
		tlsConfig.RootCAs = pool
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig

	return &http.Client{Transport: transport}, nil
}
