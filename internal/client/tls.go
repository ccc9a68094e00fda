package client

import "crypto/tls"

// buildTLSConfig returns the *tls.Config for the connection. With insecure
// set, both certificate validation and hostname verification are skipped;
// this reproduces the legacy operator script's posture and is only ever
// enabled by the explicit --insecure flag.
func buildTLSConfig(insecure bool) *tls.Config {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	if insecure {
		tlsConfig.InsecureSkipVerify = true
	}

	return tlsConfig
}
