// Package probe inspects a live TLS endpoint and compares what it
// negotiates against a security policy. It consumes a validated
// policy; rule semantics live entirely in pkg/rules.
package probe

import (
	"context"
	"fmt"
	"net"
	"time"

	utls "github.com/refraction-networking/utls"

	"github.com/policylint/policylint/pkg/policy"
	"github.com/policylint/policylint/pkg/primitives"
)

// DefaultTimeout bounds the TCP dial and TLS handshake.
const DefaultTimeout = 10 * time.Second

// Prober dials TLS endpoints with a browser-shaped ClientHello.
type Prober struct {
	// Timeout bounds the dial; DefaultTimeout when zero.
	Timeout time.Duration

	// SkipVerify disables certificate verification. The probe reports
	// negotiated parameters, not trust, so self-signed targets are
	// common.
	SkipVerify bool

	// Hello selects the ClientHello shape; HelloChrome_Auto when
	// unset.
	Hello utls.ClientHelloID
}

// Info describes what the endpoint negotiated.
type Info struct {
	Host      string `json:"host"`
	Version   uint16 `json:"tls_version"`
	SuiteID   uint16 `json:"cipher_suite_id"`
	SuiteName string `json:"cipher_suite,omitempty"`

	// Allowed reports whether the negotiated suite appears in the
	// policy's cipher suite list.
	Allowed bool `json:"allowed_by_policy"`
}

// Do dials addr (host:port), performs a TLS handshake, and reports the
// negotiated suite against p's preferences.
func (pr *Prober) Do(ctx context.Context, addr string, p *policy.Policy) (*Info, error) {
	timeout := pr.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
		addr = net.JoinHostPort(addr, "443")
	}

	dialer := &net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", addr, err)
	}

	hello := pr.Hello
	if hello.Client == "" {
		hello = utls.HelloChrome_Auto
	}

	cfg := &utls.Config{
		ServerName:         host,
		InsecureSkipVerify: pr.SkipVerify,
	}
	uConn := utls.UClient(conn, cfg, hello)
	if deadline, ok := ctx.Deadline(); ok {
		_ = uConn.SetDeadline(deadline)
	} else {
		_ = uConn.SetDeadline(time.Now().Add(timeout))
	}
	if err := uConn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("TLS handshake with %s: %w", addr, err)
	}
	defer uConn.Close()

	state := uConn.ConnectionState()
	info := &Info{
		Host:    addr,
		Version: state.Version,
		SuiteID: state.CipherSuite,
	}
	if cs, ok := primitives.SuiteByID(state.CipherSuite); ok {
		info.SuiteName = cs.Name
	}
	if p != nil {
		info.Allowed = p.AllowsSuite(state.CipherSuite)
	}
	return info, nil
}
