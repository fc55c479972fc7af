package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"
)

// ErrTransport marks every failure to obtain a response from the daemon.
var ErrTransport = errors.New("server communication problem")

// maxResponseBytes bounds the read; hddtemp sends a few dozen bytes per drive.
const maxResponseBytes = 64 << 10

// HDDTempTCP talks to hddtemp in daemon mode: connect, read until the
// server closes the connection, disconnect.
type HDDTempTCP struct {
	addr    string
	timeout time.Duration
	dialer  net.Dialer
}

func NewHDDTempTCP(addr string, timeout time.Duration) *HDDTempTCP {
	return &HDDTempTCP{
		addr:    addr,
		timeout: timeout,
		dialer:  net.Dialer{Timeout: timeout},
	}
}

// Fetch reads the full daemon response. The timeout covers dialing and
// the whole read.
func (r *HDDTempTCP) Fetch(ctx context.Context) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	conn, err := r.dialer.DialContext(ctx, "tcp", r.addr)
	if err != nil {
		return "", fmt.Errorf("%w: dial %s: %w", ErrTransport, r.addr, err)
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetReadDeadline(deadline); err != nil {
			return "", fmt.Errorf("%w: set deadline: %w", ErrTransport, err)
		}
	}

	body, err := io.ReadAll(io.LimitReader(conn, maxResponseBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: read from %s: %w", ErrTransport, r.addr, err)
	}
	if len(body) > maxResponseBytes {
		return "", fmt.Errorf("%w: response from %s exceeds %d bytes", ErrTransport, r.addr, maxResponseBytes)
	}
	return string(body), nil
}
