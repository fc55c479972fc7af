package repository

import (
	"context"
	"time"
)

// ResponseRepo returns one complete response from the hddtemp daemon.
type ResponseRepo interface {
	Fetch(ctx context.Context) (string, error)
}

type Repository struct {
	Response ResponseRepo
}

// NewRepository wires the TCP daemon client for addr (host:port).
func NewRepository(addr string, timeout time.Duration) *Repository {
	return &Repository{
		Response: NewHDDTempTCP(addr, timeout),
	}
}
