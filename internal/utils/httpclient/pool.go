package httpclient

import (
	"net/http"
	"sync"
	"time"
)

// Pool manages a pool of HTTP clients for outbound calls
type Pool struct {
	clients chan *http.Client
	factory func() *http.Client
	mu      sync.RWMutex
	closed  bool
}

// NewPool creates a new HTTP client pool
func NewPool(maxClients int) *Pool {
	pool := &Pool{
		clients: make(chan *http.Client, maxClients),
		factory: newOutboundClient,
	}

	for i := 0; i < maxClients; i++ {
		pool.clients <- pool.factory()
	}

	return pool
}

// newOutboundClient creates an HTTP client with keep-alive settings suited to
// the render and conversion endpoints. No per-call timeout beyond this: the
// conversion flow relies on transport defaults.
func newOutboundClient() *http.Client {
	return &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			DisableCompression:  false,
			DisableKeepAlives:   false,
		},
	}
}

// Get retrieves an HTTP client from the pool
func (p *Pool) Get() *http.Client {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return p.factory()
	}

	select {
	case client := <-p.clients:
		return client
	default:
		// Pool is empty, create a new client
		return p.factory()
	}
}

// Put returns an HTTP client to the pool
func (p *Pool) Put(client *http.Client) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return
	}

	select {
	case p.clients <- client:
	default:
		// Pool is full, discard the client
	}
}

// Close closes the pool and cleans up resources
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	close(p.clients)
}

var (
	globalPool *Pool
	once       sync.Once
)

// GetGlobalPool returns the global HTTP client pool
func GetGlobalPool() *Pool {
	once.Do(func() {
		globalPool = NewPool(20)
	})
	return globalPool
}
