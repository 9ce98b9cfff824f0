package llm

import "sync"

// KeyPool holds the interchangeable API credentials available to the
// gateway. Rotation is round-robin and mutex-guarded: concurrent requests
// may rotate simultaneously and must not race on the active index.
type KeyPool struct {
	mu    sync.Mutex
	keys  []string
	index int
}

// NewKeyPool creates a pool from the given credentials. An empty pool is
// valid; Current then returns "" and the client falls back to the
// provider's ambient credential resolution.
func NewKeyPool(keys []string) *KeyPool {
	return &KeyPool{keys: keys}
}

// Current returns the active credential, or "" when the pool is empty.
func (p *KeyPool) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.keys) == 0 {
		return ""
	}
	return p.keys[p.index]
}

// Rotate advances to the next credential. With one or zero credentials
// rotation is a no-op and Rotate reports false.
func (p *KeyPool) Rotate() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.keys) <= 1 {
		return false
	}
	p.index = (p.index + 1) % len(p.keys)
	return true
}

// Index returns the active credential index.
func (p *KeyPool) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// Size returns the number of credentials in the pool.
func (p *KeyPool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.keys)
}
