package ratelimit

import (
	"strings"
	"sync"
	"time"

	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
)

// Limiter implements a simple in-memory fixed window rate limiter
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
	stop     chan struct{}
	once     sync.Once
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		stop:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// Reset forgets the counter of key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	delete(l.counters, key)
	l.mu.Unlock()
}

// GetRemaining returns the number of remaining requests for the given key
func (l *Limiter) GetRemaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		return l.max
	}

	remaining := l.max - c.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Stop ends the cleanup goroutine.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

// cleanup periodically removes expired counters
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			now := time.Now()
			for key, c := range l.counters {
				if now.After(c.expiresAt) {
					delete(l.counters, key)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}

// LoginConfig sets login attempt budgets.
type LoginConfig struct {
	PerIP       int           `mapstructure:"per_ip"`
	PerUsername int           `mapstructure:"per_username"`
	Window      time.Duration `mapstructure:"window"`
}

// DefaultLoginConfig returns default login limits.
func DefaultLoginConfig() LoginConfig {
	return LoginConfig{
		PerIP:       20,
		PerUsername: 10,
		Window:      15 * time.Minute,
	}
}

// LoginLimiter throttles login attempts per client IP and per username.
type LoginLimiter struct {
	ip       *Limiter
	username *Limiter
}

// NewLoginLimiter creates a login limiter; zero fields fall back to defaults.
func NewLoginLimiter(c LoginConfig) *LoginLimiter {
	d := DefaultLoginConfig()
	if c.PerIP <= 0 {
		c.PerIP = d.PerIP
	}
	if c.PerUsername <= 0 {
		c.PerUsername = d.PerUsername
	}
	if c.Window <= 0 {
		c.Window = d.Window
	}
	return &LoginLimiter{
		ip:       NewLimiter(c.Window, c.PerIP),
		username: NewLimiter(c.Window, c.PerUsername),
	}
}

// CheckLogin consumes one attempt for ip and username.
func (m *LoginLimiter) CheckLogin(ip, username string) error {
	if !m.ip.Allow(ip) {
		return gerr.LoginRateLimited
	}
	if username != "" && !m.username.Allow(strings.ToLower(username)) {
		return gerr.LoginRateLimited
	}
	return nil
}

// LoginSucceeded clears the username budget after a successful login.
func (m *LoginLimiter) LoginSucceeded(username string) {
	m.username.Reset(strings.ToLower(username))
}

// Stop ends the cleanup goroutines.
func (m *LoginLimiter) Stop() {
	m.ip.Stop()
	m.username.Stop()
}
