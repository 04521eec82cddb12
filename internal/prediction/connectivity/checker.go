package connectivity

import (
	"log/slog"
	"net"
	"net/url"
	"sync"
	"time"
)

const (
	// DefaultCheckInterval paces the reachability poll.
	DefaultCheckInterval = 15 * time.Second
	dialTimeout          = 3 * time.Second
)

// Checker is the default Signal for server deployments: it polls TCP
// reachability of the inference host and fires subscribers on transitions.
type Checker struct {
	target   string
	interval time.Duration
	dial     func(network, addr string, timeout time.Duration) (net.Conn, error)

	broadcaster

	stateMu sync.RWMutex
	offline bool

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewChecker builds a checker targeting the host of baseURL.
func NewChecker(baseURL string, interval time.Duration) (*Checker, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	host := u.Host
	if u.Port() == "" {
		port := "80"
		if u.Scheme == "https" {
			port = "443"
		}
		host = net.JoinHostPort(u.Hostname(), port)
	}
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	return &Checker{
		target:   host,
		interval: interval,
		dial:     net.DialTimeout,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start launches the polling loop. It returns immediately.
func (c *Checker) Start() {
	go c.loop()
}

// Stop terminates the polling loop and waits for it to exit.
func (c *Checker) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
	<-c.done
}

func (c *Checker) IsOffline() bool {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.offline
}

func (c *Checker) OnChange(fn func(online bool)) (unsubscribe func()) {
	return c.subscribe(fn)
}

func (c *Checker) loop() {
	defer close(c.done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.check()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.check()
		}
	}
}

func (c *Checker) check() {
	conn, err := c.dial("tcp", c.target, dialTimeout)
	reachable := err == nil
	if conn != nil {
		conn.Close()
	}

	c.stateMu.Lock()
	changed := c.offline == reachable
	c.offline = !reachable
	c.stateMu.Unlock()

	if changed {
		slog.Info("Connectivity transition", "target", c.target, "online", reachable)
		c.notify(reachable)
	}
}
