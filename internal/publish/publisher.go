// internal/publish/publisher.go
package publish

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/specialistvlad/wardleygo/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// ErrNoURL is returned by Connect when no server URL is configured.
var ErrNoURL = errors.New("publish url is empty")

// Emitter sends one event with its payload.
type Emitter interface {
	Emit(event string, payload any) error
	Close() error
}

// Options configures the socket.io connection.
type Options struct {
	URL       string
	Path      string
	Namespace string
	Event     string
	Insecure  bool
	Timeout   time.Duration
}

// Publisher emits snapshots through an Emitter.
type Publisher struct {
	emitter Emitter
	event   string
}

// New wraps an existing emitter.
func New(emitter Emitter, event string) *Publisher {
	if event == "" {
		event = "map"
	}
	return &Publisher{emitter: emitter, event: event}
}

// Publish emits snap.
func (p *Publisher) Publish(ctx context.Context, snap Snapshot) error {
	ctxlog.FromContext(ctx).Debug("Publishing snapshot.", "event", p.event, "path", snap.Path, "revision", snap.Revision)
	if err := p.emitter.Emit(p.event, snap); err != nil {
		return fmt.Errorf("failed to publish %s: %w", snap.Path, err)
	}
	return nil
}

// Close disconnects the emitter.
func (p *Publisher) Close() error {
	return p.emitter.Close()
}

// socketEmitter adapts a connected socket.io client.
type socketEmitter struct {
	io *socket.Socket
}

func (s *socketEmitter) Emit(event string, payload any) error {
	s.io.Emit(event, payload)
	return nil
}

func (s *socketEmitter) Close() error {
	s.io.Disconnect()
	return nil
}

// Connect dials the socket.io server and waits for the namespace to accept
// the connection.
func Connect(ctx context.Context, opts Options) (*Publisher, error) {
	if opts.URL == "" {
		return nil, ErrNoURL
	}
	logger := ctxlog.FromContext(ctx).With("url", opts.URL, "namespace", opts.Namespace)

	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("publish url %q needs a scheme and host", opts.URL)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	sopts := socket.DefaultOptions()
	if opts.Path != "" {
		sopts.SetPath(opts.Path)
	}
	if opts.Insecure {
		logger.Warn("Skipping TLS certificate verification")
		sopts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sopts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, sopts)
	io := manager.Socket(opts.Namespace, sopts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Publisher connected.", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err, _ := errs[0].(error)
		if err == nil {
			err = fmt.Errorf("%v", errs[0])
		}
		connectChan <- err
	})

	logger.Debug("Connecting publisher...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return New(&socketEmitter{io: io}, opts.Event), nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection")
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}
