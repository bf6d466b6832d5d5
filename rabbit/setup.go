package rabbit

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger defines the interface for logging operations in the rabbit package.
// This interface allows the package to use any logging implementation that
// conforms to these methods.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=rabbit
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Transport is a RabbitMQ-backed implementation of topology.Transport.
// It manages a connection and a channel, supports automatic reconnection,
// and carries out the declare, bind and publish operations the topology
// applier and the publisher need.
type Transport struct {
	// cfg stores the configuration for this transport
	cfg Config

	// channel is the AMQP channel used for declarations and publishing
	channel *amqp.Channel

	// conn is the underlying AMQP connection to the RabbitMQ server
	conn *amqp.Connection

	// mu protects concurrent access to connection and channel
	mu sync.RWMutex

	logger Logger

	// shutdownSignal is closed when the transport is being shut down
	shutdownSignal chan struct{}

	closeShutdownOnce sync.Once
}

// NewTransport connects to RabbitMQ and opens a channel with publisher
// confirms enabled. The returned transport is ready for declarations and
// publishing.
//
// Example:
//
//	transport, err := rabbit.NewTransport(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer transport.GracefulShutdown()
func NewTransport(cfg Config) (*Transport, error) {
	con, err := newConnection(cfg)
	if err != nil {
		return nil, err
	}

	ch, err := connectToChannel(con)
	if err != nil {
		return nil, err
	}

	return &Transport{
		cfg:            cfg,
		conn:           con,
		channel:        ch,
		shutdownSignal: make(chan struct{}),
	}, nil
}

// WithLogger attaches a logger for connection events. Returns the transport
// for chaining.
func (t *Transport) WithLogger(logger Logger) *Transport {
	t.logger = logger
	return t
}

// Channel returns the underlying AMQP channel. This allows advanced users,
// including the integration tests, to access RabbitMQ-specific functionality
// such as consuming directly from a queue.
func (t *Transport) Channel() *amqp.Channel {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.channel
}

// connectToChannel opens a channel on the connection and enables publisher
// confirms. Topology declarations are not performed here; they are driven by
// the topology applier.
func connectToChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	if err = ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	return ch, nil
}

// RetryConnection continuously monitors the RabbitMQ connection and
// automatically re-establishes it if it fails. This method is typically run
// in a goroutine. It returns when GracefulShutdown is called.
//
// Note that reconnection restores the connection and channel only; queues
// and exchanges declared on the old connection survive on the broker because
// everything this module declares is durable.
func (t *Transport) RetryConnection(cfg Config) {
	defer t.closeShutdownOnce.Do(func() {
		close(t.shutdownSignal)
	})
outerLoop:
	for {
		errChan := make(chan *amqp.Error, 1)
		t.conn.NotifyClose(errChan)

		select {
		case <-t.shutdownSignal:
			t.logInfo("stopping connection retry loop due to shutdown signal", nil)
			return

		case err := <-errChan:
			t.logWarn("RabbitMQ connection closed, retrying...", err)
		reconnectLoop:
			for {
				select {
				case <-t.shutdownSignal:
					t.logInfo("stopping connection retry loop due to shutdown signal", nil)
					return
				default:
					newConn, err := newConnection(cfg)
					if err != nil {
						t.logError("RabbitMQ reconnection failed", err)
						time.Sleep(time.Second)
						continue reconnectLoop
					}

					t.mu.Lock()
					t.conn = newConn
					if t.channel != nil {
						_ = t.channel.Close()
					}
					t.channel, err = connectToChannel(newConn)
					t.mu.Unlock()

					if err != nil {
						t.logError("failed to re-establish RabbitMQ channel", err)
						continue reconnectLoop
					}

					t.logInfo("successfully reconnected to RabbitMQ", nil)
					continue outerLoop
				}
			}
		}
	}
}

// GracefulShutdown stops the reconnection loop and closes the channel and
// connection. It is safe to call more than once.
func (t *Transport) GracefulShutdown() {
	t.closeShutdownOnce.Do(func() {
		close(t.shutdownSignal)
	})

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.channel != nil {
		if err := t.channel.Close(); err != nil {
			t.logWarn("error closing RabbitMQ channel", err)
		}
		t.channel = nil
	}

	if t.conn != nil && !t.conn.IsClosed() {
		if err := t.conn.Close(); err != nil {
			t.logWarn("error closing RabbitMQ connection", err)
		}
	}
}

// newConnection establishes a connection to the RabbitMQ server. The
// function supports three connection modes:
//   - SSL with client certificates (full TLS authentication)
//   - SSL without client certificates (server authentication only)
//   - Plain AMQP (no SSL/TLS)
//
// All connections use a 2-second heartbeat interval to detect disconnections
// quickly.
func newConnection(cfg Config) (*amqp.Connection, error) {

	if cfg.Connection.IsSSLEnabled && cfg.Connection.UseCert {
		hostURL := fmt.Sprintf("amqps://%v:%v@%v:%v", cfg.Connection.User, cfg.Connection.Password, cfg.Connection.Host, cfg.Connection.Port)
		caCert, err := os.ReadFile(cfg.Connection.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA cert: %w", err)
		}
		caCertPool := x509.NewCertPool()
		caCertPool.AppendCertsFromPEM(caCert)

		cert, err := tls.LoadX509KeyPair(cfg.Connection.ClientCertPath, cfg.Connection.ClientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load client cert: %w", err)
		}

		tlsConfig := &tls.Config{
			RootCAs:      caCertPool,
			Certificates: []tls.Certificate{cert},
			ServerName:   cfg.Connection.ServerName,
		}
		conn, err := amqp.DialConfig(hostURL, amqp.Config{
			Heartbeat:       2 * time.Second,
			TLSClientConfig: tlsConfig,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
		}
		return conn, nil
	}

	scheme := "amqp"
	if cfg.Connection.IsSSLEnabled {
		scheme = "amqps"
	}
	hostURL := fmt.Sprintf("%v://%v:%v@%v:%v", scheme, cfg.Connection.User, cfg.Connection.Password, cfg.Connection.Host, cfg.Connection.Port)
	conn, err := amqp.DialConfig(hostURL, amqp.Config{
		Heartbeat: 2 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	return conn, nil
}

func (t *Transport) logInfo(msg string, err error, fields ...map[string]interface{}) {
	if t.logger != nil {
		t.logger.Info(msg, err, fields...)
	}
}

func (t *Transport) logWarn(msg string, err error, fields ...map[string]interface{}) {
	if t.logger != nil {
		t.logger.Warn(msg, err, fields...)
	}
}

func (t *Transport) logError(msg string, err error, fields ...map[string]interface{}) {
	if t.logger != nil {
		t.logger.Error(msg, err, fields...)
	}
}
