package rabbit

// DefaultContentType is used for published messages when none is configured.
const DefaultContentType = "application/octet-stream"

// Config defines the top-level configuration structure for the RabbitMQ
// transport. It contains the settings for establishing connections and for
// publishing messages.
type Config struct {
	// Connection contains the settings needed to establish a connection to the RabbitMQ server
	Connection Connection `yaml:"connection"`

	// Publish contains settings applied to outgoing messages
	Publish Publish `yaml:"publish"`
}

// Connection contains the configuration parameters needed to establish
// a connection to a RabbitMQ server, including authentication and TLS settings.
type Connection struct {
	// Host is the RabbitMQ server hostname or IP address
	Host string `yaml:"host" envconfig:"RABBITMQ_HOST"`

	// Port is the RabbitMQ server port (typically 5672 for non-SSL, 5671 for SSL)
	Port uint `yaml:"port" envconfig:"RABBITMQ_PORT"`

	// User is the RabbitMQ username for authentication
	User string `yaml:"user" envconfig:"RABBITMQ_USER"`

	// Password is the RabbitMQ password for authentication
	Password string `yaml:"password" envconfig:"RABBITMQ_PASSWORD"`

	// IsSSLEnabled determines whether to use SSL/TLS for the connection
	// When true, connections will use the AMQPs protocol
	IsSSLEnabled bool `yaml:"is_ssl_enabled" envconfig:"RABBITMQ_SSL_ENABLED"`

	// UseCert determines whether to use client certificate authentication
	// When true, client certificates will be sent for mutual TLS authentication
	UseCert bool `yaml:"use_cert" envconfig:"RABBITMQ_USE_CERT"`

	// CACertPath is the file path to the CA certificate for verifying the server
	// Used when IsSSLEnabled is true
	CACertPath string `yaml:"ca_cert_path" envconfig:"RABBITMQ_CA_CERT_PATH"`

	// ClientCertPath is the file path to the client certificate
	// Used when both IsSSLEnabled and UseCert are true
	ClientCertPath string `yaml:"client_cert_path" envconfig:"RABBITMQ_CLIENT_CERT_PATH"`

	// ClientKeyPath is the file path to the client certificate's private key
	// Used when both IsSSLEnabled and UseCert are true
	ClientKeyPath string `yaml:"client_key_path" envconfig:"RABBITMQ_CLIENT_KEY_PATH"`

	// ServerName is the server name to use for TLS verification
	// This should match a CN or SAN in the server's certificate
	ServerName string `yaml:"server_name" envconfig:"RABBITMQ_SERVER_NAME"`
}

// Publish contains settings applied to every published message.
type Publish struct {
	// ContentType specifies the MIME type of published messages
	// Common values: "application/json", "text/plain", "application/octet-stream"
	ContentType string `yaml:"content_type" envconfig:"RABBITMQ_CONTENT_TYPE"`
}

func (p Publish) contentType() string {
	if p.ContentType == "" {
		return DefaultContentType
	}
	return p.ContentType
}
