package tracer

// Config holds the settings for the OpenTelemetry tracer.
type Config struct {
	// ServiceName identifies the service in exported traces.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv tags spans with the deployment environment, for example
	// "development" or "production".
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport turns on the OTLP HTTP exporter. The exporter endpoint
	// is taken from the standard OTEL_EXPORTER_OTLP_* environment
	// variables. When false, spans are created but never leave the
	// process, which is the right mode for tests.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}
