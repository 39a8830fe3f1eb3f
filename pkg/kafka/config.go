package kafka

import (
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/plain"
)

// Config holds Kafka configuration
type Config struct {
	Brokers                []string      `mapstructure:"brokers"`
	ClientID               string        `mapstructure:"client_id"`
	AllowAutoTopicCreation bool          `mapstructure:"allow_auto_topic_creation"`
	MetadataMaxAge         time.Duration `mapstructure:"metadata_max_age"`
	RequestRetries         int           `mapstructure:"request_retries"`
	DialTimeout            time.Duration `mapstructure:"dial_timeout"`
	RetryTimeout           time.Duration `mapstructure:"retry_timeout"`
	ConnIdleTimeout        time.Duration `mapstructure:"conn_idle_timeout"`
	ProduceLinger          time.Duration `mapstructure:"produce_linger"`
	SASLUser               string        `mapstructure:"sasl_user"`
	SASLPassword           string        `mapstructure:"sasl_password"`
}

// Options converts the config into franz-go client options
func (config Config) Options() []kgo.Opt {
	opts := []kgo.Opt{
		WithBrokers(config.Brokers...),
	}

	if config.ClientID != "" {
		opts = append(opts, WithClientID(config.ClientID))
	}

	if config.AllowAutoTopicCreation {
		opts = append(opts, WithAllowAutoTopicCreation())
	}

	if config.MetadataMaxAge > 0 {
		opts = append(opts, WithMetadataMaxAge(config.MetadataMaxAge))
	}

	if config.RequestRetries > 0 {
		opts = append(opts, WithRequestRetries(config.RequestRetries))
	}

	if config.DialTimeout > 0 {
		opts = append(opts, WithDialTimeout(config.DialTimeout))
	}

	if config.RetryTimeout > 0 {
		opts = append(opts, WithRetryTimeout(config.RetryTimeout))
	}

	if config.ConnIdleTimeout > 0 {
		opts = append(opts, WithConnIdleTimeout(config.ConnIdleTimeout))
	}

	if config.ProduceLinger > 0 {
		opts = append(opts, WithProducerLinger(config.ProduceLinger))
	}

	if config.SASLUser != "" {
		opts = append(opts, WithSASL(plain.Auth{User: config.SASLUser, Pass: config.SASLPassword}.AsMechanism()))
	}

	return opts
}

// NewWithConfig creates a new Kafka client from a config struct
func NewWithConfig(config Config) (KafkaClient, error) {
	return New(config.Options()...)
}
