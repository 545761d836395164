package config

import (
	"fmt"
	"time"

	"healthgraph/src/helper/env"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	defaultServerPort         = 8888
	defaultMaxPoolSize        = 50
	defaultAcquisitionTimeout = 30 * time.Second
	defaultKafkaTopic         = "healthgraph.domain-events"
	defaultInsightTTL         = 24 * time.Hour
	defaultOpenAIModel        = "gpt-4"
	defaultOpenAITemperature  = 0.7
)

type Config struct {
	LogLevel string
	HTTP     HTTPConfig
	Neo4j    Neo4jConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
	LLM      LLMConfig
}

type HTTPConfig struct {
	Port int
}

func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

type Neo4jConfig struct {
	URI                string
	Username           string
	Password           string
	Database           string
	MaxPoolSize        int
	AcquisitionTimeout time.Duration
}

func (c *Neo4jConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.URI, validation.Required),
		validation.Field(&c.Username, validation.Required),
		validation.Field(&c.MaxPoolSize, validation.Required, validation.Min(1)),
		validation.Field(&c.AcquisitionTimeout, validation.Required, validation.Min(time.Millisecond)),
	)
}

// KafkaConfig with no brokers disables event publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func (c *KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func (c *KafkaConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Brokers, validation.Each(is.DialString)),
		validation.Field(&c.Topic, validation.When(c.Enabled(), validation.Required)),
	)
}

// RedisConfig with an empty address disables the insight cache.
type RedisConfig struct {
	Addr       string
	InsightTTL time.Duration
}

func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c *RedisConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Addr, is.DialString),
		validation.Field(&c.InsightTTL, validation.When(c.Enabled(), validation.Required, validation.Min(time.Second))),
	)
}

// LLMConfig with an empty API key selects the offline insight generator.
type LLMConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
}

func (c *LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

func (c *LLMConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Model, validation.When(c.Enabled(), validation.Required)),
		validation.Field(&c.BaseURL, is.URL),
		validation.Field(&c.Temperature, validation.Min(0.0), validation.Max(2.0)),
	)
}

// Load reads the configuration from the environment. It does not validate.
func Load() Config {
	return Config{
		LogLevel: env.GetString("LOG_LEVEL", "info"),
		HTTP: HTTPConfig{
			Port: env.GetInt("SERVER_PORT", defaultServerPort),
		},
		Neo4j: Neo4jConfig{
			URI:                env.GetString("NEO4J_URI"),
			Username:           env.GetString("NEO4J_USERNAME"),
			Password:           env.GetString("NEO4J_PASSWORD"),
			Database:           env.GetString("NEO4J_DATABASE"),
			MaxPoolSize:        env.GetInt("NEO4J_MAX_POOL_SIZE", defaultMaxPoolSize),
			AcquisitionTimeout: env.GetDuration("NEO4J_ACQUISITION_TIMEOUT", defaultAcquisitionTimeout),
		},
		Kafka: KafkaConfig{
			Brokers: env.GetStringSlice("KAFKA_BROKERS"),
			Topic:   env.GetString("KAFKA_TOPIC", defaultKafkaTopic),
		},
		Redis: RedisConfig{
			Addr:       env.GetString("REDIS_ADDR"),
			InsightTTL: env.GetDuration("REDIS_INSIGHT_TTL", defaultInsightTTL),
		},
		LLM: LLMConfig{
			APIKey:      env.GetString("OPENAI_API_KEY"),
			Model:       env.GetString("OPENAI_MODEL", defaultOpenAIModel),
			BaseURL:     env.GetString("OPENAI_BASE_URL"),
			Temperature: env.GetFloat("OPENAI_TEMPERATURE", defaultOpenAITemperature),
		},
	}
}

func (c *Config) Validate() error {
	if err := validation.Validate(c.LogLevel, validation.In("debug", "info", "warn", "error")); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	if err := c.Neo4j.Validate(); err != nil {
		return fmt.Errorf("neo4j: %w", err)
	}
	if err := c.Kafka.Validate(); err != nil {
		return fmt.Errorf("kafka: %w", err)
	}
	if err := c.Redis.Validate(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	return nil
}
