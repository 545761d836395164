package config_test

import (
	"time"

	"healthgraph/src/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	setRequired := func() {
		GinkgoT().Setenv("NEO4J_URI", "neo4j://localhost:7687")
		GinkgoT().Setenv("NEO4J_USERNAME", "neo4j")
	}

	clearOptional := func() {
		for _, name := range []string{
			"SERVER_PORT", "LOG_LEVEL", "NEO4J_PASSWORD", "NEO4J_DATABASE", "NEO4J_MAX_POOL_SIZE",
			"NEO4J_ACQUISITION_TIMEOUT", "KAFKA_BROKERS", "KAFKA_TOPIC", "REDIS_ADDR", "REDIS_INSIGHT_TTL",
			"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL", "OPENAI_TEMPERATURE",
		} {
			GinkgoT().Setenv(name, "")
		}
	}

	BeforeEach(func() {
		clearOptional()
	})

	When("only the required variables are set", func() {
		It("loads the defaults and validates", func() {
			// ARRANGE
			setRequired()

			// ACT
			cfg := config.Load()

			// ASSERT
			Expect(cfg.Validate()).To(Succeed())
			Expect(cfg.HTTP.Port).To(Equal(8888))
			Expect(cfg.HTTP.Address()).To(Equal(":8888"))
			Expect(cfg.Neo4j.MaxPoolSize).To(Equal(50))
			Expect(cfg.Neo4j.AcquisitionTimeout).To(Equal(30 * time.Second))
			Expect(cfg.Kafka.Enabled()).To(BeFalse())
			Expect(cfg.Redis.Enabled()).To(BeFalse())
			Expect(cfg.Redis.InsightTTL).To(Equal(24 * time.Hour))
			Expect(cfg.LLM.Enabled()).To(BeFalse())
			Expect(cfg.LLM.Model).To(Equal("gpt-4"))
			Expect(cfg.LLM.Temperature).To(Equal(0.7))
		})
	})

	When("the Neo4j URI is missing", func() {
		It("fails validation", func() {
			// ARRANGE
			GinkgoT().Setenv("NEO4J_URI", "")
			GinkgoT().Setenv("NEO4J_USERNAME", "neo4j")

			// ACT
			cfg := config.Load()

			// ASSERT
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("neo4j")))
		})
	})

	When("the port is out of range", func() {
		It("fails validation", func() {
			// ARRANGE
			setRequired()
			GinkgoT().Setenv("SERVER_PORT", "70000")

			// ACT
			cfg := config.Load()

			// ASSERT
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("http")))
		})
	})

	When("Kafka brokers are given", func() {
		It("enables publishing on the configured topic", func() {
			// ARRANGE
			setRequired()
			GinkgoT().Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
			GinkgoT().Setenv("KAFKA_TOPIC", "care.events")

			// ACT
			cfg := config.Load()

			// ASSERT
			Expect(cfg.Validate()).To(Succeed())
			Expect(cfg.Kafka.Enabled()).To(BeTrue())
			Expect(cfg.Kafka.Brokers).To(Equal([]string{"kafka-1:9092", "kafka-2:9092"}))
			Expect(cfg.Kafka.Topic).To(Equal("care.events"))
		})
	})

	When("the log level is unknown", func() {
		It("fails validation", func() {
			// ARRANGE
			setRequired()
			GinkgoT().Setenv("LOG_LEVEL", "verbose")

			// ACT
			cfg := config.Load()

			// ASSERT
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("log level")))
		})
	})
})
