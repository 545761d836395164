package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	adapter "healthgraph/src/adapters/http"
	"healthgraph/src/config"
	"healthgraph/src/infra/graphdb"
	"healthgraph/src/infra/kafka"
	"healthgraph/src/infra/llm"
	"healthgraph/src/infra/redis"
	"healthgraph/src/repositories"
	"healthgraph/src/services/doctors"
	"healthgraph/src/services/events"
	"healthgraph/src/services/facilities"
	"healthgraph/src/services/insights"
	"healthgraph/src/services/patients"
	"healthgraph/src/services/treatments"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/fx"
)

const redisPoolSize = 10

func main() {
	log.SetOutput(os.Stdout)
	log.Println("Starting healthgraph API with Uber Fx...")

	app := fx.New(
		// Providers
		fx.Provide(
			newConfig,
			newLogger,
			newGraphClient,
			repositories.NewDoctorRepository,
			repositories.NewPatientRepository,
			repositories.NewFacilityRepository,
			repositories.NewTreatmentRepository,
			newEventPublisher,
			newInsightCache,
			newInsightGenerator,
			doctors.NewDoctorService,
			patients.NewPatientService,
			facilities.NewFacilityService,
			newTreatmentService,
			newServer,
		),

		// Invocations
		fx.Invoke(registerServerHooks),
	)

	app.Run()
}

func newConfig() (config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level

	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

func newGraphClient(lc fx.Lifecycle, logger *slog.Logger, cfg config.Config) (*graphdb.GraphClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Neo4j.AcquisitionTimeout)
	defer cancel()

	client, err := graphdb.NewGraphClient(
		ctx,
		cfg.Neo4j.URI,
		cfg.Neo4j.Username,
		cfg.Neo4j.Password,
		cfg.Neo4j.Database,
		cfg.Neo4j.MaxPoolSize,
		cfg.Neo4j.AcquisitionTimeout,
	)
	if err != nil {
		return nil, err
	}

	logger.Info("Connected to Neo4j", "uri", cfg.Neo4j.URI, "database", cfg.Neo4j.Database)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close(ctx)
		},
	})

	return client, nil
}

// newEventPublisher falls back to a no-op publisher when no Kafka brokers are configured.
func newEventPublisher(lc fx.Lifecycle, logger *slog.Logger, cfg config.Config) (events.Publisher, error) {
	if !cfg.Kafka.Enabled() {
		logger.Info("KAFKA_BROKERS not set, domain events will not be published")
		return events.NewNoopPublisher(logger), nil
	}

	producer, err := kafka.NewKafkaProducer(logger, cfg.Kafka.Brokers)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return producer.Close()
		},
	})

	return events.NewDomainEventPublisher(logger, producer, cfg.Kafka.Topic), nil
}

// newInsightCache returns a nil Cache when REDIS_ADDR is empty, which disables caching.
func newInsightCache(lc fx.Lifecycle, logger *slog.Logger, cfg config.Config) insights.Cache {
	if !cfg.Redis.Enabled() {
		logger.Info("REDIS_ADDR not set, insight cache disabled")
		return nil
	}

	client := redis.NewRedisClient(cfg.Redis.Addr, redisPoolSize, cfg.Redis.InsightTTL)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.HealthCheck(ctx); err != nil {
				logger.Warn("Redis is not reachable, insights will be generated on every request", "error", err)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client
}

func newInsightGenerator(logger *slog.Logger, cfg config.Config, cache insights.Cache) (insights.Generator, error) {
	if !cfg.LLM.Enabled() {
		logger.Info("OPENAI_API_KEY not set, using the offline insight generator")
		return insights.NewCachedGenerator(logger, insights.NewOfflineGenerator(), cache), nil
	}

	model, err := llm.NewOpenAIModel(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL)
	if err != nil {
		return nil, err
	}

	return insights.NewCachedGenerator(logger, insights.NewLLMGenerator(model, cfg.LLM.Temperature), cache), nil
}

func newTreatmentService(
	logger *slog.Logger,
	treatmentRepository *repositories.TreatmentRepository,
	patientRepository *repositories.PatientRepository,
	doctorRepository *repositories.DoctorRepository,
	generator insights.Generator,
	publisher events.Publisher,
) *treatments.TreatmentService {
	return treatments.NewTreatmentService(logger, treatmentRepository, patientRepository, doctorRepository, generator, publisher)
}

func newServer(
	logger *slog.Logger,
	cfg config.Config,
	graphClient *graphdb.GraphClient,
	doctorService *doctors.DoctorService,
	patientService *patients.PatientService,
	facilityService *facilities.FacilityService,
	treatmentService *treatments.TreatmentService,
) *adapter.Server {
	return adapter.NewServer(
		logger,
		cfg.HTTP.Port,
		doctorService,
		patientService,
		facilityService,
		treatmentService,
		graphClient,
	)
}

// registerServerHooks registers lifecycle hooks for the HTTP server
func registerServerHooks(lc fx.Lifecycle, logger *slog.Logger, srv *adapter.Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Server failed: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Server forced to shutdown", "error", err)
				return err
			}
			logger.Info("Server exited gracefully")
			return nil
		},
	})
}
