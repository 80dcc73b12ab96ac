package bootstrap

import (
	"context"
	"log"
	"strings"
	"time"

	"manasfit-be/internal/config"
	"manasfit-be/internal/controller"
	"manasfit-be/internal/pkg/logger"
	"manasfit-be/internal/repository/chatstore"
	"manasfit-be/internal/repository/local"
	"manasfit-be/internal/repository/unitofwork"
	"manasfit-be/internal/service"
	"manasfit-be/pkg/chatevents"
	"manasfit-be/pkg/kvstore"
	"manasfit-be/pkg/llm"
	"manasfit-be/pkg/llm/factory"

	pktNats "manasfit-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const AutoSaveTopic = "chat.autosave"

type Container struct {
	// Controllers
	ChatController       controller.IChatController
	WellnessController   controller.IWellnessController
	CompanionController  controller.ICompanionController
	PreferenceController controller.IPreferenceController
	SystemController     controller.ISystemController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger  logger.ILogger
	closers []func()
}

// NewContainer wires every component. db may be nil when no remote database
// is configured; every remote write then lands in the local store.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	c := &Container{Logger: sysLogger}

	for _, warning := range cfg.Validate() {
		sysLogger.Warn("CONFIG", warning, nil)
	}

	// 1. Persistence
	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	}

	store := newLocalStore(cfg, sysLogger)
	keys := local.NewKeys(cfg.Chat.KeyPrefix)
	prefs := local.NewPreferenceStore(store, keys)

	// 2. Event Bus
	var events chatevents.Publisher = chatevents.NewPublisher(nil, sysLogger)
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventLogger := logger.NewIsolatedLogger(cfg.App.EventLogFilePath)
			events = chatevents.NewNatsPublisher(natsPub, eventLogger)
			c.closers = append(c.closers, natsPub.Close)

			if natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL); err != nil {
				log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
			} else if err := chatevents.StartAudit(context.Background(), natsSub, eventLogger); err != nil {
				log.Printf("[WARN] Failed to start event audit: %v", err)
				natsSub.Close()
			} else {
				c.closers = append(c.closers, natsSub.Close)
			}
		}
	}

	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Chat storage
	storageType, err := chatstore.ParseStorageType(cfg.Chat.StorageType)
	if err != nil {
		sysLogger.Warn("CONFIG", "Unknown chat storage type, using local storage", map[string]interface{}{
			"storage_type": cfg.Chat.StorageType,
		})
		storageType = chatstore.StorageTypeLocal
	}

	deps := chatstore.Deps{
		Remote: chatstore.NewRemoteStorage(uowFactory),
		Local:  chatstore.NewLocalStorage(store, keys),
		Logger: sysLogger,
		Events: events,
	}
	if cfg.Backend.BaseURL != "" {
		deps.Backend = chatstore.NewBackendStorage(cfg.Backend.BaseURL, cfg.Backend.Token, cfg.Backend.Timeout)
	}
	chatStorage, err := chatstore.New(storageType, deps)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize chat storage: %v", err)
	}
	log.Printf("[INFO] Using chat storage: %s", storageType)

	// 4. Services
	llmProvider := newLLMProvider(cfg, sysLogger)

	chatService := service.NewChatService(
		chatStorage,
		llmProvider,
		service.NewPublisherService(AutoSaveTopic, pubSub),
		events,
		sysLogger,
		service.ChatServiceConfig{
			RequestTimeout:       cfg.Ai.RequestTimeout,
			AutoSaveInterval:     cfg.Chat.AutoSaveInterval,
			MaxHistory:           cfg.Chat.MaxMessages,
			SurfaceFailureDetail: cfg.Chat.SurfaceFailureInfo,
		},
	)
	c.closers = append(c.closers, chatService.Close)

	wellnessService := service.NewWellnessService(uowFactory, prefs, sysLogger)
	companionService := service.NewCompanionService(uowFactory, prefs, sysLogger)
	preferenceService := service.NewPreferenceService(prefs)

	c.ConsumerService = service.NewConsumerService(pubSub, AutoSaveTopic, chatStorage, sysLogger)

	// 5. Controllers
	c.ChatController = controller.NewChatController(chatService, companionService)
	c.WellnessController = controller.NewWellnessController(wellnessService)
	c.CompanionController = controller.NewCompanionController(companionService)
	c.PreferenceController = controller.NewPreferenceController(preferenceService)
	c.SystemController = controller.NewSystemController(chatService, sysLogger)

	return c
}

// Close releases background resources in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

// newLocalStore prefers Redis so fallback records survive restarts, and
// degrades to process memory when Redis is not reachable.
func newLocalStore(cfg *config.Config, sysLogger logger.ILogger) kvstore.Store {
	if strings.EqualFold(cfg.Chat.LocalStore, "redis") && cfg.App.RedisURL != "" {
		rdb := kvstore.NewRedisClientFromURL(cfg.App.RedisURL)
		redisStore := kvstore.NewRedisStore(rdb)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		err := redisStore.Ping(ctx)
		if err == nil {
			log.Printf("[INFO] Using local store: redis")
			return redisStore
		}
		sysLogger.Warn("STORE", "Failed to connect to Redis, using in-memory store", map[string]interface{}{
			"error": err.Error(),
		})
		_ = rdb.Close()
	}
	log.Printf("[INFO] Using local store: memory")
	return kvstore.NewMemoryStore()
}

// newLLMProvider returns nil when the provider cannot be built; every reply
// then comes from the fallback texts.
func newLLMProvider(cfg *config.Config, sysLogger logger.ILogger) llm.LLMProvider {
	apiURL := cfg.Ai.GeminiAPIURL
	if strings.EqualFold(cfg.Ai.LLMProvider, factory.ProviderOllama) {
		apiURL = cfg.Ai.OllamaBaseURL
	}

	provider, err := factory.NewLLMProvider(factory.Config{
		Provider: strings.ToLower(cfg.Ai.LLMProvider),
		APIKey:   cfg.Keys.GoogleGemini,
		APIURL:   apiURL,
		Model:    cfg.Ai.LLMModel,
	})
	if err != nil {
		sysLogger.Error("LLM", "Failed to initialize LLM provider", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"error":    err.Error(),
		})
		return nil
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	return provider
}
