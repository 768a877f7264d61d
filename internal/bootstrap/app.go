package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpHandler "github.com/adithya2152/devconnect/internal/handler/http"
	wsHandler "github.com/adithya2152/devconnect/internal/handler/websocket"
	"github.com/adithya2152/devconnect/internal/hub"
	gormpersistence "github.com/adithya2152/devconnect/internal/infra/persistence/gorm"
	"github.com/adithya2152/devconnect/internal/infra/setup"
	redisstate "github.com/adithya2152/devconnect/internal/infra/state/redis"
	"github.com/adithya2152/devconnect/internal/mailer"
	"github.com/adithya2152/devconnect/internal/middleware"
	"github.com/adithya2152/devconnect/internal/service"
	"github.com/adithya2152/devconnect/internal/worker"
)

// Config holds everything loaded from the environment.
type Config struct {
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	JWTSecret         string
	ServerPort        string
	LogLevel          string
	AppEnv            string
	KeyPrefix         string
	RateLimitMax      int
	RateLimitWindow   time.Duration
	CORSAllowedOrigin string
	SMTPHost          string
	SMTPPort          string
	SMTPUsername      string
	SMTPPassword      string
	SMTPFrom          string
}

// LoadConfig reads configuration from the environment, preferring a .env
// file when one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBName:            os.Getenv("DB_NAME"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		ServerPort:        os.Getenv("SERVER_PORT"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		AppEnv:            os.Getenv("APP_ENV"),
		KeyPrefix:         os.Getenv("REDIS_KEY_PREFIX"),
		CORSAllowedOrigin: os.Getenv("CORS_ALLOWED_ORIGIN"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          os.Getenv("SMTP_PORT"),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:          os.Getenv("SMTP_FROM"),
		RateLimitMax:      100,
		RateLimitWindow:   1 * time.Second,
	}

	cfg.RedisDB, _ = strconv.Atoi(os.Getenv("REDIS_DB"))

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "dc:"
	}
	if cfg.CORSAllowedOrigin == "" {
		cfg.CORSAllowedOrigin = "http://localhost:3000"
	}
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "587"
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("environment variable REDIS_ADDR must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET must be set")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// App bundles the application's components for startup and shutdown.
type App struct {
	Config      *Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	AsynqClient *asynq.Client
	AsynqServer *worker.WorkerServer
	Hub         *hub.Hub
	HttpServer  *http.Server
}

// NewApp loads configuration and wires every component together.
func NewApp() (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	log.Info("Configuration loaded successfully")

	log.Info("Initializing infrastructure...")
	db, err := setup.InitDB(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}
	if err := setup.MigrateDB(db); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	log.Info("Database initialized and migrated")

	redisClient, err := setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}
	log.Info("Redis client initialized")

	redisClientOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	asynqClient := asynq.NewClient(redisClientOpt)
	log.Info("Asynq client initialized")

	log.Info("Initializing repositories...")
	profileRepo := gormpersistence.NewGormProfileRepository(db)
	roomRepo := gormpersistence.NewGormRoomRepository(db)
	directRoomRepo := gormpersistence.NewGormDirectRoomRepository(db)
	membershipRepo := gormpersistence.NewGormMembershipRepository(db)
	messageRepo := gormpersistence.NewGormMessageRepository(db)
	followRepo := gormpersistence.NewGormFollowRepository(db)
	notificationRepo := gormpersistence.NewGormNotificationRepository(db)
	projectRepo := gormpersistence.NewGormProjectRepository(db)
	otpRepo := redisstate.NewRedisOTPRepository(redisClient, cfg.KeyPrefix)
	log.Info("Repositories initialized")

	log.Info("Initializing services...")
	authService, err := service.NewAuthService(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create AuthService: %w", err)
	}
	gate := service.NewMembershipGate(roomRepo, directRoomRepo, membershipRepo)
	chatService := service.NewChatService(roomRepo, directRoomRepo, membershipRepo, messageRepo, profileRepo)
	notificationService := service.NewNotificationService(notificationRepo, asynqClient)
	communityService := service.NewCommunityService(roomRepo, membershipRepo, profileRepo, notificationService)
	profileService := service.NewProfileService(profileRepo, followRepo, projectRepo, notificationService)
	searchService := service.NewSearchService(profileRepo, projectRepo)
	otpService := service.NewOTPService(otpRepo, asynqClient)
	projectService := service.NewProjectService(projectRepo)
	log.Info("Services initialized")

	hubInstance := hub.NewHub(chatService)

	log.Info("Initializing handlers...")
	chatHandler := httpHandler.NewChatHandler(chatService)
	profileHandler := httpHandler.NewProfileHandler(profileService)
	communityHandler := httpHandler.NewCommunityHandler(communityService)
	notificationHandler := httpHandler.NewNotificationHandler(notificationService)
	searchHandler := httpHandler.NewSearchHandler(searchService)
	otpHandler := httpHandler.NewOTPHandler(otpService)
	projectHandler := httpHandler.NewProjectHandler(projectService)
	socketHandler := wsHandler.NewWebSocketHandler(hubInstance, authService, gate, cfg.CORSAllowedOrigin)
	log.Info("Handlers initialized")

	mail := mailer.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	workerServer := worker.NewWorkerServer(redisClientOpt, notificationRepo, mail, log)
	log.Info("Worker server initialized")

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSAllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
	}))
	router.Use(middleware.RateLimit(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow))

	auth := middleware.Auth(authService)

	router.POST("/send-otp", otpHandler.Send)
	router.POST("/verify-otp", otpHandler.Verify)

	chat := router.Group("/chat").Use(auth)
	{
		chat.GET("/conversations", chatHandler.Conversations)
		chat.POST("/create-room", chatHandler.CreateRoom)
		chat.GET("/rooms/:roomId/messages", chatHandler.History)
		chat.GET("/profile/:userId", profileHandler.Get)
		chat.GET("/profile/:userId/detailed", profileHandler.Detailed)
		chat.POST("/follow", profileHandler.Follow)
		chat.POST("/unfollow", profileHandler.Unfollow)
	}

	communities := router.Group("/communities").Use(auth)
	{
		communities.GET("/explore", communityHandler.Explore)
		communities.GET("/joined", communityHandler.Joined)
		communities.GET("/hosted", communityHandler.Hosted)
		communities.POST("/add", communityHandler.Create)
		communities.POST("/:id/join", communityHandler.Join)
		communities.POST("/:id/approve", communityHandler.Approve)
		communities.POST("/:id/reject", communityHandler.Reject)
		communities.POST("/:id/leave", communityHandler.Leave)
		communities.GET("/:id/members", communityHandler.Members)
	}

	search := router.Group("/search").Use(auth)
	{
		search.GET("/devs", searchHandler.Devs)
		search.GET("/projects", searchHandler.Projects)
	}

	notifications := router.Group("/notifications").Use(auth)
	{
		notifications.GET("", notificationHandler.List)
		notifications.PATCH("/mark-all-read", notificationHandler.MarkAllRead)
	}

	api := router.Group("/api").Use(auth)
	{
		api.GET("/app_projects_with_members", projectHandler.List)
		api.POST("/app_projects", projectHandler.Create)
		api.POST("/app_project_members", projectHandler.Apply)
	}

	// The websocket route authenticates inside the session, not via the
	// Bearer middleware; browsers cannot set headers on socket upgrades.
	router.GET("/ws/:roomId", socketHandler.HandleConnection)

	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })
	log.Info("Router setup complete")

	httpServer := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	return &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		RedisClient: redisClient,
		AsynqClient: asynqClient,
		AsynqServer: workerServer,
		Hub:         hubInstance,
		HttpServer:  httpServer,
	}, nil
}

// Start launches the hub, the worker and the HTTP server.
func (a *App) Start() {
	a.Log.Info("Starting application background routines...")
	go a.Hub.Run()
	go a.AsynqServer.Start()

	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown stops components in dependency order: no new connections first,
// then the hub and worker, then the shared clients.
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	if a.Hub != nil {
		a.Hub.Stop()
	}
	if a.AsynqServer != nil {
		a.AsynqServer.Shutdown()
	}
	if a.AsynqClient != nil {
		if err := a.AsynqClient.Close(); err != nil {
			a.Log.Errorf("Error closing Asynq client: %v", err)
		}
	}
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		}
	}

	a.Log.Info("Application shutdown complete.")
}

// LoggerMiddleware logs one structured line per request.
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		entry := log.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		})

		switch {
		case errorMessage != "":
			entry.Error(errorMessage)
		case statusCode >= 500:
			entry.Error("Server error")
		case statusCode >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request handled")
		}
	}
}
