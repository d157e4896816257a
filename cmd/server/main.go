package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/frosty-coder/red-society/internal/auth"
	"github.com/frosty-coder/red-society/internal/config"
	"github.com/frosty-coder/red-society/internal/handlers"
	"github.com/frosty-coder/red-society/internal/logger"
	"github.com/frosty-coder/red-society/internal/middleware"
	"github.com/frosty-coder/red-society/internal/repository"
	"github.com/frosty-coder/red-society/internal/routes"
	"github.com/frosty-coder/red-society/internal/service"
	"github.com/frosty-coder/red-society/internal/store"
)

// Server holds service dependencies.
type Server struct {
	Cfg *config.Config
	App *fiber.App
	Log *zap.Logger
}

// NewServer builds the store, repositories, services and HTTP app.
func NewServer(cfg *config.Config, zlog *zap.Logger) (*Server, error) {
	st := store.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(st)
	messageRepo := repository.NewMessageRepository(st)
	friendRepo := repository.NewFriendRepository(st)
	groupRepo := repository.NewGroupRepository(st)

	tokens := auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL)

	authSvc := service.NewAuthService(userRepo, friendRepo, tokens)
	userSvc := service.NewUserService(userRepo)
	messageSvc := service.NewMessageService(messageRepo)
	socialSvc := service.NewSocialService(userRepo, friendRepo, groupRepo)

	app := fiber.New(fiber.Config{AppName: "red-society"})
	app.Use(middleware.Recovery(zlog))
	app.Use(middleware.Logger(zlog))
	app.Use(middleware.Metrics())

	sessionMw := middleware.Session(tokens, userRepo)
	rateLimit := middleware.NewIPRateLimiter(cfg.RateLimitPerMin, zlog)

	routes.Register(app,
		handlers.NewAuthHandler(authSvc, cfg.SessionTTL, zlog),
		handlers.NewUserHandler(userSvc, zlog),
		handlers.NewMessageHandler(messageSvc, zlog),
		handlers.NewFriendHandler(socialSvc, zlog),
		handlers.NewGroupHandler(socialSvc, zlog),
		sessionMw,
		rateLimit.Handler(),
	)

	return &Server{Cfg: cfg, App: app, Log: zlog}, nil
}

// Start runs the HTTP server in the background.
func (s *Server) Start() {
	go func() {
		s.Log.Info("starting red-society", zap.String("port", s.Cfg.AppPort))
		if err := s.App.Listen(":" + s.Cfg.AppPort); err != nil {
			s.Log.Fatal("server exited unexpectedly", zap.Error(err))
		}
	}()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown() {
	s.Log.Info("shutting down red-society")
	ctx, cancel := context.WithTimeout(context.Background(), s.Cfg.ShutdownTimeout)
	defer cancel()
	if err := s.App.ShutdownWithContext(ctx); err != nil {
		s.Log.Error("failed to shutdown server", zap.Error(err))
	}
	s.Log.Info("red-society stopped")
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	server, err := NewServer(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize server", zap.Error(err))
	}
	server.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zlog.Info("received signal, starting graceful shutdown", zap.String("signal", sig.String()))

	server.Shutdown()
}
