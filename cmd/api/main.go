package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hr-assistant/config"
	_ "hr-assistant/docs" // Swagger docs
	"hr-assistant/internal/agent"
	"hr-assistant/internal/agent/orchestrator"
	chatUC "hr-assistant/internal/chat/usecase"
	"hr-assistant/internal/hrdata"
	"hr-assistant/internal/httpserver"
	"hr-assistant/internal/llm"
	"hr-assistant/internal/session"
	"hr-assistant/pkg/llmprovider"
	"hr-assistant/pkg/log"
)

// @title       HR Assistant API
// @description Multi-agent HR chatbot with LLM routing, session memory, and localized answers.
// @version     2.0.0
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting HR Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Data directory: %s", cfg.Data.Dir)

	// 3. Fixture store — fail fast on schema problems
	store := hrdata.New(cfg.Data.Dir, logger)
	if err := store.Verify(); err != nil {
		logger.Errorf(ctx, "Fixture verification failed: %v", err)
		return
	}

	// 4. LLM gateway. Provider failures degrade the assistant to keyword
	// routing and template answers instead of stopping startup.
	gateway := buildGateway(ctx, cfg, logger)

	// 5. Agents
	registry := agent.NewRegistry()
	registry.Register(string(orchestrator.RoutePayslip), agent.NewPayslipAgent(store, gateway, logger))
	registry.Register(string(orchestrator.RouteLeave), agent.NewLeaveAgent(store, gateway, logger))
	registry.Register(string(orchestrator.RouteEmployee), agent.NewEmployeeAgent(store, gateway, logger))
	registry.Register(string(orchestrator.RouteAttendance), agent.NewAttendanceAgent(store, gateway, logger))
	registry.Register(string(orchestrator.RouteBenefits), agent.NewBenefitsAgent(store, gateway, logger))
	registry.Register(string(orchestrator.RoutePerformance), agent.NewPerformanceAgent(store, gateway, logger))
	registry.Register(string(orchestrator.RoutePolicy), agent.NewPolicyAgent(store, gateway, logger))

	orc := orchestrator.New(registry, gateway, store, logger)

	// 6. Session memory
	memory := session.New(session.Config{
		MaxHistory:  cfg.Session.MaxHistory,
		MaxSessions: cfg.Session.MaxSessions,
		TTL:         parseDuration(cfg.Session.TTL, 24*time.Hour),
	})

	// 7. Chat use case
	uc := chatUC.New(logger, orc, registry, store, memory, cfg.Chat.DefaultEmployeeID)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ChatUC:          uc,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildGateway assembles the provider fallback chain. With no usable
// provider the gateway is disabled and the assistant answers from keyword
// routing and templates only.
func buildGateway(ctx context.Context, cfg *config.Config, logger log.Logger) llm.Gateway {
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No LLM providers available, running in keyword-only mode: %v", err)
		return llm.NewDisabled()
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	logger.Infof(ctx, "LLM gateway ready with %d provider(s)", len(providers))
	return llm.New(manager, logger)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
