package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nmaffly/portfolio-assistant/internal/api/handlers"
	"github.com/nmaffly/portfolio-assistant/internal/api/middleware"
	"github.com/nmaffly/portfolio-assistant/internal/config"
	"github.com/nmaffly/portfolio-assistant/internal/knowledge"
	"github.com/nmaffly/portfolio-assistant/internal/openai"
	"github.com/nmaffly/portfolio-assistant/internal/server"
	"github.com/nmaffly/portfolio-assistant/internal/service"
	"github.com/nmaffly/portfolio-assistant/internal/telemetry"
	"github.com/spf13/cobra"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the chat API server",
		Long:  "Start the portfolio assistant API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")

	return cmd
}

// applyPortFlag overrides the configured port only when the flag was
// passed explicitly, so -p 8080 still beats PORTFOLIO_PORT.
func applyPortFlag(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("port") {
		return
	}
	if port, err := cmd.Flags().GetString("port"); err == nil && port != "" {
		cfg.Port = port
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.SentryDSN != "" {
		sampleRate := 0.1
		if !cfg.IsProduction() {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			TracesSampleRate: sampleRate,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	applyPortFlag(cmd, cfg)

	if !cfg.HasOpenAI() {
		log.Println("WARNING: OPENAI_API_KEY is not set; chat requests will fail until it is configured")
	}

	client := openai.NewClient(cfg.OpenAIAPIKey)
	holder := service.NewIndexHolder()
	indexSvc := service.NewIndexService(client)

	// Background index build. Requests arriving before it completes see
	// an unset holder and answer with the loading-context fallback.
	go func() {
		log.Println("building knowledge base embedding index...")
		index, err := indexSvc.BuildIndex(ctx, knowledge.Entries())
		if err != nil {
			log.Printf("failed to build knowledge index: %v", err)
			telemetry.CaptureError(ctx, err)
			return
		}
		holder.Publish(index)
		log.Printf("indexed %d knowledge entries", len(index))
	}()

	retrieval := service.RetrievalConfig{
		TopK:           cfg.TopK,
		ScoreThreshold: cfg.ScoreThreshold,
	}
	chatSvc := service.NewChatService(
		client, client, holder, retrieval,
		cfg.HistoryLimit,
		knowledge.SystemPrompt, knowledge.ContextPlaceholder,
	)

	routerCfg := server.RouterConfig{
		ChatHandler:   handlers.NewChatHandler(chatSvc, cfg.IsProduction()),
		RateLimiter:   middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow),
		AllowedOrigin: cfg.FrontendOrigin,
		StartedAt:     time.Now(),
	}

	router := server.NewRouter(routerCfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		log.Printf("health check: http://localhost:%s/health", cfg.Port)
		log.Printf("chat endpoint: POST http://localhost:%s/api/chat", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}
