// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"
	"google.golang.org/api/iterator"

	"learn-english-api/internal/config"
	"learn-english-api/internal/handlers"
	"learn-english-api/internal/middleware"
	"learn-english-api/internal/repository"
	"learn-english-api/internal/service"
)

func main() {
	// 設定ファイル読み込み前の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	// 開発時は読みやすいtint、それ以外はJSONハンドラを使う
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 2. Firestoreクライアントの初期化
	ctx := context.Background()
	client, err := repository.NewClient(ctx, &config.Cfg, logger)
	if err != nil {
		slog.Error("Error initializing Firestore client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("Error closing Firestore client", slog.Any("error", err))
		} else {
			slog.Info("Firestore client closed.")
		}
	}()

	// 3. Dependency Injection
	wordRepo := repository.NewFirestoreWordRepository(client)
	memberRepo := repository.NewFirestoreMemberRepository(client)

	wordService := service.NewWordService(wordRepo)
	memberService := service.NewMemberService(memberRepo)

	wordHandler := handlers.NewWordHandler(wordService, logger)
	memberHandler := handlers.NewMemberHandler(memberService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: config.Cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.AccountHeader},
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api", func(r chi.Router) {
		// --- Public routes ---
		r.Route("/member", func(r chi.Router) {
			r.Post("/signup", memberHandler.Signup)
			r.Post("/login", memberHandler.Login)
		})

		// --- Account-scoped routes (X-User-Account ヘッダー必須) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.AccountContext)

			r.Get("/english-list", wordHandler.GetWords)
			r.Get("/important-english-list", wordHandler.GetImportantWords)
			r.Get("/english", wordHandler.GetWord)
			r.Get("/english-important", wordHandler.GetImportantWord)
			r.Post("/english", wordHandler.PostWord)
			r.Put("/english", wordHandler.PutWord)
			r.Delete("/english", wordHandler.DeleteWord)
			r.Put("/important", wordHandler.ToggleImportant)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		// ルートコレクションを1件だけ読んでFirestoreへの到達性を確認する
		_, err := client.Collections(ctx).Next()
		if err != nil && err != iterator.Done {
			slog.ErrorContext(ctx, "Health check failed: could not reach Firestore", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 静的ファイル配信 (フロントエンドのビルド成果物など)
	r.Handle("/*", http.FileServer(http.Dir(config.Cfg.Static.Dir)))

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
