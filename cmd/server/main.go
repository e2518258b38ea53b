package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"secretkeeper/internal/server/handlers"
	"secretkeeper/internal/server/identity/auth"
	"secretkeeper/internal/server/identity/strategy"
	"secretkeeper/internal/server/logger"
	"secretkeeper/internal/server/oauth"
	"secretkeeper/internal/server/storage/pg"

	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const shutdownWaitPeriod = 20 * time.Second // для установки в контекст для реализаации graceful shutdown

func main() {
	err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	ctx := context.Background()
	// создаем экземпляр хранилища pg
	stor, err := pg.NewStore(ctx, databaseDsn)
	if err != nil {
		log.Fatalf("Failed to create storage: %v\n", err)
	}
	// ------------------------------------------------------------------------------

	run(ctx, stor)
}

// функция run будет необходима для инициализации зависимостей сервера перед запуском
func run(ctx context.Context, stor *pg.Store) {
	// Инициализация логера
	if err := logger.Initialize(logLevel); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}

	logger.ServerLog.Info("Running secretkeeper", zap.String("address", netAddr))

	// запускаю сам сервис с проверкой отмены контекста для реализации graceful shutdown--------------
	srv := &http.Server{
		Addr:    netAddr,
		Handler: SecretRouter(stor),
	}
	// Канал для получения сигнала прерывания
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Горутина для запуска сервера
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	// Блокирование до тех пор, пока не поступит сигнал о прерывании
	<-quit
	logger.ServerLog.Info("Shutting down server...", zap.String("address", netAddr))

	// Create a context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(ctx, shutdownWaitPeriod)
	defer cancel()

	// останавливаю сервер, чтобы он перестал принимать новые запросы
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Stopping server error: %v", err)
	}

	logger.ServerLog.Info("Shutdown the server gracefully", zap.String("address", netAddr))
}

// SecretRouter - дирижирует обработку http запросов к серверу.
func SecretRouter(stor *pg.Store) chi.Router {
	r := chi.NewRouter()

	// локальная стратегия входа по логину и паролю
	local := strategy.NewLocal(stor)
	// middleware аутентификации для защищенных маршрутов
	protect := auth.Middleware(stor)

	r.Route("/api/client", func(r chi.Router) {
		r.Post("/register", logger.RequestLogger(handlers.RegisterHandler(stor)))
		r.Post("/login", logger.RequestLogger(handlers.LoginHandler(local)))

		r.Get("/secrets", logger.RequestLogger(protect(handlers.ListSecretsHandler(stor))))
		r.Post("/secrets", logger.RequestLogger(protect(handlers.SubmitSecretHandler(stor))))
	})

	// маршруты входа через внешних провайдеров. Регистрируются только для провайдеров,
	// параметры которых заданы в конфигурации
	if googleID != "" && googleSecret != "" {
		google := oauth.NewGoogle(googleID, googleSecret, baseURL+"/auth/google/secrets", resty.New())
		r.Get("/auth/google", logger.RequestLogger(handlers.FederatedLoginHandler(google)))
		r.Get("/auth/google/secrets", logger.RequestLogger(handlers.FederatedCallbackHandler(google, stor)))
	}
	if facebookID != "" && facebookSecret != "" {
		facebook := oauth.NewFacebook(facebookID, facebookSecret, baseURL+"/auth/facebook/secrets", resty.New())
		r.Get("/auth/facebook", logger.RequestLogger(handlers.FederatedLoginHandler(facebook)))
		r.Get("/auth/facebook/secrets", logger.RequestLogger(handlers.FederatedCallbackHandler(facebook, stor)))
	}

	r.Get(auth.LoginPath, logger.RequestLogger(handlers.LoginEntry()))
	r.Get("/logout", logger.RequestLogger(handlers.Logout()))

	// Определяем маршрут по умолчанию для некорректных запросов
	r.NotFound(logger.RequestLogger(handlers.HandleOtherRequest()))

	return r
}
