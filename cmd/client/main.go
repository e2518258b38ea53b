package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"secretkeeper/internal/client/identity"
	"secretkeeper/internal/client/identity/auth"
	"secretkeeper/internal/client/logger"
	"secretkeeper/internal/client/storage/info"
	"secretkeeper/internal/client/tui"
	"secretkeeper/internal/client/tui/app"
	"secretkeeper/internal/client/tui/home"
	"secretkeeper/internal/client/tui/ident/authorize"
	"secretkeeper/internal/client/tui/ident/register"
	"secretkeeper/internal/client/tui/secrets/submit"
	"secretkeeper/internal/client/tui/secrets/view"

	"github.com/go-resty/resty/v2"
)

const (
	registerPattern = "/api/client/register" // паттерн api для регистрации учетной записи
	loginPattern    = "/api/client/login"    // паттерн api для входа по логину и паролю
	secretsPattern  = "/api/client/secrets"  // паттерн api для просмотра и добавления секретов
)

func main() {
	err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	// Инициализирую хранилище данных сессии в оперативной памяти
	info := info.NewUserInfoStorage()

	// Инициализирую resty клиента
	client := resty.New()

	ctx := context.Background()
	// ------------------------------------------------------------------------------
	run(ctx, info, client)
}

// run - будет полезна при инициализации зависимостей клиента перед запуском
func run(ctx context.Context, info identity.IUserInfoStorage, client *resty.Client) {
	// инициализация логера. Логи выводятся в файл, чтобы не мешать отрисовке TUI
	if err := logger.Initialize(logLevel, logFile); err != nil {
		log.Fatalf("Error starting client: %v", err)
	}
	// Добавляю многопоточность
	var wg sync.WaitGroup

	// Create a context with cancel function for graceful shutdown
	ctx, cancelCtx := context.WithCancel(ctx)

	// Устанавливаю мидлвари для resty клиента: установка токена сессии перед запросом
	// и повторный вход при истечении срока действия токена
	client.OnBeforeRequest(auth.OnBeforeMiddleware(info))
	client.OnAfterResponse(auth.OnAfterMiddleware(info, netAddr+loginPattern))

	// Создаю TUI интерфейс
	app := createTUI(ctx, info, client)

	// Запускаю интерфейс в отдельной горутине
	go func() {
		if err := app.Run(); err != nil {
			log.Fatalf("tui stopped with error, %v", err)
		}
	}()

	// Горутина для остановки TUI при завершении контекста
	wg.Add(1)
	go func() {
		defer wg.Done()

		// ожидаю завершения контекста
		<-ctx.Done()

		// Завершаю работу интерфейса
		app.Stop()
	}()

	// Канал для получения сигнала прерывания
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Блокирование до тех пор, пока не поступит сигнал о прерывании
	<-quit
	logger.ClientLog.Info("Shutting down client...")

	// Закрываю контекст для остановки вспомогательных горутин
	cancelCtx()

	// Ожидаю завершения работы всех горутин
	wg.Wait()

	logger.ClientLog.Info("Shutdown the client gracefully")
}

func createTUI(ctx context.Context, info identity.IUserInfoStorage, client *resty.Client) *app.App {
	// создаю страницы TUI
	prims := []app.Primitives{}
	// Добавляю страницу просмотра секретов
	prims = append(prims, app.Primitives{
		Name: tui.Secrets,
		Prim: view.Page(ctx, info, netAddr+secretsPattern, client),
	})
	// Добавляю страницу добавления нового секрета
	prims = append(prims, app.Primitives{
		Name: tui.Submit,
		Prim: submit.Page(ctx, netAddr+secretsPattern, client),
	})
	// Добавляю страницу регистрации
	prims = append(prims, app.Primitives{
		Name: tui.Register,
		Prim: register.Page(ctx, info, netAddr+registerPattern, client),
	})
	// Добавляю страницу входа
	prims = append(prims, app.Primitives{
		Name: tui.Login,
		Prim: authorize.LoginPage(ctx, info, netAddr+loginPattern, client),
	})
	// Добавляю приветственную страницу. Страница добавляется последней, чтобы быть видимой при запуске
	prims = append(prims, app.Primitives{
		Name: tui.Home,
		Prim: home.Page,
	})

	return app.NewApp(prims)
}
