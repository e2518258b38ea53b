// logger - пакет с логером сервера и middleware для логирования входящих запросов.
package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ServerLog будет доступен всему коду как синглтон.
// Никакой код, кроме функции Initialize, не должен модифицировать эту переменную.
// По умолчанию установлен no-op-логер, который не выводит никаких сообщений.
var ServerLog *zap.Logger = zap.NewNop()

// Initialize - инициализирует синглтон логера с необходимым уровнем логирования.
func Initialize(level string) error {
	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	// создаём новую конфигурацию логера
	cfg := zap.NewProductionConfig()
	// устанавливаем уровень
	cfg.Level = lvl
	// создаём логер на основе конфигурации
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	// устанавливаем синглтон
	ServerLog = zl
	return nil
}

type (
	// Беру за основу структуру для хранения сведений об ответе
	responseData struct {
		status int
		size   int
	}

	// добавляю реализацию http.ResponseWriter
	loggingResponseWriter struct {
		http.ResponseWriter // встраиваю оригинальный http.ResponseWriter
		responseData        *responseData
	}
)

// Write - переопределяю метод Write для подсчета размера ответа.
func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	// записываю ответ, используя оригинальный http.ResponseWriter
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size // захватываю размер
	return size, err
}

// WriteHeader - переопределяю метод WriteHeader для захвата кода статуса ответа.
func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	// записываю код статуса, используя оригинальный http.ResponseWriter
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode // захватываю код статуса
}

// RequestLogger - middleware-логер для входящих HTTP-запросов.
func RequestLogger(h http.HandlerFunc) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()

		responseData := &responseData{
			status: 0,
			size:   0,
		}
		lw := loggingResponseWriter{
			ResponseWriter: res, // встраиваю оригинальный http.ResponseWriter
			responseData:   responseData,
		}

		// обслуживание оригинального запроса
		h.ServeHTTP(&lw, req)

		duration := time.Since(start)

		ServerLog.Info("got incoming HTTP request",
			zap.String("uri", req.RequestURI),
			zap.String("method", req.Method),
			zap.String("duration", duration.String()),
			zap.Int("status", responseData.status),
			zap.Int("size", responseData.size),
		)
	}
}
