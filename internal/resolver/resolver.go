package resolver

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-RestaurantService/internal/integrations/platformapi"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer интерфейс для учета fallback-срабатываний в метриках
type Observer interface {
	IncFallback(operation string)
	IncRemoteFailure(operation string)
}

// NopObserver заглушка, когда метрики выключены
type NopObserver struct{}

// IncFallback ничего не делает
func (NopObserver) IncFallback(operation string) {}

// IncRemoteFailure ничего не делает
func (NopObserver) IncRemoteFailure(operation string) {}

// Resolver реализует многоуровневое разрешение данных: каждая операция
// сначала выполняется против авторитетного сервиса платформы, и только при
// его недоступности - против локальных уровней (seed датасет + overlay).
//
// Правила:
//   - успешный удаленный ответ авторитетен, локальные уровни не опрашиваются;
//   - 401 и авторитетные отказы (404, валидация) НЕ приводят к fallback
//     и всплывают без изменений;
//   - недоступность платформы проглатывается: логируется, учитывается
//     в метриках и прозрачно закрывается fallback-результатом.
type Resolver struct {
	log Logger
	obs Observer
}

// New создает Resolver
func New(log Logger, obs Observer) *Resolver {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Resolver{log: log, obs: obs}
}

// Execute выполняет операцию через удаленный вызов с прозрачным fallback.
// Единственная точка, где принимается решение remote vs local - все
// менеджеры доменных операций выражают чтения и записи через нее.
func Execute[T any](ctx context.Context, r *Resolver, operation string, remote, fallback func(context.Context) (T, error)) (T, error) {
	result, err := remote(ctx)
	if err == nil {
		return result, nil
	}

	if !errors.Is(err, platformapi.ErrServiceUnavailable) {
		// Авторитетный отказ платформы (401, 404, валидация) - без fallback
		var zero T
		return zero, err
	}

	r.obs.IncRemoteFailure(operation)
	r.obs.IncFallback(operation)
	r.log.Warn("resolver: %s - platform unavailable, resolving from local tiers: %v", operation, err)

	return fallback(ctx)
}
