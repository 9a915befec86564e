// Пакет service — бизнес-логика Report Module.
// ReportCache — LRU-кэш готовых страниц отчётов с TTL и
// поколенческой инвалидацией. Обёртка над hashicorp/golang-lru/v2/expirable.
package service

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Виды отчётов — каждый вид имеет независимое поколение кэша.
const (
	ReportKindSummary = "summary"
	ReportKindDetail  = "detail"
	ReportKindMatrix  = "matrix"
)

// Prometheus-метрики кэша отчётов.
var (
	cacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rm_report_cache_hits_total",
		Help: "Общее количество попаданий в LRU-кэш отчётов.",
	}, []string{"kind"})
	cacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rm_report_cache_misses_total",
		Help: "Общее количество промахов LRU-кэша отчётов.",
	}, []string{"kind"})
	cacheInvalidationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rm_report_cache_invalidations_total",
		Help: "Общее количество инвалидаций кэша отчётов (смена поколения).",
	})
)

// ReportCache — LRU-кэш собранных страниц отчётов с автоматическим TTL.
// Инвалидация — поколенческая: номер поколения вида отчёта входит в ключ,
// Invalidate атомарно увеличивает поколения, после чего все старые ключи
// становятся недостижимыми и доживают в LRU до вытеснения или истечения TTL.
// Каждый экземпляр RM имеет собственный in-memory кэш (per-instance).
type ReportCache struct {
	cache *expirable.LRU[string, any]

	// Поколения по видам отчётов.
	summaryGen atomic.Uint64
	detailGen  atomic.Uint64
	matrixGen  atomic.Uint64
}

// NewReportCache создаёт LRU-кэш отчётов с указанным размером и TTL.
// maxSize — максимальное количество страниц в кэше.
// ttl — время жизни страницы после добавления.
func NewReportCache(maxSize int, ttl time.Duration) *ReportCache {
	cache := expirable.NewLRU[string, any](maxSize, nil, ttl)
	return &ReportCache{cache: cache}
}

// Key строит ключ кэша для страницы отчёта с учётом текущего поколения вида.
func (c *ReportCache) Key(kind string, perPage, page int) string {
	return fmt.Sprintf("%s_g%d_page_%d_p%d", kind, c.generation(kind).Load(), perPage, page)
}

// KeyRange строит ключ кэша для отчёта за диапазон дат (matrix).
func (c *ReportCache) KeyRange(kind, from, to string) string {
	return fmt.Sprintf("%s_g%d_%s_%s", kind, c.generation(kind).Load(), from, to)
}

// Get возвращает страницу отчёта из кэша по ключу.
// Возвращает (страница, true) при hit или (nil, false) при miss.
// Обновляет Prometheus-метрики hit/miss.
func (c *ReportCache) Get(kind, key string) (any, bool) {
	val, ok := c.cache.Get(key)
	if ok {
		cacheHitsTotal.WithLabelValues(kind).Inc()
		return val, true
	}
	cacheMissesTotal.WithLabelValues(kind).Inc()
	return nil, false
}

// Set добавляет или обновляет страницу отчёта в кэше.
func (c *ReportCache) Set(key string, page any) {
	c.cache.Add(key, page)
}

// Invalidate сбрасывает все виды отчётов: увеличивает поколения,
// делая закэшированные страницы недостижимыми.
// Вызывается при любом изменении журнала событий (создание, удаление).
func (c *ReportCache) Invalidate() {
	c.summaryGen.Add(1)
	c.detailGen.Add(1)
	c.matrixGen.Add(1)
	cacheInvalidationsTotal.Inc()
}

// generation возвращает счётчик поколения для вида отчёта.
// Неизвестный вид приравнивается к summary.
func (c *ReportCache) generation(kind string) *atomic.Uint64 {
	switch kind {
	case ReportKindDetail:
		return &c.detailGen
	case ReportKindMatrix:
		return &c.matrixGen
	default:
		return &c.summaryGen
	}
}
