package service

import (
	"testing"
	"time"

	"github.com/bigkaa/tabel/report-module/internal/domain/model"
)

// TestReportCache_GetSet проверяет базовые операции Get/Set.
func TestReportCache_GetSet(t *testing.T) {
	cache := NewReportCache(100, 5*time.Minute)

	page := &model.WorkReportPage{Page: 1, PerPage: 25, Total: 42}
	key := cache.Key(ReportKindSummary, 25, 1)

	// Cache miss
	_, ok := cache.Get(ReportKindSummary, key)
	if ok {
		t.Fatal("ожидался cache miss для нового ключа")
	}

	// Set + cache hit
	cache.Set(key, page)
	got, ok := cache.Get(ReportKindSummary, key)
	if !ok {
		t.Fatal("ожидался cache hit после Set")
	}
	gotPage, ok := got.(*model.WorkReportPage)
	if !ok {
		t.Fatalf("тип в кэше = %T, ожидался *model.WorkReportPage", got)
	}
	if gotPage.Total != 42 {
		t.Errorf("Total = %d, ожидалось 42", gotPage.Total)
	}
}

// TestReportCache_KeyIsolation проверяет, что страницы с разными
// параметрами и видами отчётов не пересекаются.
func TestReportCache_KeyIsolation(t *testing.T) {
	cache := NewReportCache(100, 5*time.Minute)

	k1 := cache.Key(ReportKindSummary, 25, 1)
	k2 := cache.Key(ReportKindSummary, 25, 2)
	k3 := cache.Key(ReportKindSummary, 50, 1)
	k4 := cache.Key(ReportKindDetail, 25, 1)

	keys := map[string]bool{k1: true, k2: true, k3: true, k4: true}
	if len(keys) != 4 {
		t.Fatalf("ключи не уникальны: %q, %q, %q, %q", k1, k2, k3, k4)
	}

	cache.Set(k1, &model.WorkReportPage{Page: 1})
	if _, ok := cache.Get(ReportKindSummary, k2); ok {
		t.Error("страница 2 не должна попадать в кэш страницы 1")
	}
	if _, ok := cache.Get(ReportKindDetail, k4); ok {
		t.Error("detail не должен попадать в кэш summary")
	}
}

// TestReportCache_Invalidate проверяет поколенческую инвалидацию:
// после Invalidate старые ключи недостижимы для всех видов отчётов.
func TestReportCache_Invalidate(t *testing.T) {
	cache := NewReportCache(100, 5*time.Minute)

	summaryKey := cache.Key(ReportKindSummary, 25, 1)
	detailKey := cache.Key(ReportKindDetail, 25, 1)
	matrixKey := cache.Key(ReportKindMatrix, 25, 1)

	cache.Set(summaryKey, &model.WorkReportPage{})
	cache.Set(detailKey, &model.WorkReportPage{})
	cache.Set(matrixKey, &model.MatrixReport{})

	cache.Invalidate()

	// Новые ключи отличаются от старых
	if cache.Key(ReportKindSummary, 25, 1) == summaryKey {
		t.Error("ключ summary не изменился после Invalidate")
	}
	if cache.Key(ReportKindDetail, 25, 1) == detailKey {
		t.Error("ключ detail не изменился после Invalidate")
	}
	if cache.Key(ReportKindMatrix, 25, 1) == matrixKey {
		t.Error("ключ matrix не изменился после Invalidate")
	}

	// По новым ключам — miss
	if _, ok := cache.Get(ReportKindSummary, cache.Key(ReportKindSummary, 25, 1)); ok {
		t.Error("ожидался cache miss после инвалидации summary")
	}
	if _, ok := cache.Get(ReportKindMatrix, cache.Key(ReportKindMatrix, 25, 1)); ok {
		t.Error("ожидался cache miss после инвалидации matrix")
	}
}

// TestReportCache_TTLExpiration проверяет автоматическое истечение TTL.
func TestReportCache_TTLExpiration(t *testing.T) {
	// Короткий TTL = 50ms для теста
	cache := NewReportCache(100, 50*time.Millisecond)

	key := cache.Key(ReportKindSummary, 25, 1)
	cache.Set(key, &model.WorkReportPage{})

	// Сразу после Set — должен быть hit
	if _, ok := cache.Get(ReportKindSummary, key); !ok {
		t.Fatal("ожидался cache hit сразу после Set")
	}

	// Ждём истечения TTL
	time.Sleep(100 * time.Millisecond)

	if _, ok := cache.Get(ReportKindSummary, key); ok {
		t.Fatal("ожидался cache miss после истечения TTL")
	}
}

// TestReportCache_Eviction проверяет вытеснение при превышении maxSize.
func TestReportCache_Eviction(t *testing.T) {
	// Кэш на 2 записи
	cache := NewReportCache(2, 5*time.Minute)

	k1 := cache.Key(ReportKindSummary, 25, 1)
	k2 := cache.Key(ReportKindSummary, 25, 2)
	k3 := cache.Key(ReportKindSummary, 25, 3)

	cache.Set(k1, &model.WorkReportPage{Page: 1})
	cache.Set(k2, &model.WorkReportPage{Page: 2})

	if _, ok := cache.Get(ReportKindSummary, k1); !ok {
		t.Fatal("ожидался cache hit для страницы 1")
	}
	if _, ok := cache.Get(ReportKindSummary, k2); !ok {
		t.Fatal("ожидался cache hit для страницы 2")
	}

	// Добавляем третью — самая старая вытесняется
	cache.Set(k3, &model.WorkReportPage{Page: 3})

	if _, ok := cache.Get(ReportKindSummary, k3); !ok {
		t.Fatal("ожидался cache hit для страницы 3")
	}
}
