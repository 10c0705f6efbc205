package resolver

import (
	"sort"
	"time"
)

// Record запись, участвующая в слиянии локальных уровней
type Record interface {
	RecordID() string
	RecordCreatedAt() time.Time
}

// Merge объединяет записи overlay (Tier 1) и seed датасета (Tier 2).
// Дубликаты по ID схлопываются в пользу первого аргумента - overlay-версия
// записи затеняет seed-версию с тем же ID. Результат отсортирован по
// createdAt по убыванию (сначала новые).
func Merge[T Record](tier1, tier2 []T) []T {
	seen := make(map[string]struct{}, len(tier1)+len(tier2))
	merged := make([]T, 0, len(tier1)+len(tier2))

	for _, rec := range tier1 {
		if _, ok := seen[rec.RecordID()]; ok {
			continue
		}
		seen[rec.RecordID()] = struct{}{}
		merged = append(merged, rec)
	}
	for _, rec := range tier2 {
		if _, ok := seen[rec.RecordID()]; ok {
			continue
		}
		seen[rec.RecordID()] = struct{}{}
		merged = append(merged, rec)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RecordCreatedAt().After(merged[j].RecordCreatedAt())
	})

	return merged
}

// Exclude убирает из результата записи с перечисленными ID
// (tombstones удаленных offline записей)
func Exclude[T Record](records []T, excludedIDs []string) []T {
	if len(excludedIDs) == 0 {
		return records
	}

	excluded := make(map[string]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}

	result := make([]T, 0, len(records))
	for _, rec := range records {
		if _, ok := excluded[rec.RecordID()]; ok {
			continue
		}
		result = append(result, rec)
	}
	return result
}
