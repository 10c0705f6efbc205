package resolver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

func review(id string, createdAt time.Time) *domain.Review {
	return &domain.Review{ID: id, Rating: 5, CreatedAt: createdAt}
}

func TestMerge_ShadowsAndSorts(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tier2 := []*domain.Review{
		review("rev_001", base),
		review("rev_002", base.Add(time.Hour)),
	}
	// Overlay-версия rev_001 затеняет seed-версию
	shadow := review("rev_001", base.Add(2*time.Hour))
	shadow.Rating = 1
	tier1 := []*domain.Review{
		shadow,
		review("local-1-abc", base.Add(3*time.Hour)),
	}

	merged := Merge(tier1, tier2)

	require.Len(t, merged, 3)
	// Сначала новые
	assert.Equal(t, "local-1-abc", merged[0].ID)
	assert.Equal(t, "rev_001", merged[1].ID)
	assert.Equal(t, "rev_002", merged[2].ID)
	// Победила overlay-версия
	assert.Equal(t, 1, merged[1].Rating)
}

func TestMerge_EmptyTiers(t *testing.T) {
	assert.Empty(t, Merge[*domain.Review](nil, nil))

	single := []*domain.Review{review("rev_001", time.Now())}
	assert.Len(t, Merge(single, nil), 1)
	assert.Len(t, Merge(nil, single), 1)
}

func TestExclude_RemovesTombstoned(t *testing.T) {
	base := time.Now()
	records := []*domain.Review{
		review("rev_001", base),
		review("rev_002", base),
		review("local-1-abc", base),
	}

	result := Exclude(records, []string{"rev_002"})

	require.Len(t, result, 2)
	assert.Equal(t, "rev_001", result[0].ID)
	assert.Equal(t, "local-1-abc", result[1].ID)
}

func TestExclude_NoTombstones(t *testing.T) {
	records := []*domain.Review{review("rev_001", time.Now())}
	assert.Equal(t, records, Exclude(records, nil))
}
