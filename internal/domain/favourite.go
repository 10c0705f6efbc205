package domain

import "time"

// Favourite represents the user<->restaurant favourite relation.
// At most one record exists per (UserID, RestaurantID) pair at any time;
// the invariant is preserved by the toggle operation.
type Favourite struct {
	ID           string
	UserID       string
	RestaurantID string
	CreatedAt    time.Time
}

// RecordID implements the merge identity used by the fallback resolver
func (f *Favourite) RecordID() string { return f.ID }

// RecordCreatedAt implements the merge ordering used by the fallback resolver
func (f *Favourite) RecordCreatedAt() time.Time { return f.CreatedAt }
