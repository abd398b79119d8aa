package entity

import "time"

// WeightRecord is a single weigh-in owned by exactly one user. It renders
// directly in API responses, so the field names carry JSON tags.
type WeightRecord struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"` // Owning user. All non-admin access is scoped to this.
	Weight     float64   `json:"weight"`
	Unit       string    `json:"unit"` // Defaults to "kg" when the client omits it.
	Notes      string    `json:"notes"`
	RecordedAt time.Time `json:"recordedAt"`
}

// WeightStatistics summarizes a user's weight records over a period.
type WeightStatistics struct {
	TotalRecords  int     `json:"totalRecords"`
	CurrentWeight float64 `json:"currentWeight"`
	StartWeight   float64 `json:"startWeight"`
	MinWeight     float64 `json:"minWeight"`
	MaxWeight     float64 `json:"maxWeight"`
	AvgWeight     float64 `json:"avgWeight"`
	WeightChange  float64 `json:"weightChange"`
}
