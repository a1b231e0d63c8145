package model

// BeerEntry is one logged consumption event.
// Field order is the JSON order expected by the host app.
type BeerEntry struct {
	ID                string  `db:"id" json:"id"`
	Name              string  `db:"name" json:"name"`
	AlcoholPercentage float64 `db:"alcohol_percentage" json:"alcohol_percentage"`
	VolumeML          float64 `db:"volume_ml" json:"volume_ml"`
	Date              string  `db:"date" json:"date"`
	Notes             string  `db:"notes" json:"notes"`
	CreatedAt         string  `db:"created_at" json:"-"`
}

// TotalVolume sums volume_ml over entries.
func TotalVolume(entries []*BeerEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.VolumeML
	}
	return total
}
