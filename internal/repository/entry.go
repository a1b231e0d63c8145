package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/brewlog/brewlog/internal/apperr"
	"github.com/brewlog/brewlog/internal/model"
	"github.com/brewlog/brewlog/internal/store"
)

var (
	ErrEntryNotFound = errors.New("beer entry not found")
)

type EntryRepository interface {
	Create(entry *model.BeerEntry) error
	Upsert(entry *model.BeerEntry) error
	ByID(id string) (*model.BeerEntry, error)
	Entries(startDate, endDate string) ([]*model.BeerEntry, error)
	Update(entry *model.BeerEntry) error
	UpdateDate(id, date string) error
	Delete(id string) error
	ClearAll() error
	Count() (int, error)
}

type entryRepository struct {
	store *store.Store
}

func NewEntryRepository(s *store.Store) EntryRepository {
	return &entryRepository{store: s}
}

func entryNotFound(id string) error {
	return apperr.Wrap(apperr.NotFound, ErrEntryNotFound, "Beer entry with id %s not found", id)
}

func (r *entryRepository) Create(entry *model.BeerEntry) error {
	query := `INSERT INTO beer_entries (id, name, alcohol_percentage, volume_ml, date, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	return r.store.With(func(db sqlx.Ext) error {
		_, err := db.Exec(query,
			entry.ID,
			entry.Name,
			entry.AlcoholPercentage,
			entry.VolumeML,
			entry.Date,
			entry.Notes,
			entry.CreatedAt,
		)
		return err
	})
}

// Upsert inserts entry or replaces every mutable field of the row with the
// same id. The stored created_at is kept and copied back into entry.
func (r *entryRepository) Upsert(entry *model.BeerEntry) error {
	query := `INSERT INTO beer_entries (id, name, alcohol_percentage, volume_ml, date, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT(id) DO UPDATE SET
	              name = excluded.name,
	              alcohol_percentage = excluded.alcohol_percentage,
	              volume_ml = excluded.volume_ml,
	              date = excluded.date,
	              notes = excluded.notes`

	return r.store.Tx(func(db sqlx.Ext) error {
		_, err := db.Exec(query,
			entry.ID,
			entry.Name,
			entry.AlcoholPercentage,
			entry.VolumeML,
			entry.Date,
			entry.Notes,
			entry.CreatedAt,
		)
		if err != nil {
			return err
		}

		return sqlx.Get(db, &entry.CreatedAt, `SELECT created_at FROM beer_entries WHERE id = $1`, entry.ID)
	})
}

func (r *entryRepository) ByID(id string) (*model.BeerEntry, error) {
	entry := &model.BeerEntry{}
	query := `SELECT * FROM beer_entries WHERE id = $1`

	err := r.store.With(func(db sqlx.Ext) error {
		err := sqlx.Get(db, entry, query, id)
		if errors.Is(err, sql.ErrNoRows) {
			return entryNotFound(id)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Entries returns entries dated within [startDate, endDate], newest first.
// Dates compare as text, which matches calendar order for YYYY-MM-DD.
func (r *entryRepository) Entries(startDate, endDate string) ([]*model.BeerEntry, error) {
	entries := []*model.BeerEntry{}
	query := `SELECT * FROM beer_entries
	          WHERE date BETWEEN $1 AND $2
	          ORDER BY date DESC, created_at DESC`

	err := r.store.With(func(db sqlx.Ext) error {
		return sqlx.Select(db, &entries, query, startDate, endDate)
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *entryRepository) Update(entry *model.BeerEntry) error {
	query := `UPDATE beer_entries
	          SET name = $1, alcohol_percentage = $2, volume_ml = $3, notes = $4
	          WHERE id = $5`

	return r.store.With(func(db sqlx.Ext) error {
		result, err := db.Exec(query,
			entry.Name,
			entry.AlcoholPercentage,
			entry.VolumeML,
			entry.Notes,
			entry.ID,
		)
		if err != nil {
			return err
		}
		return requireRow(result, entry.ID)
	})
}

func (r *entryRepository) UpdateDate(id, date string) error {
	query := `UPDATE beer_entries SET date = $1 WHERE id = $2`

	return r.store.With(func(db sqlx.Ext) error {
		result, err := db.Exec(query, date, id)
		if err != nil {
			return err
		}
		return requireRow(result, id)
	})
}

func (r *entryRepository) Delete(id string) error {
	query := `DELETE FROM beer_entries WHERE id = $1`

	return r.store.With(func(db sqlx.Ext) error {
		result, err := db.Exec(query, id)
		if err != nil {
			return err
		}
		return requireRow(result, id)
	})
}

// ClearAll removes every entry and every goal in one transaction.
func (r *entryRepository) ClearAll() error {
	return r.store.Tx(func(db sqlx.Ext) error {
		_, err := db.Exec(`DELETE FROM beer_entries`)
		if err != nil {
			return err
		}
		_, err = db.Exec(`DELETE FROM consumption_goals`)
		return err
	})
}

func (r *entryRepository) Count() (int, error) {
	var count int
	err := r.store.With(func(db sqlx.Ext) error {
		return sqlx.Get(db, &count, `SELECT COUNT(*) FROM beer_entries`)
	})
	return count, err
}

func requireRow(result sql.Result, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return entryNotFound(id)
	}

	return nil
}
