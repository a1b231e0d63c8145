package service

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/brewlog/brewlog/internal/calendar"
	"github.com/brewlog/brewlog/internal/model"
	"github.com/brewlog/brewlog/internal/repository"
	"github.com/brewlog/brewlog/internal/validation"
)

// EntryService validates and stamps consumption entries before they reach
// the repository. A failed validation never touches the store.
type EntryService struct {
	repo  repository.EntryRepository
	clock Clock
}

func NewEntryService(repo repository.EntryRepository, clock Clock) *EntryService {
	return &EntryService{
		repo:  repo,
		clock: clock,
	}
}

// Add logs a drink for today. This path cannot backdate.
func (s *EntryService) Add(name string, alcoholPercentage, volumeML float64, notes string) (*model.BeerEntry, error) {
	err := validation.ValidateEntry(name, alcoholPercentage, volumeML)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	entry := &model.BeerEntry{
		ID:                uuid.New().String(),
		Name:              name,
		AlcoholPercentage: alcoholPercentage,
		VolumeML:          volumeML,
		Date:              calendar.Today(now),
		Notes:             notes,
		CreatedAt:         calendar.Timestamp(now),
	}

	err = s.repo.Create(entry)
	if err != nil {
		return nil, err
	}

	slog.Debug("entry added", "id", entry.ID, "date", entry.Date)
	return entry, nil
}

// AddFull creates or fully replaces the entry with the given id. An empty id
// creates a new entry.
func (s *EntryService) AddFull(id, name string, alcoholPercentage, volumeML float64, date, notes string) (*model.BeerEntry, error) {
	err := validation.ValidateEntry(name, alcoholPercentage, volumeML)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateDate(date)
	if err != nil {
		return nil, err
	}

	if id == "" {
		id = uuid.New().String()
	}

	entry := &model.BeerEntry{
		ID:                id,
		Name:              name,
		AlcoholPercentage: alcoholPercentage,
		VolumeML:          volumeML,
		Date:              date,
		Notes:             notes,
		CreatedAt:         calendar.Timestamp(s.clock.now()),
	}

	err = s.repo.Upsert(entry)
	if err != nil {
		return nil, err
	}

	slog.Debug("entry saved", "id", entry.ID, "date", entry.Date)
	return entry, nil
}

// AddPreset logs today's drink from a preset.
func (s *EntryService) AddPreset(preset model.DrinkPreset, notes string) (*model.BeerEntry, error) {
	return s.Add(preset.Name, preset.Strength, float64(preset.Volume), notes)
}

// Get returns entries dated within [startDate, endDate], newest first.
func (s *EntryService) Get(startDate, endDate string) ([]*model.BeerEntry, error) {
	return s.repo.Entries(startDate, endDate)
}

func (s *EntryService) ByID(id string) (*model.BeerEntry, error) {
	return s.repo.ByID(id)
}

// Update rewrites name, strength, volume and notes. The date is untouched.
func (s *EntryService) Update(id, name string, alcoholPercentage, volumeML float64, notes string) error {
	err := validation.ValidateEntry(name, alcoholPercentage, volumeML)
	if err != nil {
		return err
	}

	return s.repo.Update(&model.BeerEntry{
		ID:                id,
		Name:              name,
		AlcoholPercentage: alcoholPercentage,
		VolumeML:          volumeML,
		Notes:             notes,
	})
}

func (s *EntryService) UpdateDate(id, date string) error {
	err := validation.ValidateDate(date)
	if err != nil {
		return err
	}
	return s.repo.UpdateDate(id, date)
}

func (s *EntryService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Clear removes every entry and every goal. Irreversible.
func (s *EntryService) Clear() error {
	err := s.repo.ClearAll()
	if err != nil {
		return err
	}

	slog.Info("all entries and goals cleared")
	return nil
}
