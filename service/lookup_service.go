// api/service/lookup_service.go
package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dev-anuragv/skillboard/api/dao"
	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	logger "github.com/dev-anuragv/skillboard/api/logging"
)

// LookupService keeps the city and skill reference tables in memory.
// Refresh must complete once before the server starts accepting requests;
// afterwards it may be called at any time to pick up new rows.
type LookupService struct {
	lookupDAO *dao.LookupDAO

	mu     sync.RWMutex
	cities map[string]uint
	skills map[string]uint
}

func NewLookupService(lookupDAO *dao.LookupDAO) *LookupService {
	return &LookupService{
		lookupDAO: lookupDAO,
		cities:    make(map[string]uint),
		skills:    make(map[string]uint),
	}
}

// Refresh reloads both tables from the database.
func (s *LookupService) Refresh(ctx context.Context) error {
	cities, err := s.lookupDAO.ListCities(ctx)
	if err != nil {
		return err
	}
	skills, err := s.lookupDAO.ListSkills(ctx)
	if err != nil {
		return err
	}

	cityIDs := make(map[string]uint, len(cities))
	for _, c := range cities {
		cityIDs[c.Name] = c.ID
	}
	skillIDs := make(map[string]uint, len(skills))
	for _, sk := range skills {
		skillIDs[sk.Name] = sk.ID
	}

	s.mu.Lock()
	s.cities = cityIDs
	s.skills = skillIDs
	s.mu.Unlock()

	logger.Info("Lookup tables refreshed",
		zap.Int("cities", len(cityIDs)),
		zap.Int("skills", len(skillIDs)))
	return nil
}

func (s *LookupService) CityID(name string) (uint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.cities[name]
	if !ok {
		return 0, board_errors.ErrCityNotFound
	}
	return id, nil
}

func (s *LookupService) SkillID(name string) (uint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.skills[name]
	if !ok {
		return 0, board_errors.ErrSkillNotFound
	}
	return id, nil
}
