package catalog

import (
	"fmt"
	"strings"

	"sagashealth/models"
)

// ErrServiceNotFound is returned when a listing id has no catalog entry.
var ErrServiceNotFound = fmt.Errorf("service not found")

// List returns listings filtered by category and search term. Category "All"
// (or empty) passes every listing; the search term matches name, description,
// or provider case-insensitively.
func (s *DefaultCatalogService) List(category, search string) []models.Service {
	filtered := make([]models.Service, 0, len(s.Services))
	term := strings.ToLower(search)

	for _, svc := range s.Services {
		if category != "" && category != "All" && svc.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(svc.Name), term) &&
			!strings.Contains(strings.ToLower(svc.Description), term) &&
			!strings.Contains(strings.ToLower(svc.Provider), term) {
			continue
		}
		filtered = append(filtered, svc)
	}
	return filtered
}

// Categories returns "All" followed by the distinct categories in catalog order.
func (s *DefaultCatalogService) Categories() []string {
	categories := []string{"All"}
	seen := map[string]bool{}
	for _, svc := range s.Services {
		if !seen[svc.Category] {
			seen[svc.Category] = true
			categories = append(categories, svc.Category)
		}
	}
	return categories
}

// Get looks up a single listing by id.
func (s *DefaultCatalogService) Get(id string) (*models.Service, error) {
	for i := range s.Services {
		if s.Services[i].ID == id {
			svc := s.Services[i]
			return &svc, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
}

// AvailableTimes returns the static appointment time slots.
func (s *DefaultCatalogService) AvailableTimes() []string {
	times := make([]string, len(availableTimes))
	copy(times, availableTimes)
	return times
}
