package catalog

import "sagashealth/models"

// CatalogService exposes the static service catalog.
type CatalogService interface {
	List(category, search string) []models.Service
	Categories() []string
	Get(id string) (*models.Service, error)
	AvailableTimes() []string
}

// DefaultCatalogService implements CatalogService over the in-memory catalog.
type DefaultCatalogService struct {
	Services []models.Service
}

// NewDefaultCatalogService returns a catalog backed by the built-in listings.
func NewDefaultCatalogService() *DefaultCatalogService {
	return &DefaultCatalogService{Services: listings}
}
