package handlers

import (
	"errors"
	"net/http"

	"sagashealth/middleware"
	"sagashealth/models"
	"sagashealth/services/catalog"
	"sagashealth/services/geo"
	"sagashealth/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// defaultMapCenter is used when the caller's geolocation is unavailable (NYC).
var defaultMapCenter = models.Coordinates{Lat: 40.7128, Lng: -74.006}

// CatalogHandler serves the static service catalog and the map payload.
type CatalogHandler struct {
	Catalog  catalog.CatalogService
	Geocoder geo.Geocoder
	Logger   *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalogSvc catalog.CatalogService, geocoder geo.Geocoder, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: catalogSvc, Geocoder: geocoder, Logger: logger}
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")
	services := h.Catalog.List(category, search)
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetServiceCategories handles GET /api/services/categories.
func (h *CatalogHandler) GetServiceCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Catalog.Categories()})
}

// GetServiceByID handles GET /api/services/:id. An unknown id redirects the
// client back to the catalog.
func (h *CatalogHandler) GetServiceByID(c *gin.Context) {
	id := c.Param("id")
	svc, err := h.Catalog.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			utils.JSONRedirect(c, "/marketplace")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"service":        svc,
		"availableTimes": h.Catalog.AvailableTimes(),
	})
}

// GetServiceMap handles GET /api/services/map. With a geocoding credential
// it returns markers for the filtered service set; without one it degrades
// to a textual list of the same services.
func (h *CatalogHandler) GetServiceMap(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")
	services := h.Catalog.List(category, search)

	if !h.Geocoder.HasCredential() {
		c.JSON(http.StatusOK, gin.H{
			"mode":     "list",
			"services": services,
		})
		return
	}

	center := defaultMapCenter
	if geoLoc := middleware.GeoLocationFrom(c); geoLoc != nil && geoLoc.Latitude != 0 && geoLoc.Longitude != 0 {
		center = models.Coordinates{Lat: geoLoc.Latitude, Lng: geoLoc.Longitude}
	}

	markers := make([]models.ServiceMarker, 0, len(services))
	for _, svc := range services {
		position, err := h.Geocoder.Geocode(c.Request.Context(), svc.Address)
		if err != nil {
			// A marker is only rendered when geocoding succeeds.
			h.Logger.Warn("geocoding failed for service address",
				zap.String("service", svc.ID),
				zap.String("address", svc.Address),
				zap.Error(err))
			continue
		}
		markers = append(markers, models.ServiceMarker{
			ID:       svc.ID,
			Name:     svc.Name,
			Category: svc.Category,
			Price:    svc.Price,
			Address:  svc.Address,
			Position: *position,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"mode":    "map",
		"center":  center,
		"markers": markers,
	})
}
