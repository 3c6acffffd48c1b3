// File: middleware/geolocation.go
package middleware

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeoLocation represents the geolocation information for an IP. The map
// endpoint uses it to center the marker view on the caller.
type GeoLocation struct {
	IP        string  `json:"ip"`
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// geoCache caches geolocation results keyed by IP address.
var geoCache = make(map[string]*GeoLocation)
var cacheMutex sync.RWMutex

// isPrivateIP checks if an IP is private or loopback.
func isPrivateIP(ip string) bool {
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	if parsedIP.IsLoopback() {
		return true
	}
	privateIPBlocks := []*net.IPNet{
		{IP: net.IPv4(10, 0, 0, 0), Mask: net.CIDRMask(8, 32)},
		{IP: net.IPv4(172, 16, 0, 0), Mask: net.CIDRMask(12, 32)},
		{IP: net.IPv4(192, 168, 0, 0), Mask: net.CIDRMask(16, 32)},
	}
	for _, block := range privateIPBlocks {
		if block.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// getGeolocation retrieves geolocation data from an external API (using ipapi.co) and caches the result.
// If the IP is private or the API call fails, it returns a default geolocation with "Unknown" country.
func getGeolocation(ip string, logger *zap.Logger) (*GeoLocation, error) {
	// Check cache first.
	cacheMutex.RLock()
	if geo, exists := geoCache[ip]; exists {
		cacheMutex.RUnlock()
		return geo, nil
	}
	cacheMutex.RUnlock()

	// If the IP is private, return default geolocation.
	if isPrivateIP(ip) {
		defaultGeo := &GeoLocation{
			IP:      ip,
			Country: "Unknown",
		}
		cacheMutex.Lock()
		geoCache[ip] = defaultGeo
		cacheMutex.Unlock()
		return defaultGeo, nil
	}

	// Query external API.
	url := fmt.Sprintf("https://ipapi.co/%s/json/", ip)
	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		logger.Error("Failed to query external geolocation API", zap.String("ip", ip), zap.Error(err))
		return &GeoLocation{IP: ip, Country: "Unknown"}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("External geolocation API returned non-OK status", zap.String("ip", ip), zap.Int("status", resp.StatusCode))
		return &GeoLocation{IP: ip, Country: "Unknown"}, nil
	}

	var geo GeoLocation
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		logger.Error("Failed to decode geolocation response", zap.String("ip", ip), zap.Error(err))
		return &GeoLocation{IP: ip, Country: "Unknown"}, nil
	}

	if geo.Country == "" {
		geo.Country = "Unknown"
	}

	// Cache the result.
	cacheMutex.Lock()
	geoCache[ip] = &geo
	cacheMutex.Unlock()

	return &geo, nil
}

// GeolocationMiddleware retrieves the client's IP, obtains its geolocation,
// and sets it in the context for map centering. Lookups are best-effort: a
// failure degrades to the "Unknown" default and the request continues.
func GeolocationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()

		clientIP := getClientIP(c)
		if clientIP == "" {
			c.Set("geoLocation", &GeoLocation{IP: clientIP, Country: "Unknown"})
			c.Next()
			return
		}

		geo, err := getGeolocation(clientIP, logger)
		if err != nil {
			logger.Error("Failed to get geolocation", zap.String("ip", clientIP), zap.Error(err))
			geo = &GeoLocation{IP: clientIP, Country: "Unknown"}
		}

		c.Set("geoLocation", geo)
		c.Next()
	}
}

// GeoLocationFrom returns the geolocation set by GeolocationMiddleware, or
// nil when the middleware did not run.
func GeoLocationFrom(c *gin.Context) *GeoLocation {
	if v, ok := c.Get("geoLocation"); ok {
		if geo, ok := v.(*GeoLocation); ok {
			return geo
		}
	}
	return nil
}
