package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
)

// postalCodeCacheTTL bounds how long an external lookup stays cached.
// Postal-code data is immutable reference data, so a long TTL is safe.
const postalCodeCacheTTL = 24 * time.Hour

// ErrPostalCodeNotFound is returned when the external API does not know
// the postal code.
var ErrPostalCodeNotFound = errors.New("no se encontró dicho código postal")

// PostalCodeInfo is the state/municipality/colonies resolution of one
// postal code.
type PostalCodeInfo struct {
	PostalCode   string   `json:"postal_code"`
	State        string   `json:"estado"`
	Municipality string   `json:"municipio"`
	Colonies     []string `json:"colonias"`
}

// InterfacePostalCodeService resolves postal codes through the external
// Sepomex-compatible API.
type InterfacePostalCodeService interface {
	Lookup(ctx context.Context, postalCode string) (*PostalCodeInfo, error)
}

// PostalCodeService queries the external postal-code API with a Redis
// cache in front of it.
type PostalCodeService struct {
	Config *config.Config
	Cache  InterfaceRedisService
	client *http.Client
}

// NewPostalCodeService creates a new postal code service. cache may be nil.
func NewPostalCodeService(cfg *config.Config, cache InterfaceRedisService) InterfacePostalCodeService {
	return &PostalCodeService{
		Config: cfg,
		Cache:  cache,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// postalCodeAPIResponse mirrors the external API payload
type postalCodeAPIResponse struct {
	Error        bool   `json:"error"`
	ErrorMessage string `json:"message"`
	CodigoPostal struct {
		Estado    string   `json:"estado"`
		Municipio string   `json:"municipio"`
		Colonias  []string `json:"colonias"`
	} `json:"codigo_postal"`
}

// Lookup resolves a postal code, serving from cache when possible
func (s *PostalCodeService) Lookup(ctx context.Context, postalCode string) (*PostalCodeInfo, error) {
	cacheKey := "postal_code:" + postalCode
	if s.Cache != nil {
		var cached PostalCodeInfo
		if err := s.Cache.Get(cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	endpoint := fmt.Sprintf("%s?cp=%s", s.Config.PostalCodeAPIURL, url.QueryEscape(postalCode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("APIKEY", s.Config.PostalCodeAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("postal code lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPostalCodeNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("postal code API returned status %d", resp.StatusCode)
	}

	var payload postalCodeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("postal code response decode failed: %w", err)
	}
	if payload.Error {
		return nil, ErrPostalCodeNotFound
	}

	info := &PostalCodeInfo{
		PostalCode:   postalCode,
		State:        payload.CodigoPostal.Estado,
		Municipality: payload.CodigoPostal.Municipio,
		Colonies:     payload.CodigoPostal.Colonias,
	}
	if info.Colonies == nil {
		info.Colonies = []string{}
	}

	if s.Cache != nil {
		// Best effort; a write failure never fails the lookup.
		_ = s.Cache.Set(cacheKey, info, postalCodeCacheTTL)
	}
	return info, nil
}
