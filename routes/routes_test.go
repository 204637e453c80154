package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/models"
	"github.com/Global-Manu-Man/cnk-ceneka/services/container"
)

type envelope struct {
	Success    bool                     `json:"success"`
	Message    string                   `json:"message"`
	Data       json.RawMessage          `json:"data"`
	Pagination *models.PaginationResult `json:"pagination"`
}

func setupTestRouter(t *testing.T) (*gin.Engine, *container.ServiceContainer) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.PropertyType{},
		&models.SaleType{},
		&models.LegalStatus{},
		&models.State{},
		&models.Municipality{},
		&models.Colony{},
		&models.Property{},
		&models.PropertyFeature{},
		&models.PropertyImage{},
		&models.ServiceAccount{},
	))

	db.Create(&models.PropertyType{Descripcion: "Casa"})
	db.Create(&models.SaleType{Descripcion: "Venta"})
	db.Create(&models.LegalStatus{Descripcion: "Escriturada"})
	db.Create(&models.State{Name: "Ciudad de México"})
	db.Create(&models.Municipality{Name: "Cuauhtémoc", StateID: 1})
	db.Create(&models.Colony{Name: "Juárez", MunicipalityID: 1})

	cfg := &config.Config{JWTSecretKey: "test-secret", InternalAPIKey: "internal-key"}
	serviceContainer, err := container.NewServiceContainer(db, cfg)
	require.NoError(t, err)
	require.NoError(t, serviceContainer.GetAuthService().EnsureServiceAccount("internal-backend", cfg.InternalAPIKey))

	return SetupRouter(serviceContainer), serviceContainer
}

var requestSeq uint32

func doRequest(r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	// distinct client address per request so the IP rate limiter never
	// throttles the suite
	seq := atomic.AddUint32(&requestSeq, 1)
	req.RemoteAddr = fmt.Sprintf("10.0.%d.%d:1234", seq/250%250, seq%250+1)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func propertyBody(code string) map[string]interface{} {
	return map[string]interface{}{
		"client":            "Inmobiliaria del Centro",
		"property_code":     code,
		"property_type_id":  1,
		"sale_type_id":      1,
		"legal_status_id":   1,
		"sale_value":        1250000,
		"commercial_value":  1400000,
		"street":            "Av. Reforma",
		"exterior_number":   "123",
		"postal_code":       "06600",
		"land_size":         220.5,
		"construction_size": 180,
		"bedrooms":          3,
		"bathrooms":         2,
		"parking_spaces":    2,
		"title":             "Casa en venta",
		"description":       "Casa amplia con jardín",
		"main_image":        "https://cdn.example.com/img/main.jpg",
		"state_id":          1,
		"municipality_id":   1,
		"colony_id":         1,
		"features":          []string{"jardín"},
		"images":            []string{"https://cdn.example.com/img/1.jpg"},
	}
}

func obtainToken(t *testing.T, r *gin.Engine) string {
	w, env := doRequest(r, http.MethodPost, "/api/auth/internal/token", "", map[string]string{
		"uid":     "internal-backend",
		"api_key": "internal-key",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestRouterBasics(t *testing.T) {
	r, _ := setupTestRouter(t)

	t.Run("Unknown Route Answers With The Envelope", func(t *testing.T) {
		w, env := doRequest(r, http.MethodGet, "/api/nope", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
		assert.Contains(t, env.Message, "Ruta no encontrada")
	})

	t.Run("Empty Listing Carries The Sentinel Message", func(t *testing.T) {
		w, env := doRequest(r, http.MethodGet, "/api/properties", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "No hay propiedades registradas", env.Message)
		require.NotNil(t, env.Pagination)
		assert.Equal(t, int64(0), env.Pagination.Total)
	})

	t.Run("Catalog Reads Are Public", func(t *testing.T) {
		for _, path := range []string{
			"/api/properties/catalogs/property-types",
			"/api/properties/catalogs/sale-types",
			"/api/properties/catalogs/legal-statuses",
			"/api/properties/catalogs/states",
		} {
			w, env := doRequest(r, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusOK, w.Code, path)
			assert.True(t, env.Success, path)
		}
	})

	t.Run("Municipalities Require The State Filter", func(t *testing.T) {
		w, env := doRequest(r, http.MethodGet, "/api/properties/catalogs/municipalities", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Message, "state_id")

		w, _ = doRequest(r, http.MethodGet, "/api/properties/catalogs/municipalities?state_id=1", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouterAuth(t *testing.T) {
	r, _ := setupTestRouter(t)

	t.Run("Mutations Require A Token", func(t *testing.T) {
		w, env := doRequest(r, http.MethodPost, "/api/properties", "", propertyBody("PROP-001"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("Garbage Token Is Rejected", func(t *testing.T) {
		w, _ := doRequest(r, http.MethodPost, "/api/properties", "garbage", propertyBody("PROP-001"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong API Key Gets No Token", func(t *testing.T) {
		w, env := doRequest(r, http.MethodPost, "/api/auth/internal/token", "", map[string]string{
			"uid":     "internal-backend",
			"api_key": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("Valid Credentials Get A Token", func(t *testing.T) {
		token := obtainToken(t, r)
		assert.NotEmpty(t, token)
	})
}

func TestRouterPropertyFlow(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := obtainToken(t, r)

	t.Run("Create", func(t *testing.T) {
		w, env := doRequest(r, http.MethodPost, "/api/properties", token, propertyBody("PROP-001"))
		require.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Propiedad creada exitosamente", env.Message)
	})

	t.Run("Create With Missing Fields Lists Them", func(t *testing.T) {
		body := propertyBody("PROP-002")
		delete(body, "client")
		delete(body, "title")

		w, env := doRequest(r, http.MethodPost, "/api/properties", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Message, "Campos requeridos faltantes:")
		assert.Contains(t, env.Message, "client")
		assert.Contains(t, env.Message, "title")
	})

	t.Run("Create Without Images Is Rejected", func(t *testing.T) {
		body := propertyBody("PROP-003")
		body["images"] = []string{}

		w, env := doRequest(r, http.MethodPost, "/api/properties", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("Read Back", func(t *testing.T) {
		w, env := doRequest(r, http.MethodGet, "/api/properties/1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var detail struct {
			PropertyCode string   `json:"property_code"`
			PropertyType string   `json:"property_type"`
			Location     string   `json:"location"`
			Features     []string `json:"features"`
			Images       []string `json:"images"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &detail))
		assert.Equal(t, "PROP-001", detail.PropertyCode)
		assert.Equal(t, "Casa", detail.PropertyType)
		assert.Equal(t, "Juárez, Cuauhtémoc, Ciudad de México", detail.Location)
		assert.Equal(t, []string{"jardín"}, detail.Features)
		assert.Len(t, detail.Images, 1)
	})

	t.Run("Update", func(t *testing.T) {
		body := propertyBody("PROP-001")
		body["title"] = "Casa remodelada en venta"

		w, env := doRequest(r, http.MethodPut, "/api/properties/1", token, body)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Propiedad actualizada exitosamente", env.Message)
	})

	t.Run("Missing Property Is 404", func(t *testing.T) {
		w, env := doRequest(r, http.MethodGet, "/api/properties/999", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Propiedad no encontrada", env.Message)
	})

	t.Run("Delete", func(t *testing.T) {
		w, _ := doRequest(r, http.MethodDelete, "/api/properties/1", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = doRequest(r, http.MethodDelete, "/api/properties/1", token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouterCatalogFlow(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := obtainToken(t, r)

	t.Run("Create Update Delete", func(t *testing.T) {
		w, env := doRequest(r, http.MethodPost, "/api/properties/catalogs/sale-types", token, map[string]string{"descripcion": "Renta"})
		require.Equal(t, http.StatusCreated, w.Code)

		var data struct {
			ID uint `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.NotZero(t, data.ID)

		path := fmt.Sprintf("/api/properties/catalogs/sale-types/%d", data.ID)
		w, _ = doRequest(r, http.MethodPut, path, token, map[string]string{"descripcion": "Renta mensual"})
		assert.Equal(t, http.StatusOK, w.Code)

		w, _ = doRequest(r, http.MethodDelete, path, token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w, env = doRequest(r, http.MethodDelete, path, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Tipo de venta no encontrado", env.Message)
	})

	t.Run("Missing Description Is Rejected", func(t *testing.T) {
		w, _ := doRequest(r, http.MethodPost, "/api/properties/catalogs/property-types", token, map[string]string{"descripcion": "  "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouterFeatureFlow(t *testing.T) {
	r, _ := setupTestRouter(t)
	token := obtainToken(t, r)

	w, _ := doRequest(r, http.MethodPost, "/api/properties", token, propertyBody("PROP-F01"))
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("Replace Set For Missing Property Is 404", func(t *testing.T) {
		w, env := doRequest(r, http.MethodPost, "/api/properties/features", token, map[string]interface{}{
			"property_id": 999,
			"features":    []string{"alberca"},
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, env.Message, "999")
	})

	t.Run("Replace And Read Back", func(t *testing.T) {
		w, _ := doRequest(r, http.MethodPost, "/api/properties/features", token, map[string]interface{}{
			"property_id": 1,
			"features":    []string{"alberca", "terraza"},
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w, env := doRequest(r, http.MethodGet, "/api/properties/1/features", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rows []models.PropertyFeature
		require.NoError(t, json.Unmarshal(env.Data, &rows))
		assert.Len(t, rows, 2)
	})
}
