package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/models"
)

func setupPropertyTestDB(t *testing.T) *gorm.DB {
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
	))

	// reference rows the enrichment resolves against
	db.Create(&models.PropertyType{Descripcion: "Casa"})
	db.Create(&models.SaleType{Descripcion: "Venta"})
	db.Create(&models.LegalStatus{Descripcion: "Escriturada"})
	db.Create(&models.State{Name: "Ciudad de México"})
	db.Create(&models.Municipality{Name: "Cuauhtémoc", StateID: 1})
	db.Create(&models.Colony{Name: "Juárez", MunicipalityID: 1})
	return db
}

func newPropertyTestService(db *gorm.DB) InterfacePropertyService {
	cfg := &config.Config{}
	return NewPropertyService(db, cfg, NewFeatureService(db, cfg))
}

func validatedPropertyFields(t *testing.T, code string) map[string]interface{} {
	input := validPropertyInput()
	input["property_code"] = code
	fields, err := ValidatePropertyData(input)
	require.NoError(t, err)
	return fields
}

func TestPropertyServiceCreate(t *testing.T) {
	db := setupPropertyTestDB(t)
	service := newPropertyTestService(db)

	t.Run("Create Without Images Is Rejected", func(t *testing.T) {
		_, err := service.CreateProperty(validatedPropertyFields(t, "PROP-100"), []string{"jardín"}, nil)
		assert.ErrorIs(t, err, ErrImagesRequired)

		var count int64
		db.Model(&models.Property{}).Count(&count)
		assert.Equal(t, int64(0), count, "a rejected create must not leave rows behind")
	})

	t.Run("Create Returns Enriched Detail", func(t *testing.T) {
		detail, err := service.CreateProperty(
			validatedPropertyFields(t, "PROP-101"),
			[]string{"jardín", "cochera techada"},
			[]string{"https://cdn.example.com/img/1.jpg", "https://cdn.example.com/img/2.jpg"},
		)
		require.NoError(t, err)

		assert.Equal(t, "PROP-101", detail.PropertyCode)
		assert.Equal(t, "Casa", detail.PropertyTypeName)
		assert.Equal(t, "Venta", detail.SaleTypeName)
		assert.Equal(t, "Escriturada", detail.LegalStatusName)
		assert.Equal(t, "Juárez, Cuauhtémoc, Ciudad de México", detail.Location)
		assert.Equal(t, "$1,250,000.00", detail.SaleValueFormatted)
		assert.Equal(t, "$1,400,000.00", detail.CommercialValueFormatted)
		assert.Equal(t, []string{"jardín", "cochera techada"}, detail.Features)
		assert.Len(t, detail.Images, 2)
	})

	t.Run("Create Without Features Still Returns Arrays", func(t *testing.T) {
		detail, err := service.CreateProperty(
			validatedPropertyFields(t, "PROP-102"),
			nil,
			[]string{"https://cdn.example.com/img/3.jpg"},
		)
		require.NoError(t, err)
		assert.NotNil(t, detail.Features)
		assert.Empty(t, detail.Features)
		assert.Equal(t, []string{"https://cdn.example.com/img/3.jpg"}, detail.Images)
	})
}

func TestPropertyServicePagination(t *testing.T) {
	db := setupPropertyTestDB(t)
	service := newPropertyTestService(db)

	for i := 1; i <= 15; i++ {
		_, err := service.CreateProperty(
			validatedPropertyFields(t, fmt.Sprintf("PROP-%03d", i)),
			nil,
			[]string{fmt.Sprintf("https://cdn.example.com/img/%d.jpg", i)},
		)
		require.NoError(t, err)
	}

	t.Run("Second Page Holds The Remainder", func(t *testing.T) {
		details, pagination, err := service.GetProperties(2, 10)
		require.NoError(t, err)

		assert.Len(t, details, 5)
		assert.Equal(t, int64(15), pagination.Total)
		assert.Equal(t, 2, pagination.Pages)
		assert.Equal(t, 2, pagination.Page)
		assert.Equal(t, 10, pagination.Limit)
	})

	t.Run("Newest First Ordering", func(t *testing.T) {
		details, _, err := service.GetProperties(1, 10)
		require.NoError(t, err)
		require.Len(t, details, 10)
		assert.Equal(t, "PROP-015", details[0].PropertyCode)
		assert.Equal(t, "PROP-006", details[9].PropertyCode)
	})

	t.Run("Page Beyond The Last Is Empty Not An Error", func(t *testing.T) {
		details, pagination, err := service.GetProperties(3, 10)
		require.NoError(t, err)
		assert.NotNil(t, details)
		assert.Empty(t, details)
		assert.Equal(t, int64(15), pagination.Total)
	})

	t.Run("Every Row Carries Its Own Children", func(t *testing.T) {
		details, _, err := service.GetProperties(1, 10)
		require.NoError(t, err)
		for _, d := range details {
			require.Len(t, d.Images, 1)
			assert.Contains(t, d.Images[0], "cdn.example.com")
			assert.NotNil(t, d.Features)
		}
	})
}

func TestPropertyServiceUpdate(t *testing.T) {
	db := setupPropertyTestDB(t)
	service := newPropertyTestService(db)

	created, err := service.CreateProperty(
		validatedPropertyFields(t, "PROP-200"),
		[]string{"jardín"},
		[]string{"https://cdn.example.com/img/a.jpg"},
	)
	require.NoError(t, err)

	t.Run("Update With Identical Values Succeeds", func(t *testing.T) {
		detail, err := service.UpdateProperty(created.ID, validatedPropertyFields(t, "PROP-200"), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "PROP-200", detail.PropertyCode)
		assert.Equal(t, []string{"jardín"}, detail.Features, "children stay untouched when not supplied")
	})

	t.Run("Update Replaces Features Only When Supplied", func(t *testing.T) {
		features := []string{"alberca", "roof garden"}
		detail, err := service.UpdateProperty(created.ID, validatedPropertyFields(t, "PROP-200"), &features, nil)
		require.NoError(t, err)
		assert.Equal(t, features, detail.Features)
		assert.Equal(t, []string{"https://cdn.example.com/img/a.jpg"}, detail.Images)
	})

	t.Run("Update Replaces Images When Supplied", func(t *testing.T) {
		images := []string{"https://cdn.example.com/img/b.jpg"}
		detail, err := service.UpdateProperty(created.ID, validatedPropertyFields(t, "PROP-200"), nil, &images)
		require.NoError(t, err)
		assert.Equal(t, images, detail.Images)
	})

	t.Run("Empty Feature Set Clears Features", func(t *testing.T) {
		features := []string{}
		detail, err := service.UpdateProperty(created.ID, validatedPropertyFields(t, "PROP-200"), &features, nil)
		require.NoError(t, err)
		assert.NotNil(t, detail.Features)
		assert.Empty(t, detail.Features)
	})

	t.Run("Update Of Missing Property Returns Not Found", func(t *testing.T) {
		_, err := service.UpdateProperty(9999, validatedPropertyFields(t, "PROP-999"), nil, nil)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestPropertyServiceDelete(t *testing.T) {
	db := setupPropertyTestDB(t)
	service := newPropertyTestService(db)

	created, err := service.CreateProperty(
		validatedPropertyFields(t, "PROP-300"),
		[]string{"jardín", "terraza"},
		[]string{"https://cdn.example.com/img/a.jpg"},
	)
	require.NoError(t, err)

	t.Run("Delete Removes The Aggregate", func(t *testing.T) {
		require.NoError(t, service.DeleteProperty(created.ID))

		_, err := service.GetPropertyByID(created.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		var featureCount, imageCount int64
		db.Model(&models.PropertyFeature{}).Where("property_id = ?", created.ID).Count(&featureCount)
		db.Model(&models.PropertyImage{}).Where("property_id = ?", created.ID).Count(&imageCount)
		assert.Equal(t, int64(0), featureCount)
		assert.Equal(t, int64(0), imageCount)
	})

	t.Run("Delete Of Missing Property Returns Not Found", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteProperty(9999), gorm.ErrRecordNotFound)
	})
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", formatCurrency(0))
	assert.Equal(t, "$999.99", formatCurrency(999.99))
	assert.Equal(t, "$1,000.00", formatCurrency(1000))
	assert.Equal(t, "$1,250,000.00", formatCurrency(1250000))
	assert.Equal(t, "-$12,500.50", formatCurrency(-12500.5))
}
