package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/models"
)

// Catalog table names accepted by the generic accessor. Only these values
// ever reach a SQL statement; request input never names a table.
const (
	CatalogPropertyType = "property_type"
	CatalogSaleType     = "sale_type"
	CatalogLegalStatus  = "legal_status"
)

// catalogLabels maps each allow-listed table to the human-readable label
// used in error messages.
var catalogLabels = map[string]string{
	CatalogPropertyType: "tipo de propiedad",
	CatalogSaleType:     "tipo de venta",
	CatalogLegalStatus:  "estatus legal",
}

// ErrUnknownCatalog is returned when a table name is not on the allow-list.
var ErrUnknownCatalog = errors.New("catálogo desconocido")

// InterfaceCatalogService is uniform CRUD over the reference catalogs,
// parameterized only by table name and label.
type InterfaceCatalogService interface {
	List(table string) ([]map[string]interface{}, error)
	GetByID(table string, id uint) (map[string]interface{}, error)
	Create(table, descripcion string) (uint, error)
	Update(table string, id uint, descripcion string) error
	Delete(table string, id uint) error
	Label(table string) string
}

// CatalogService provides generic catalog CRUD
type CatalogService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCatalogService creates a new catalog service
func NewCatalogService(db *gorm.DB, cfg *config.Config) InterfaceCatalogService {
	return &CatalogService{
		DB:     db,
		Config: cfg,
	}
}

// Label returns the error-message label for an allow-listed table
func (s *CatalogService) Label(table string) string {
	if label, ok := catalogLabels[table]; ok {
		return label
	}
	return "catálogo"
}

// 1. List returns every row of a catalog table
func (s *CatalogService) List(table string) ([]map[string]interface{}, error) {
	if _, ok := catalogLabels[table]; !ok {
		return nil, ErrUnknownCatalog
	}
	rows := make([]map[string]interface{}, 0)
	if err := s.DB.Table(table).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// 2. GetByID fetches one catalog row by primary key
func (s *CatalogService) GetByID(table string, id uint) (map[string]interface{}, error) {
	if _, ok := catalogLabels[table]; !ok {
		return nil, ErrUnknownCatalog
	}
	rows := make([]map[string]interface{}, 0)
	if err := s.DB.Table(table).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return rows[0], nil
}

// 3. Create inserts a catalog row and returns the new id. The insert goes
// through the typed model so the driver's last-insert-id is captured.
func (s *CatalogService) Create(table, descripcion string) (uint, error) {
	switch table {
	case CatalogPropertyType:
		item := models.PropertyType{Descripcion: descripcion}
		if err := s.DB.Create(&item).Error; err != nil {
			return 0, err
		}
		return item.ID, nil
	case CatalogSaleType:
		item := models.SaleType{Descripcion: descripcion}
		if err := s.DB.Create(&item).Error; err != nil {
			return 0, err
		}
		return item.ID, nil
	case CatalogLegalStatus:
		item := models.LegalStatus{Descripcion: descripcion}
		if err := s.DB.Create(&item).Error; err != nil {
			return 0, err
		}
		return item.ID, nil
	default:
		return 0, ErrUnknownCatalog
	}
}

// 4. Update overwrites the description of a catalog row
func (s *CatalogService) Update(table string, id uint, descripcion string) error {
	if _, ok := catalogLabels[table]; !ok {
		return ErrUnknownCatalog
	}
	result := s.DB.Table(table).Where("id = ?", id).Update("descripcion", descripcion)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// 5. Delete removes a catalog row. Referencing properties are not
// checked, so a delete can leave dangling foreign keys.
func (s *CatalogService) Delete(table string, id uint) error {
	if _, ok := catalogLabels[table]; !ok {
		return ErrUnknownCatalog
	}
	result := s.DB.Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
