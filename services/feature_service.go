package services

import (
	"gorm.io/gorm"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/models"
)

// InterfaceFeatureService manages the feature set of a property. The same
// replace-set operation backs both the standalone sub-resource and the
// inline features array of property create/update.
type InterfaceFeatureService interface {
	ReplaceSet(propertyID uint, features []string) error
	ReplaceSetTx(tx *gorm.DB, propertyID uint, features []string) error
	GetAll() ([]models.PropertyFeature, error)
	GetByPropertyID(propertyID uint) ([]models.PropertyFeature, error)
	Update(id uint, feature string) error
	Delete(id uint) error
}

// FeatureService provides property feature operations
type FeatureService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewFeatureService creates a new feature service
func NewFeatureService(db *gorm.DB, cfg *config.Config) InterfaceFeatureService {
	return &FeatureService{
		DB:     db,
		Config: cfg,
	}
}

// 1. ReplaceSet replaces the whole feature set of an existing property.
// Returns gorm.ErrRecordNotFound when the property does not exist.
func (s *FeatureService) ReplaceSet(propertyID uint, features []string) error {
	var property models.Property
	if err := s.DB.Select("id").First(&property, propertyID).Error; err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.ReplaceSetTx(tx, propertyID, features)
	})
}

// 2. ReplaceSetTx performs the delete-then-reinsert inside a caller-owned
// transaction. The parent existence check belongs to the caller.
func (s *FeatureService) ReplaceSetTx(tx *gorm.DB, propertyID uint, features []string) error {
	if err := tx.Where("property_id = ?", propertyID).Delete(&models.PropertyFeature{}).Error; err != nil {
		return err
	}
	if len(features) == 0 {
		return nil
	}
	rows := make([]models.PropertyFeature, 0, len(features))
	for _, feature := range features {
		rows = append(rows, models.PropertyFeature{PropertyID: propertyID, Feature: feature})
	}
	return tx.Create(&rows).Error
}

// 3. GetAll lists every feature row ordered by id
func (s *FeatureService) GetAll() ([]models.PropertyFeature, error) {
	var features []models.PropertyFeature
	if err := s.DB.Order("id ASC").Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

// 4. GetByPropertyID lists the features of one property
func (s *FeatureService) GetByPropertyID(propertyID uint) ([]models.PropertyFeature, error) {
	var features []models.PropertyFeature
	if err := s.DB.Where("property_id = ?", propertyID).Order("id ASC").Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

// 5. Update changes the label of a single feature row
func (s *FeatureService) Update(id uint, feature string) error {
	result := s.DB.Model(&models.PropertyFeature{}).Where("id = ?", id).Update("feature", feature)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// 6. Delete removes a single feature row
func (s *FeatureService) Delete(id uint) error {
	result := s.DB.Delete(&models.PropertyFeature{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
