package services

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/models"
)

// minimumPropertyImages is the image threshold enforced at creation time.
const minimumPropertyImages = 1

// ErrImagesRequired is returned when a property create carries fewer images
// than the threshold.
var ErrImagesRequired = errors.New("se requiere al menos una imagen de la propiedad")

// PropertyDetail is the enriched read-side projection of a property: the
// base row plus catalog descriptions, location names, formatted currency
// values and the child feature/image sets. The features and images arrays
// are always present, empty when none exist.
type PropertyDetail struct {
	models.Property
	PropertyTypeName         string   `json:"property_type,omitempty"`
	SaleTypeName             string   `json:"sale_type,omitempty"`
	LegalStatusName          string   `json:"legal_status,omitempty"`
	StateName                string   `json:"state,omitempty"`
	MunicipalityName         string   `json:"municipality,omitempty"`
	ColonyName               string   `json:"colony,omitempty"`
	Location                 string   `json:"location,omitempty"`
	SaleValueFormatted       string   `json:"sale_value_formatted"`
	CommercialValueFormatted string   `json:"commercial_value_formatted"`
	Features                 []string `json:"features"`
	Images                   []string `json:"images"`
}

// InterfacePropertyService defines the property aggregate operations
type InterfacePropertyService interface {
	GetProperties(page, limit int) ([]PropertyDetail, models.PaginationResult, error)
	GetPropertyByID(id uint) (*PropertyDetail, error)
	CreateProperty(fields map[string]interface{}, features []string, images []string) (*PropertyDetail, error)
	UpdateProperty(id uint, fields map[string]interface{}, features *[]string, images *[]string) (*PropertyDetail, error)
	DeleteProperty(id uint) error
}

// PropertyService persists and retrieves property aggregates
type PropertyService struct {
	DB       *gorm.DB
	Config   *config.Config
	Features InterfaceFeatureService
}

// NewPropertyService creates a new property service
func NewPropertyService(db *gorm.DB, cfg *config.Config, features InterfaceFeatureService) InterfacePropertyService {
	return &PropertyService{
		DB:       db,
		Config:   cfg,
		Features: features,
	}
}

// 1. GetProperties returns a page of properties ordered by descending id,
// with the child features and images batch-fetched in two queries.
func (s *PropertyService) GetProperties(page, limit int) ([]PropertyDetail, models.PaginationResult, error) {
	var total int64
	if err := s.DB.Model(&models.Property{}).Count(&total).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}
	pagination := models.NewPaginationResult(total, page, limit)

	var properties []models.Property
	offset := (page - 1) * limit
	if err := s.preloadRefs(s.DB).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&properties).Error; err != nil {
		return nil, pagination, err
	}

	details := make([]PropertyDetail, 0, len(properties))
	if len(properties) == 0 {
		return details, pagination, nil
	}

	ids := make([]uint, 0, len(properties))
	for _, p := range properties {
		ids = append(ids, p.ID)
	}

	featuresByProperty, imagesByProperty, err := s.fetchChildren(ids)
	if err != nil {
		return nil, pagination, err
	}

	for _, p := range properties {
		details = append(details, buildPropertyDetail(p, featuresByProperty[p.ID], imagesByProperty[p.ID]))
	}
	return details, pagination, nil
}

// 2. GetPropertyByID returns a single enriched property
func (s *PropertyService) GetPropertyByID(id uint) (*PropertyDetail, error) {
	var property models.Property
	if err := s.preloadRefs(s.DB).First(&property, id).Error; err != nil {
		return nil, err
	}

	featuresByProperty, imagesByProperty, err := s.fetchChildren([]uint{id})
	if err != nil {
		return nil, err
	}

	detail := buildPropertyDetail(property, featuresByProperty[id], imagesByProperty[id])
	return &detail, nil
}

// 3. CreateProperty inserts the property row plus its feature and image
// rows in one transaction, then re-reads the enriched aggregate.
func (s *PropertyService) CreateProperty(fields map[string]interface{}, features []string, images []string) (*PropertyDetail, error) {
	if len(images) < minimumPropertyImages {
		return nil, ErrImagesRequired
	}

	property := buildPropertyFromFields(fields)
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&property).Error; err != nil {
			return err
		}
		if len(features) > 0 {
			if err := s.Features.ReplaceSetTx(tx, property.ID, features); err != nil {
				return err
			}
		}
		return insertImagesTx(tx, property.ID, images)
	})
	if err != nil {
		return nil, err
	}

	return s.GetPropertyByID(property.ID)
}

// 4. UpdateProperty overwrites every whitelisted column. The feature and
// image sets are replaced only when supplied (nil means untouched).
func (s *PropertyService) UpdateProperty(id uint, fields map[string]interface{}, features *[]string, images *[]string) (*PropertyDetail, error) {
	// Existence is decided here, before the UPDATE runs, so a no-op update
	// of identical values still reports success.
	var existing models.Property
	if err := s.DB.Select("id").First(&existing, id).Error; err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Property{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return err
		}
		if features != nil {
			if err := s.Features.ReplaceSetTx(tx, id, *features); err != nil {
				return err
			}
		}
		if images != nil {
			if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
				return err
			}
			return insertImagesTx(tx, id, *images)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetPropertyByID(id)
}

// 5. DeleteProperty removes features, then images, then the property row,
// in one transaction. A missing property rolls everything back.
func (s *PropertyService) DeleteProperty(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyFeature{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Property{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// preloadRefs attaches the catalog and location associations used by the
// read-side enrichment.
func (s *PropertyService) preloadRefs(db *gorm.DB) *gorm.DB {
	return db.
		Preload("PropertyType").
		Preload("SaleType").
		Preload("LegalStatus").
		Preload("State").
		Preload("Municipality").
		Preload("Colony")
}

// fetchChildren batch-fetches features and images for a set of property ids
// in two queries and groups them by property.
func (s *PropertyService) fetchChildren(ids []uint) (map[uint][]string, map[uint][]string, error) {
	var features []models.PropertyFeature
	if err := s.DB.Where("property_id IN ?", ids).Order("id ASC").Find(&features).Error; err != nil {
		return nil, nil, err
	}
	var images []models.PropertyImage
	if err := s.DB.Where("property_id IN ?", ids).Order("id ASC").Find(&images).Error; err != nil {
		return nil, nil, err
	}

	featuresByProperty := make(map[uint][]string)
	for _, f := range features {
		featuresByProperty[f.PropertyID] = append(featuresByProperty[f.PropertyID], f.Feature)
	}
	imagesByProperty := make(map[uint][]string)
	for _, img := range images {
		imagesByProperty[img.PropertyID] = append(imagesByProperty[img.PropertyID], img.ImageURL)
	}
	return featuresByProperty, imagesByProperty, nil
}

func insertImagesTx(tx *gorm.DB, propertyID uint, images []string) error {
	if len(images) == 0 {
		return nil
	}
	rows := make([]models.PropertyImage, 0, len(images))
	for _, url := range images {
		rows = append(rows, models.PropertyImage{PropertyID: propertyID, ImageURL: url})
	}
	return tx.Create(&rows).Error
}

// buildPropertyDetail shapes the enriched response for one property
func buildPropertyDetail(p models.Property, features, images []string) PropertyDetail {
	detail := PropertyDetail{
		Property:                 p,
		SaleValueFormatted:       formatCurrency(p.SaleValue),
		CommercialValueFormatted: formatCurrency(p.CommercialValue),
		Features:                 features,
		Images:                   images,
	}
	if detail.Features == nil {
		detail.Features = []string{}
	}
	if detail.Images == nil {
		detail.Images = []string{}
	}

	if p.PropertyType != nil {
		detail.PropertyTypeName = p.PropertyType.Descripcion
	}
	if p.SaleType != nil {
		detail.SaleTypeName = p.SaleType.Descripcion
	}
	if p.LegalStatus != nil {
		detail.LegalStatusName = p.LegalStatus.Descripcion
	}
	if p.State != nil {
		detail.StateName = p.State.Name
	}
	if p.Municipality != nil {
		detail.MunicipalityName = p.Municipality.Name
	}
	if p.Colony != nil {
		detail.ColonyName = p.Colony.Name
	}

	var locationParts []string
	for _, part := range []string{detail.ColonyName, detail.MunicipalityName, detail.StateName} {
		if part != "" {
			locationParts = append(locationParts, part)
		}
	}
	detail.Location = strings.Join(locationParts, ", ")

	return detail
}

// buildPropertyFromFields maps the validator's canonical field map onto the
// model. The map is trusted to carry validated values only.
func buildPropertyFromFields(fields map[string]interface{}) models.Property {
	return models.Property{
		Client:           asString(fields["client"]),
		PropertyCode:     asString(fields["property_code"]),
		PropertyTypeID:   asUint(fields["property_type_id"]),
		SaleTypeID:       asUint(fields["sale_type_id"]),
		LegalStatusID:    asUint(fields["legal_status_id"]),
		SaleValue:        asFloat(fields["sale_value"]),
		CommercialValue:  asFloat(fields["commercial_value"]),
		Street:           asString(fields["street"]),
		ExteriorNumber:   asString(fields["exterior_number"]),
		InteriorNumber:   asStringPtr(fields["interior_number"]),
		PostalCode:       asString(fields["postal_code"]),
		ExtraAddress:     asStringPtr(fields["extra_address"]),
		ObservationID:    asIntPtr(fields["observation_id"]),
		LandSize:         asFloat(fields["land_size"]),
		ConstructionSize: asFloat(fields["construction_size"]),
		Bedrooms:         asInt(fields["bedrooms"]),
		Bathrooms:        asInt(fields["bathrooms"]),
		ParkingSpaces:    asInt(fields["parking_spaces"]),
		HasGarden:        asBool(fields["has_garden"]),
		HasStudy:         asBool(fields["has_study"]),
		HasServiceRoom:   asBool(fields["has_service_room"]),
		IsCondominium:    asBool(fields["is_condominium"]),
		AdditionalInfo:   asStringPtr(fields["additional_info"]),
		Title:            asString(fields["title"]),
		Description:      asString(fields["description"]),
		MainImage:        asString(fields["main_image"]),
		StateID:          asUint(fields["state_id"]),
		MunicipalityID:   asUint(fields["municipality_id"]),
		ColonyID:         asUint(fields["colony_id"]),
	}
}

// formatCurrency renders a value with the fixed $#,###.## convention
func formatCurrency(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := "$" + b.String() + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asStringPtr(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func asFloat(v interface{}) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return 0
}

func asInt(v interface{}) int {
	if f, ok := v.(float64); ok {
		return int(f)
	}
	return 0
}

func asIntPtr(v interface{}) *int {
	if f, ok := v.(float64); ok {
		n := int(f)
		return &n
	}
	return nil
}

func asUint(v interface{}) uint {
	if f, ok := v.(float64); ok && f > 0 {
		return uint(f)
	}
	return 0
}

func asBool(v interface{}) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}
