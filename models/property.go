package models

// Property is a real-estate listing. Location and catalog references are
// foreign-key ids; the joined descriptions and names are read-side only.
type Property struct {
	BaseModel
	Client          string  `gorm:"type:varchar(100);not null" json:"client"`
	PropertyCode    string  `gorm:"column:property_code;type:varchar(50);unique;not null" json:"property_code"`
	PropertyTypeID  uint    `gorm:"column:property_type_id;not null" json:"property_type_id"`
	SaleTypeID      uint    `gorm:"column:sale_type_id;not null" json:"sale_type_id"`
	LegalStatusID   uint    `gorm:"column:legal_status_id;not null" json:"legal_status_id"`
	SaleValue       float64 `gorm:"column:sale_value;type:decimal(15,2);not null" json:"sale_value"`
	CommercialValue float64 `gorm:"column:commercial_value;type:decimal(15,2);not null" json:"commercial_value"`

	Street         string  `gorm:"type:varchar(150);not null" json:"street"`
	ExteriorNumber string  `gorm:"column:exterior_number;type:varchar(20);not null" json:"exterior_number"`
	InteriorNumber *string `gorm:"column:interior_number;type:varchar(20)" json:"interior_number"`
	PostalCode     string  `gorm:"column:postal_code;type:varchar(10);not null" json:"postal_code"`
	ExtraAddress   *string `gorm:"column:extra_address;type:varchar(200)" json:"extra_address"`
	ObservationID  *int    `gorm:"column:observation_id" json:"observation_id"`

	LandSize         float64 `gorm:"column:land_size;type:decimal(10,2);not null" json:"land_size"`
	ConstructionSize float64 `gorm:"column:construction_size;type:decimal(10,2);not null" json:"construction_size"`
	Bedrooms         int     `gorm:"not null" json:"bedrooms"`
	Bathrooms        int     `gorm:"not null" json:"bathrooms"`
	ParkingSpaces    int     `gorm:"column:parking_spaces;not null" json:"parking_spaces"`

	HasGarden      bool `gorm:"column:has_garden;default:false" json:"has_garden"`
	HasStudy       bool `gorm:"column:has_study;default:false" json:"has_study"`
	HasServiceRoom bool `gorm:"column:has_service_room;default:false" json:"has_service_room"`
	IsCondominium  bool `gorm:"column:is_condominium;default:false" json:"is_condominium"`

	AdditionalInfo *string `gorm:"column:additional_info;type:text" json:"additional_info"`
	Title          string  `gorm:"type:varchar(200);not null" json:"title"`
	Description    string  `gorm:"type:text;not null" json:"description"`
	MainImage      string  `gorm:"column:main_image;type:varchar(500);not null" json:"main_image"`

	StateID        uint `gorm:"column:state_id;not null" json:"state_id"`
	MunicipalityID uint `gorm:"column:municipality_id;not null" json:"municipality_id"`
	ColonyID       uint `gorm:"column:colony_id;not null" json:"colony_id"`

	// Read-side associations
	PropertyType *PropertyType `gorm:"foreignKey:PropertyTypeID" json:"-"`
	SaleType     *SaleType     `gorm:"foreignKey:SaleTypeID" json:"-"`
	LegalStatus  *LegalStatus  `gorm:"foreignKey:LegalStatusID" json:"-"`
	State        *State        `gorm:"foreignKey:StateID" json:"-"`
	Municipality *Municipality `gorm:"foreignKey:MunicipalityID" json:"-"`
	Colony       *Colony       `gorm:"foreignKey:ColonyID" json:"-"`
}

// TableName keeps the legacy table name
func (Property) TableName() string {
	return "properties"
}

// PropertyFeature is a free-text label attached to a property
type PropertyFeature struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"column:property_id;not null;index" json:"property_id"`
	Feature    string `gorm:"type:varchar(200);not null" json:"feature"`
}

// TableName keeps the legacy table name
func (PropertyFeature) TableName() string {
	return "property_features"
}

// PropertyImage is a hosted image URL attached to a property. Insertion
// order is meaningful: the first image is treated as the cover.
type PropertyImage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"column:property_id;not null;index" json:"property_id"`
	ImageURL   string `gorm:"column:image_url;type:varchar(500);not null" json:"image_url"`
}

// TableName keeps the legacy table name
func (PropertyImage) TableName() string {
	return "property_images"
}
