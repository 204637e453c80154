package models

// PropertyType is the property type catalog (casa, departamento, terreno...)
type PropertyType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Descripcion string `gorm:"type:varchar(100);not null" json:"descripcion"`
}

// TableName keeps the legacy table name
func (PropertyType) TableName() string {
	return "property_type"
}

// SaleType is the sale type catalog (venta, renta, traspaso...)
type SaleType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Descripcion string `gorm:"type:varchar(100);not null" json:"descripcion"`
}

// TableName keeps the legacy table name
func (SaleType) TableName() string {
	return "sale_type"
}

// LegalStatus is the legal status catalog (escriturada, en litigio...)
type LegalStatus struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Descripcion string `gorm:"type:varchar(100);not null" json:"descripcion"`
}

// TableName keeps the legacy table name
func (LegalStatus) TableName() string {
	return "legal_status"
}
