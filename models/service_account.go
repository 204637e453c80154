package models

// ServiceAccount identifies an internal caller allowed to mint tokens.
// The API key is stored as a bcrypt hash, never in clear.
type ServiceAccount struct {
	BaseModel
	UID        string `gorm:"type:varchar(100);unique;not null" json:"uid"`
	APIKeyHash string `gorm:"column:api_key_hash;type:varchar(100);not null" json:"-"`
	Role       string `gorm:"type:varchar(50);default:'internal_service'" json:"role"`
}

// TableName keeps the table name explicit
func (ServiceAccount) TableName() string {
	return "service_accounts"
}
