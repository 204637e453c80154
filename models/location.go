package models

// State is the top level of the location hierarchy
type State struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}

// TableName keeps the legacy table name
func (State) TableName() string {
	return "states"
}

// Municipality belongs to a State
type Municipality struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	StateID uint   `gorm:"column:state_id;not null;index" json:"state_id"`
}

// TableName keeps the legacy table name
func (Municipality) TableName() string {
	return "municipalities"
}

// Colony belongs to a Municipality
type Colony struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"type:varchar(150);not null" json:"name"`
	MunicipalityID uint   `gorm:"column:municipality_id;not null;index" json:"municipality_id"`
}

// TableName keeps the legacy table name
func (Colony) TableName() string {
	return "colonies"
}
