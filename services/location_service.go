package services

import (
	"gorm.io/gorm"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/models"
)

// InterfaceLocationService is CRUD over the three-level location
// hierarchy of states, municipalities and colonies.
type InterfaceLocationService interface {
	GetStates() ([]models.State, error)
	CreateState(name string) (uint, error)
	UpdateState(id uint, name string) error
	DeleteState(id uint) error

	GetMunicipalitiesByState(stateID uint) ([]models.Municipality, error)
	CreateMunicipality(name string, stateID uint) (uint, error)
	UpdateMunicipality(id uint, name string, stateID uint) error
	DeleteMunicipality(id uint) error

	GetColoniesByMunicipality(municipalityID uint) ([]models.Colony, error)
	CreateColony(name string, municipalityID uint) (uint, error)
	UpdateColony(id uint, name string, municipalityID uint) error
	DeleteColony(id uint) error
}

// LocationService provides location hierarchy operations
type LocationService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewLocationService creates a new location service
func NewLocationService(db *gorm.DB, cfg *config.Config) InterfaceLocationService {
	return &LocationService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetStates lists every state
func (s *LocationService) GetStates() ([]models.State, error) {
	var states []models.State
	if err := s.DB.Order("id ASC").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

// 2. CreateState inserts a state
func (s *LocationService) CreateState(name string) (uint, error) {
	state := models.State{Name: name}
	if err := s.DB.Create(&state).Error; err != nil {
		return 0, err
	}
	return state.ID, nil
}

// 3. UpdateState renames a state
func (s *LocationService) UpdateState(id uint, name string) error {
	result := s.DB.Model(&models.State{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// 4. DeleteState removes a state. Child municipalities are not guarded.
func (s *LocationService) DeleteState(id uint) error {
	result := s.DB.Delete(&models.State{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// 5. GetMunicipalitiesByState lists the municipalities of one state
func (s *LocationService) GetMunicipalitiesByState(stateID uint) ([]models.Municipality, error) {
	var municipalities []models.Municipality
	if err := s.DB.Where("state_id = ?", stateID).Order("id ASC").Find(&municipalities).Error; err != nil {
		return nil, err
	}
	return municipalities, nil
}

// 6. CreateMunicipality inserts a municipality under a state
func (s *LocationService) CreateMunicipality(name string, stateID uint) (uint, error) {
	municipality := models.Municipality{Name: name, StateID: stateID}
	if err := s.DB.Create(&municipality).Error; err != nil {
		return 0, err
	}
	return municipality.ID, nil
}

// 7. UpdateMunicipality overwrites name and parent state
func (s *LocationService) UpdateMunicipality(id uint, name string, stateID uint) error {
	result := s.DB.Model(&models.Municipality{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "state_id": stateID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// 8. DeleteMunicipality removes a municipality
func (s *LocationService) DeleteMunicipality(id uint) error {
	result := s.DB.Delete(&models.Municipality{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// 9. GetColoniesByMunicipality lists the colonies of one municipality
func (s *LocationService) GetColoniesByMunicipality(municipalityID uint) ([]models.Colony, error) {
	var colonies []models.Colony
	if err := s.DB.Where("municipality_id = ?", municipalityID).Order("id ASC").Find(&colonies).Error; err != nil {
		return nil, err
	}
	return colonies, nil
}

// 10. CreateColony inserts a colony under a municipality
func (s *LocationService) CreateColony(name string, municipalityID uint) (uint, error) {
	colony := models.Colony{Name: name, MunicipalityID: municipalityID}
	if err := s.DB.Create(&colony).Error; err != nil {
		return 0, err
	}
	return colony.ID, nil
}

// 11. UpdateColony overwrites name and parent municipality
func (s *LocationService) UpdateColony(id uint, name string, municipalityID uint) error {
	result := s.DB.Model(&models.Colony{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "municipality_id": municipalityID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// 12. DeleteColony removes a colony
func (s *LocationService) DeleteColony(id uint) error {
	result := s.DB.Delete(&models.Colony{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
