package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/models"
)

func setupLocationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.State{}, &models.Municipality{}, &models.Colony{}))
	return db
}

func TestLocationService(t *testing.T) {
	db := setupLocationTestDB(t)
	service := NewLocationService(db, &config.Config{})

	t.Run("State Lifecycle", func(t *testing.T) {
		id, err := service.CreateState("Jalisco")
		require.NoError(t, err)

		states, err := service.GetStates()
		require.NoError(t, err)
		require.Len(t, states, 1)
		assert.Equal(t, "Jalisco", states[0].Name)

		require.NoError(t, service.UpdateState(id, "Estado de Jalisco"))
		states, _ = service.GetStates()
		assert.Equal(t, "Estado de Jalisco", states[0].Name)

		require.NoError(t, service.DeleteState(id))
		states, _ = service.GetStates()
		assert.Empty(t, states)

		assert.ErrorIs(t, service.UpdateState(9999, "x"), gorm.ErrRecordNotFound)
		assert.ErrorIs(t, service.DeleteState(9999), gorm.ErrRecordNotFound)
	})

	t.Run("Municipalities Are Scoped To Their State", func(t *testing.T) {
		jaliscoID, err := service.CreateState("Jalisco")
		require.NoError(t, err)
		nuevoLeonID, err := service.CreateState("Nuevo León")
		require.NoError(t, err)

		_, err = service.CreateMunicipality("Guadalajara", jaliscoID)
		require.NoError(t, err)
		_, err = service.CreateMunicipality("Zapopan", jaliscoID)
		require.NoError(t, err)
		_, err = service.CreateMunicipality("Monterrey", nuevoLeonID)
		require.NoError(t, err)

		municipalities, err := service.GetMunicipalitiesByState(jaliscoID)
		require.NoError(t, err)
		assert.Len(t, municipalities, 2)

		municipalities, err = service.GetMunicipalitiesByState(nuevoLeonID)
		require.NoError(t, err)
		require.Len(t, municipalities, 1)
		assert.Equal(t, "Monterrey", municipalities[0].Name)
	})

	t.Run("Colonies Are Scoped To Their Municipality", func(t *testing.T) {
		stateID, err := service.CreateState("Ciudad de México")
		require.NoError(t, err)
		cuauhtemocID, err := service.CreateMunicipality("Cuauhtémoc", stateID)
		require.NoError(t, err)
		coyoacanID, err := service.CreateMunicipality("Coyoacán", stateID)
		require.NoError(t, err)

		_, err = service.CreateColony("Juárez", cuauhtemocID)
		require.NoError(t, err)
		_, err = service.CreateColony("Roma Norte", cuauhtemocID)
		require.NoError(t, err)
		colonyID, err := service.CreateColony("Del Carmen", coyoacanID)
		require.NoError(t, err)

		colonies, err := service.GetColoniesByMunicipality(cuauhtemocID)
		require.NoError(t, err)
		assert.Len(t, colonies, 2)

		require.NoError(t, service.UpdateColony(colonyID, "Del Carmen Centro", coyoacanID))
		colonies, err = service.GetColoniesByMunicipality(coyoacanID)
		require.NoError(t, err)
		require.Len(t, colonies, 1)
		assert.Equal(t, "Del Carmen Centro", colonies[0].Name)

		require.NoError(t, service.DeleteColony(colonyID))
		colonies, _ = service.GetColoniesByMunicipality(coyoacanID)
		assert.Empty(t, colonies)
	})
}
