package availability_test

import (
	"net/http/httptest"
	"testing"

	"poc-availability/core/database"
	"poc-availability/core/loader"
	"poc-availability/feature/availability"
	"poc-availability/feature/availability/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeature_Disabled(t *testing.T) {
	f, err := availability.NewFeature(nil, availability.Config{}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "availability", f.Name())
	assert.False(t, f.IsEnabled())
	assert.Nil(t, f.Service())
}

func TestFeature_InvalidConfig(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	_, err = availability.NewFeature(db, availability.Config{MatchPolicy: "widest"}, zap.NewNop())
	assert.Error(t, err)
}

func TestFeature_LoadServesRoutes(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	require.NoError(t, db.Create(&models.Client{ID: 7, Name: "Acme Health"}).Error)
	require.NoError(t, db.Create(&models.Provider{ID: 1, Name: "Dr. Rao", Specialization: "Cardiology", ClientID: 7}).Error)

	f, err := availability.NewFeature(db, availability.Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, f.IsEnabled())

	app := fiber.New()
	m := loader.NewManager()
	m.Register(f)
	loaded, err := m.LoadAll(app)
	require.NoError(t, err)
	assert.Equal(t, []string{"availability"}, loaded)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/appointments/7/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/appointments/8/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
