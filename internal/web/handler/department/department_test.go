package department_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/civilapp/user-management/internal/config"
	"github.com/civilapp/user-management/internal/db/models"
	"github.com/civilapp/user-management/internal/web"
	"github.com/civilapp/user-management/internal/web/handler/department"
	"github.com/civilapp/user-management/internal/web/response"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Department{},
		&models.SubDepartment{},
		&models.Role{},
		&models.User{},
		&models.Dashboard{},
		&models.PermissionTemplate{},
		&models.Permission{},
	))

	app := fiber.New(fiber.Config{ErrorHandler: web.ErrorHandler})

	var handler department.Service
	handler.Init(app, &config.Config{}, db)

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, response.Envelope) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope response.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	return resp.StatusCode, envelope
}

func TestCreate(t *testing.T) {
	app, db := setupTestApp(t)

	status, envelope := postJSON(t, app, department.Path, `{"name":"Engineering","description":"builds things"}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, envelope.Success)
	assert.Equal(t, department.MsgDepartmentCreated, envelope.Message)

	var count int64
	require.NoError(t, db.Model(&models.Department{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreate_Duplicate(t *testing.T) {
	app, _ := setupTestApp(t)

	status, _ := postJSON(t, app, department.Path, `{"name":"Engineering"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, envelope := postJSON(t, app, department.Path, `{"name":"Engineering"}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.False(t, envelope.Success)
	assert.Equal(t, department.MsgDuplicateDepartment, envelope.Message)
}

func TestCreate_InvalidBody(t *testing.T) {
	app, _ := setupTestApp(t)

	status, envelope := postJSON(t, app, department.Path, `{not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, web.MsgValidationError, envelope.Message)

	status, envelope = postJSON(t, app, department.Path, `{"description":"missing name"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, web.MsgValidationError, envelope.Message)
}

func TestList(t *testing.T) {
	app, db := setupTestApp(t)

	require.NoError(t, db.Create(&models.Department{Name: "Engineering"}).Error)
	require.NoError(t, db.Create(&models.Department{Name: "Finance"}).Error)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, department.Path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope response.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)

	items, ok := envelope.Data.([]any)
	require.True(t, ok, "data must be a JSON array")
	assert.Len(t, items, 2)
}
