package auth_test

import (
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/civilapp/user-management/internal/auth"
	"github.com/civilapp/user-management/internal/db/models"
	"github.com/civilapp/user-management/internal/web"
	"github.com/civilapp/user-management/internal/web/response"
)

func newGuardedApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{ErrorHandler: web.ErrorHandler})

	app.Get("/guarded",
		auth.RequirePermission(auth.NewService(db), "reports", "export"),
		func(c *fiber.Ctx) error {
			return response.Success(c, "", nil)
		})

	return app
}

func TestRequirePermission_MissingHeader(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	app := newGuardedApp(t, db)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var envelope response.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, web.MsgPermissionDenied, envelope.Message)
}

func TestRequirePermission_MalformedHeader(t *testing.T) {
	db := setupTestDB(t)
	seedFixture(t, db)
	app := newGuardedApp(t, db)

	req := httptest.NewRequest(fiber.MethodGet, "/guarded", nil)
	req.Header.Set(auth.HeaderUserID, "not-a-number")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequirePermission_Denied(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	app := newGuardedApp(t, db)

	// user exists but holds no grant
	req := httptest.NewRequest(fiber.MethodGet, "/guarded", nil)
	req.Header.Set(auth.HeaderUserID, strconv.FormatUint(f.user.ID, 10))

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequirePermission_Allowed(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	require.NoError(t, db.Create(&models.Permission{
		DepartmentID:         f.dept.ID,
		PermissionTemplateID: f.template.ID,
		Allowed:              true,
	}).Error)

	app := newGuardedApp(t, db)

	req := httptest.NewRequest(fiber.MethodGet, "/guarded", nil)
	req.Header.Set(auth.HeaderUserID, strconv.FormatUint(f.user.ID, 10))

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope response.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, response.DefaultSuccessMessage, envelope.Message)
}
