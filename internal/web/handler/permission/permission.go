// Package permission provides the grant management and resolution endpoints.
package permission

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/civilapp/user-management/internal/apperr"
	"github.com/civilapp/user-management/internal/auth"
	"github.com/civilapp/user-management/internal/config"
	permissionctl "github.com/civilapp/user-management/internal/db/controller/permission"
	"github.com/civilapp/user-management/internal/web/handler"
	"github.com/civilapp/user-management/internal/web/response"
)

const (
	// Path is the base path for grant management.
	Path = handler.RootPath + "permission"
	// RouteResolve is the route answering effective-permission queries.
	RouteResolve = Path + "/resolve"

	// GuardDashboard is the dashboard the management endpoints are declared
	// under when grant enforcement is enabled.
	GuardDashboard = "admin"
	// GuardAction is the template action guarding the management endpoints.
	GuardAction = "permissions.manage"

	// MsgDuplicatePermission is the business error for a duplicate grant.
	MsgDuplicatePermission = "Duplicate permission"
	// MsgPermissionCreated is the success message for a created grant.
	MsgPermissionCreated = "Permission created"

	// QueryUserID is the query parameter naming the user to resolve for.
	QueryUserID = "user_id"
	// QueryTemplateID is the query parameter naming the template to resolve.
	QueryTemplateID = "template_id"
)

// Service provides grant management and resolution endpoints.
type Service struct {
	cfg         *config.Config
	db          *gorm.DB
	authService *auth.Service
	validator   *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes. When grant enforcement is enabled in the config,
// the management routes themselves require the admin/permissions.manage
// grant; a fresh deployment leaves enforcement off so the first grants can
// be bootstrapped.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, authService *auth.Service) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg
	s.authService = authService
	s.validator = validator.New()

	if cfg.Webserver.EnforcePermissions {
		guard := auth.RequirePermission(authService, GuardDashboard, GuardAction)

		app.Get(Path, guard, s.List)
		app.Post(Path, guard, s.Create)
		app.Get(RouteResolve, guard, s.Resolve)

		return
	}

	app.Get(Path, s.List)
	app.Post(Path, s.Create)
	app.Get(RouteResolve, s.Resolve)
}

// List returns all grants.
func (s *Service) List(c *fiber.Ctx) error {
	grants, err := permissionctl.GetAll(s.db)
	if err != nil {
		return err
	}

	return response.Success(c, "", grants)
}

// Create creates a grant from a JSON body. The populated optional scope
// references determine the grant's tier.
func (s *Service) Create(c *fiber.Ctx) error {
	var input createInput
	if err := c.BodyParser(&input); err != nil {
		return pkgerrors.Wrap(apperr.ErrValidation, err.Error())
	}

	if err := s.validator.Struct(input); err != nil {
		return err
	}

	allowed := true
	if input.Allowed != nil {
		allowed = *input.Allowed
	}

	grant, err := permissionctl.CreateGrant(s.db, permissionctl.GrantInput{
		DepartmentID:         input.DepartmentID,
		SubDepartmentID:      input.SubDepartmentID,
		RoleID:               input.RoleID,
		UserID:               input.UserID,
		PermissionTemplateID: input.PermissionTemplateID,
		Allowed:              allowed,
	})
	if err != nil {
		if errors.Is(err, permissionctl.ErrDuplicateGrant) {
			return apperr.NewWithStatus(MsgDuplicatePermission, fiber.StatusConflict)
		}

		if errors.Is(err, permissionctl.ErrReferenceNotFound) {
			return pkgerrors.Wrap(apperr.ErrValidation, err.Error())
		}

		return err
	}

	return response.SuccessWithStatus(c, MsgPermissionCreated, grant, fiber.StatusCreated)
}

// Resolve answers the effective permission for a (user, template) pair.
func (s *Service) Resolve(c *fiber.Ctx) error {
	userID := c.QueryInt(QueryUserID)
	if userID <= 0 {
		return pkgerrors.Wrap(apperr.ErrValidation, "query parameter "+QueryUserID+" must be a positive integer")
	}

	templateID := c.QueryInt(QueryTemplateID)
	if templateID <= 0 {
		return pkgerrors.Wrap(apperr.ErrValidation, "query parameter "+QueryTemplateID+" must be a positive integer")
	}

	decision, err := s.authService.Resolve(uint64(userID), uint(templateID))
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return pkgerrors.Wrap(apperr.ErrValidation, err.Error())
		}

		return err
	}

	return response.Success(c, "", decision)
}
