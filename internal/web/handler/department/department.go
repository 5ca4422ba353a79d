// Package department provides the department list/create endpoints.
package department

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/civilapp/user-management/internal/apperr"
	"github.com/civilapp/user-management/internal/config"
	departmentctl "github.com/civilapp/user-management/internal/db/controller/department"
	"github.com/civilapp/user-management/internal/web/handler"
	"github.com/civilapp/user-management/internal/web/response"
)

const (
	// Path is the base path for department management.
	Path = handler.RootPath + "department"

	// MsgDuplicateDepartment is the business error for a taken name.
	MsgDuplicateDepartment = "Duplicate department"
	// MsgDepartmentCreated is the success message for a created department.
	MsgDepartmentCreated = "Department created"
)

// Service provides list/create operations for departments.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Post(Path, s.Create)
}

// List returns all departments.
func (s *Service) List(c *fiber.Ctx) error {
	departments, err := departmentctl.GetAll(s.db)
	if err != nil {
		return err
	}

	return response.Success(c, "", departments)
}

// Create creates a department from a JSON body.
func (s *Service) Create(c *fiber.Ctx) error {
	var input createInput
	if err := c.BodyParser(&input); err != nil {
		return pkgerrors.Wrap(apperr.ErrValidation, err.Error())
	}

	if err := s.validator.Struct(input); err != nil {
		return err
	}

	department, err := departmentctl.Create(s.db, input.Name, input.Description)
	if err != nil {
		if errors.Is(err, departmentctl.ErrDepartmentAlreadyExists) {
			return apperr.NewWithStatus(MsgDuplicateDepartment, fiber.StatusConflict)
		}

		if errors.Is(err, departmentctl.ErrDepartmentNameEmpty) {
			return pkgerrors.Wrap(apperr.ErrValidation, err.Error())
		}

		return err
	}

	return response.SuccessWithStatus(c, MsgDepartmentCreated, department, fiber.StatusCreated)
}
