package auth

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/pkg/errors"

	"github.com/civilapp/user-management/internal/apperr"
)

// HeaderUserID carries the acting user's ID. The service runs behind a
// gateway that authenticates callers; token and session handling are out of
// scope here.
const HeaderUserID = "X-User-Id"

// RequirePermission creates Fiber middleware that requires the acting user
// to hold an allow grant for the given dashboard action. Denials surface as
// apperr.ErrPermissionDenied and are shaped by the central error handler.
func RequirePermission(authService *Service, dashboard, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rawID := c.Get(HeaderUserID)
		if rawID == "" {
			return pkgerrors.Wrap(apperr.ErrPermissionDenied, "missing "+HeaderUserID+" header")
		}

		userID, err := strconv.ParseUint(rawID, 10, 64)
		if err != nil {
			return pkgerrors.Wrap(apperr.ErrPermissionDenied, "malformed "+HeaderUserID+" header")
		}

		allowed, err := authService.HasPermission(userID, dashboard, action)
		if err != nil {
			return err
		}

		if !allowed {
			return pkgerrors.Wrapf(apperr.ErrPermissionDenied, "user %d lacks %s.%s", userID, dashboard, action)
		}

		return c.Next()
	}
}
