// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/civilapp/user-management/internal/config"
)

// Create builds the Data Source Name from the configuration, depending on
// the configured gorm engine.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case "postgres":
		out := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d %s",
			cfg.DB.Host,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Port,
			cfg.DB.Extras,
		)

		return out
	case "sqlite":
		// file database for dev mode; foreign keys are off by default in
		// sqlite and the cascade rules depend on them.
		return fmt.Sprintf("%s?_pragma=foreign_keys(1)", cfg.DB.Name)
	default: // mysql
		out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
			cfg.DB.Extras,
		)

		return out
	}
}
