// Package daemon assembles the service: database, schema and web server.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/civilapp/user-management/internal/config"
	"github.com/civilapp/user-management/internal/db/dsn"
	"github.com/civilapp/user-management/internal/db/models"
	"github.com/civilapp/user-management/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService web.Service
	addr       string
}

// Start starts the Daemon's web service. It blocks until the service has
// shut down gracefully.
func (d *Daemon) Start() error {
	return d.webService.Start(d.addr)
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(openDialector(cfg), &gorm.Config{
		// map driver duplicate-key and foreign-key errors onto the gorm
		// sentinels the controllers classify on
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
		return nil
	}

	// AutoMigrate creates the tables including the partial unique indexes
	// carrying the per-tier grant uniqueness.
	if err = db.AutoMigrate(
		&models.Department{},
		&models.SubDepartment{},
		&models.Role{},
		&models.User{},
		&models.Dashboard{},
		&models.PermissionTemplate{},
		&models.Permission{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
		return nil
	}

	seed(cfg, db)

	return &Daemon{
		webService: *web.New(cfg, db),
		addr:       fmt.Sprintf(":%d", cfg.Webserver.Port),
	}
}

// openDialector selects the gorm driver for the configured engine.
func openDialector(cfg *config.Config) gorm.Dialector {
	switch cfg.DB.GormEngine {
	case "postgres":
		return gormpostgres.Open(dsn.Create(cfg))
	case "sqlite":
		return sqlite.Open(dsn.Create(cfg))
	default:
		return gormmysql.Open(dsn.Create(cfg))
	}
}
