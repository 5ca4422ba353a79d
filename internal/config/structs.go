package config

import (
	"github.com/civilapp/user-management/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover     bool   // disable recover middleware
	Domain             string // domain name for the webserver
	EnforcePermissions bool   // guard permission management routes with grant checks
	Port               int    // listening port for the webserver
	ShutDownTime       int    // wait time for shutdown
	URL                string // base url for the webserver
}
