// Package main provides the entry point for the user-management service.
// It runs a web server using the Fiber framework exposing CRUD endpoints
// for organizational entities and tiered permission grants, resolves
// effective permissions with user > role > sub-department > department
// precedence, and shapes every response into a uniform JSON envelope. The
// application uses gorm for data persistence; grant uniqueness per scope
// tier is enforced by conditional unique indexes at the storage layer.
package main
