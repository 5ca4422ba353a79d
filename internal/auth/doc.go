// Package auth resolves effective permissions from the four-tier grant
// model. A more specific grant always overrides a less specific one
// (user > role > sub-department > department); when nothing matches, the
// default is deny.
package auth
