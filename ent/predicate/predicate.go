// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIKey is the predicate function for apikey builders.
type APIKey func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// AuthSession is the predicate function for authsession builders.
type AuthSession func(*sql.Selector)

// HealthCheck is the predicate function for healthcheck builders.
type HealthCheck func(*sql.Selector)

// MediaMapping is the predicate function for mediamapping builders.
type MediaMapping func(*sql.Selector)

// MergedLibrary is the predicate function for mergedlibrary builders.
type MergedLibrary func(*sql.Selector)

// MergedLibrarySource is the predicate function for mergedlibrarysource builders.
type MergedLibrarySource func(*sql.Selector)

// Server is the predicate function for server builders.
type Server func(*sql.Selector)

// ServerMapping is the predicate function for servermapping builders.
type ServerMapping func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
