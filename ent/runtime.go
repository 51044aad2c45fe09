// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/jellyswarrm/jellyswarrm/ent/apikey"
	"github.com/jellyswarrm/jellyswarrm/ent/auditlog"
	"github.com/jellyswarrm/jellyswarrm/ent/authsession"
	"github.com/jellyswarrm/jellyswarrm/ent/healthcheck"
	"github.com/jellyswarrm/jellyswarrm/ent/mediamapping"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrary"
	"github.com/jellyswarrm/jellyswarrm/ent/mergedlibrarysource"
	"github.com/jellyswarrm/jellyswarrm/ent/schema"
	"github.com/jellyswarrm/jellyswarrm/ent/server"
	"github.com/jellyswarrm/jellyswarrm/ent/servermapping"
	"github.com/jellyswarrm/jellyswarrm/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.APIKey{}.Fields()
	_ = apikeyFields
	// apikeyDescName is the schema descriptor for name field.
	apikeyDescName := apikeyFields[1].Descriptor()
	// apikey.NameValidator is a validator for the "name" field. It is called by the builders before save.
	apikey.NameValidator = apikeyDescName.Validators[0].(func(string) error)
	// apikeyDescKeyHash is the schema descriptor for key_hash field.
	apikeyDescKeyHash := apikeyFields[2].Descriptor()
	// apikey.KeyHashValidator is a validator for the "key_hash" field. It is called by the builders before save.
	apikey.KeyHashValidator = apikeyDescKeyHash.Validators[0].(func(string) error)
	// apikeyDescKeyPrefix is the schema descriptor for key_prefix field.
	apikeyDescKeyPrefix := apikeyFields[3].Descriptor()
	// apikey.KeyPrefixValidator is a validator for the "key_prefix" field. It is called by the builders before save.
	apikey.KeyPrefixValidator = func() func(string) error {
		validators := apikeyDescKeyPrefix.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(key_prefix string) error {
			for _, fn := range fns {
				if err := fn(key_prefix); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// apikeyDescCreatedBy is the schema descriptor for created_by field.
	apikeyDescCreatedBy := apikeyFields[4].Descriptor()
	// apikey.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	apikey.CreatedByValidator = apikeyDescCreatedBy.Validators[0].(func(string) error)
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[7].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	// apikeyDescID is the schema descriptor for id field.
	apikeyDescID := apikeyFields[0].Descriptor()
	// apikey.DefaultID holds the default value on creation for the id field.
	apikey.DefaultID = apikeyDescID.Default.(func() uuid.UUID)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[1].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[4].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[7].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogFields[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	authsessionFields := schema.AuthSession{}.Fields()
	_ = authsessionFields
	// authsessionDescAccessToken is the schema descriptor for access_token field.
	authsessionDescAccessToken := authsessionFields[1].Descriptor()
	// authsession.AccessTokenValidator is a validator for the "access_token" field. It is called by the builders before save.
	authsession.AccessTokenValidator = authsessionDescAccessToken.Validators[0].(func(string) error)
	// authsessionDescRemoteUserID is the schema descriptor for remote_user_id field.
	authsessionDescRemoteUserID := authsessionFields[2].Descriptor()
	// authsession.RemoteUserIDValidator is a validator for the "remote_user_id" field. It is called by the builders before save.
	authsession.RemoteUserIDValidator = authsessionDescRemoteUserID.Validators[0].(func(string) error)
	// authsessionDescDeviceID is the schema descriptor for device_id field.
	authsessionDescDeviceID := authsessionFields[3].Descriptor()
	// authsession.DeviceIDValidator is a validator for the "device_id" field. It is called by the builders before save.
	authsession.DeviceIDValidator = authsessionDescDeviceID.Validators[0].(func(string) error)
	// authsessionDescLastSeen is the schema descriptor for last_seen field.
	authsessionDescLastSeen := authsessionFields[8].Descriptor()
	// authsession.DefaultLastSeen holds the default value on creation for the last_seen field.
	authsession.DefaultLastSeen = authsessionDescLastSeen.Default.(func() time.Time)
	// authsessionDescCreatedAt is the schema descriptor for created_at field.
	authsessionDescCreatedAt := authsessionFields[9].Descriptor()
	// authsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	authsession.DefaultCreatedAt = authsessionDescCreatedAt.Default.(func() time.Time)
	// authsessionDescID is the schema descriptor for id field.
	authsessionDescID := authsessionFields[0].Descriptor()
	// authsession.DefaultID holds the default value on creation for the id field.
	authsession.DefaultID = authsessionDescID.Default.(func() uuid.UUID)
	healthcheckFields := schema.HealthCheck{}.Fields()
	_ = healthcheckFields
	// healthcheckDescCheckedAt is the schema descriptor for checked_at field.
	healthcheckDescCheckedAt := healthcheckFields[5].Descriptor()
	// healthcheck.DefaultCheckedAt holds the default value on creation for the checked_at field.
	healthcheck.DefaultCheckedAt = healthcheckDescCheckedAt.Default.(func() time.Time)
	// healthcheckDescID is the schema descriptor for id field.
	healthcheckDescID := healthcheckFields[0].Descriptor()
	// healthcheck.DefaultID holds the default value on creation for the id field.
	healthcheck.DefaultID = healthcheckDescID.Default.(func() uuid.UUID)
	mediamappingFields := schema.MediaMapping{}.Fields()
	_ = mediamappingFields
	// mediamappingDescVirtualID is the schema descriptor for virtual_id field.
	mediamappingDescVirtualID := mediamappingFields[1].Descriptor()
	// mediamapping.VirtualIDValidator is a validator for the "virtual_id" field. It is called by the builders before save.
	mediamapping.VirtualIDValidator = mediamappingDescVirtualID.Validators[0].(func(string) error)
	// mediamappingDescOriginalID is the schema descriptor for original_id field.
	mediamappingDescOriginalID := mediamappingFields[2].Descriptor()
	// mediamapping.OriginalIDValidator is a validator for the "original_id" field. It is called by the builders before save.
	mediamapping.OriginalIDValidator = mediamappingDescOriginalID.Validators[0].(func(string) error)
	// mediamappingDescCreatedAt is the schema descriptor for created_at field.
	mediamappingDescCreatedAt := mediamappingFields[3].Descriptor()
	// mediamapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	mediamapping.DefaultCreatedAt = mediamappingDescCreatedAt.Default.(func() time.Time)
	// mediamappingDescID is the schema descriptor for id field.
	mediamappingDescID := mediamappingFields[0].Descriptor()
	// mediamapping.DefaultID holds the default value on creation for the id field.
	mediamapping.DefaultID = mediamappingDescID.Default.(func() uuid.UUID)
	mergedlibraryFields := schema.MergedLibrary{}.Fields()
	_ = mergedlibraryFields
	// mergedlibraryDescVirtualID is the schema descriptor for virtual_id field.
	mergedlibraryDescVirtualID := mergedlibraryFields[1].Descriptor()
	// mergedlibrary.VirtualIDValidator is a validator for the "virtual_id" field. It is called by the builders before save.
	mergedlibrary.VirtualIDValidator = mergedlibraryDescVirtualID.Validators[0].(func(string) error)
	// mergedlibraryDescName is the schema descriptor for name field.
	mergedlibraryDescName := mergedlibraryFields[2].Descriptor()
	// mergedlibrary.NameValidator is a validator for the "name" field. It is called by the builders before save.
	mergedlibrary.NameValidator = mergedlibraryDescName.Validators[0].(func(string) error)
	// mergedlibraryDescIsGlobal is the schema descriptor for is_global field.
	mergedlibraryDescIsGlobal := mergedlibraryFields[6].Descriptor()
	// mergedlibrary.DefaultIsGlobal holds the default value on creation for the is_global field.
	mergedlibrary.DefaultIsGlobal = mergedlibraryDescIsGlobal.Default.(bool)
	// mergedlibraryDescCreatedAt is the schema descriptor for created_at field.
	mergedlibraryDescCreatedAt := mergedlibraryFields[7].Descriptor()
	// mergedlibrary.DefaultCreatedAt holds the default value on creation for the created_at field.
	mergedlibrary.DefaultCreatedAt = mergedlibraryDescCreatedAt.Default.(func() time.Time)
	// mergedlibraryDescUpdatedAt is the schema descriptor for updated_at field.
	mergedlibraryDescUpdatedAt := mergedlibraryFields[8].Descriptor()
	// mergedlibrary.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mergedlibrary.DefaultUpdatedAt = mergedlibraryDescUpdatedAt.Default.(func() time.Time)
	// mergedlibrary.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mergedlibrary.UpdateDefaultUpdatedAt = mergedlibraryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mergedlibraryDescID is the schema descriptor for id field.
	mergedlibraryDescID := mergedlibraryFields[0].Descriptor()
	// mergedlibrary.DefaultID holds the default value on creation for the id field.
	mergedlibrary.DefaultID = mergedlibraryDescID.Default.(func() uuid.UUID)
	mergedlibrarysourceFields := schema.MergedLibrarySource{}.Fields()
	_ = mergedlibrarysourceFields
	// mergedlibrarysourceDescLibraryID is the schema descriptor for library_id field.
	mergedlibrarysourceDescLibraryID := mergedlibrarysourceFields[1].Descriptor()
	// mergedlibrarysource.LibraryIDValidator is a validator for the "library_id" field. It is called by the builders before save.
	mergedlibrarysource.LibraryIDValidator = mergedlibrarysourceDescLibraryID.Validators[0].(func(string) error)
	// mergedlibrarysourceDescPriority is the schema descriptor for priority field.
	mergedlibrarysourceDescPriority := mergedlibrarysourceFields[3].Descriptor()
	// mergedlibrarysource.DefaultPriority holds the default value on creation for the priority field.
	mergedlibrarysource.DefaultPriority = mergedlibrarysourceDescPriority.Default.(int)
	// mergedlibrarysourceDescCreatedAt is the schema descriptor for created_at field.
	mergedlibrarysourceDescCreatedAt := mergedlibrarysourceFields[4].Descriptor()
	// mergedlibrarysource.DefaultCreatedAt holds the default value on creation for the created_at field.
	mergedlibrarysource.DefaultCreatedAt = mergedlibrarysourceDescCreatedAt.Default.(func() time.Time)
	// mergedlibrarysourceDescID is the schema descriptor for id field.
	mergedlibrarysourceDescID := mergedlibrarysourceFields[0].Descriptor()
	// mergedlibrarysource.DefaultID holds the default value on creation for the id field.
	mergedlibrarysource.DefaultID = mergedlibrarysourceDescID.Default.(func() uuid.UUID)
	serverFields := schema.Server{}.Fields()
	_ = serverFields
	// serverDescName is the schema descriptor for name field.
	serverDescName := serverFields[1].Descriptor()
	// server.NameValidator is a validator for the "name" field. It is called by the builders before save.
	server.NameValidator = serverDescName.Validators[0].(func(string) error)
	// serverDescURL is the schema descriptor for url field.
	serverDescURL := serverFields[2].Descriptor()
	// server.URLValidator is a validator for the "url" field. It is called by the builders before save.
	server.URLValidator = serverDescURL.Validators[0].(func(string) error)
	// serverDescPriority is the schema descriptor for priority field.
	serverDescPriority := serverFields[3].Descriptor()
	// server.DefaultPriority holds the default value on creation for the priority field.
	server.DefaultPriority = serverDescPriority.Default.(int)
	// serverDescCreatedAt is the schema descriptor for created_at field.
	serverDescCreatedAt := serverFields[4].Descriptor()
	// server.DefaultCreatedAt holds the default value on creation for the created_at field.
	server.DefaultCreatedAt = serverDescCreatedAt.Default.(func() time.Time)
	// serverDescUpdatedAt is the schema descriptor for updated_at field.
	serverDescUpdatedAt := serverFields[5].Descriptor()
	// server.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	server.DefaultUpdatedAt = serverDescUpdatedAt.Default.(func() time.Time)
	// server.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	server.UpdateDefaultUpdatedAt = serverDescUpdatedAt.UpdateDefault.(func() time.Time)
	// serverDescID is the schema descriptor for id field.
	serverDescID := serverFields[0].Descriptor()
	// server.DefaultID holds the default value on creation for the id field.
	server.DefaultID = serverDescID.Default.(func() uuid.UUID)
	servermappingFields := schema.ServerMapping{}.Fields()
	_ = servermappingFields
	// servermappingDescRemoteUsername is the schema descriptor for remote_username field.
	servermappingDescRemoteUsername := servermappingFields[1].Descriptor()
	// servermapping.RemoteUsernameValidator is a validator for the "remote_username" field. It is called by the builders before save.
	servermapping.RemoteUsernameValidator = servermappingDescRemoteUsername.Validators[0].(func(string) error)
	// servermappingDescEncryptedPassword is the schema descriptor for encrypted_password field.
	servermappingDescEncryptedPassword := servermappingFields[2].Descriptor()
	// servermapping.EncryptedPasswordValidator is a validator for the "encrypted_password" field. It is called by the builders before save.
	servermapping.EncryptedPasswordValidator = servermappingDescEncryptedPassword.Validators[0].(func(string) error)
	// servermappingDescCreatedAt is the schema descriptor for created_at field.
	servermappingDescCreatedAt := servermappingFields[4].Descriptor()
	// servermapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	servermapping.DefaultCreatedAt = servermappingDescCreatedAt.Default.(func() time.Time)
	// servermappingDescUpdatedAt is the schema descriptor for updated_at field.
	servermappingDescUpdatedAt := servermappingFields[5].Descriptor()
	// servermapping.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	servermapping.DefaultUpdatedAt = servermappingDescUpdatedAt.Default.(func() time.Time)
	// servermapping.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	servermapping.UpdateDefaultUpdatedAt = servermappingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// servermappingDescID is the schema descriptor for id field.
	servermappingDescID := servermappingFields[0].Descriptor()
	// servermapping.DefaultID holds the default value on creation for the id field.
	servermapping.DefaultID = servermappingDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescKeyHash is the schema descriptor for key_hash field.
	userDescKeyHash := userFields[3].Descriptor()
	// user.KeyHashValidator is a validator for the "key_hash" field. It is called by the builders before save.
	user.KeyHashValidator = userDescKeyHash.Validators[0].(func(string) error)
	// userDescVirtualKey is the schema descriptor for virtual_key field.
	userDescVirtualKey := userFields[4].Descriptor()
	// user.VirtualKeyValidator is a validator for the "virtual_key" field. It is called by the builders before save.
	user.VirtualKeyValidator = userDescVirtualKey.Validators[0].(func(string) error)
	// userDescIsAdmin is the schema descriptor for is_admin field.
	userDescIsAdmin := userFields[5].Descriptor()
	// user.DefaultIsAdmin holds the default value on creation for the is_admin field.
	user.DefaultIsAdmin = userDescIsAdmin.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[7].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
