// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "key_hash", Type: field.TypeString, Unique: true},
		{Name: "key_prefix", Type: field.TypeString, Size: 8},
		{Name: "created_by", Type: field.TypeString},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "actor", Type: field.TypeString},
		{Name: "actor_type", Type: field.TypeEnum, Enums: []string{"admin", "user", "system"}, Default: "system"},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"create", "update", "delete", "login", "logout", "password_change", "session_reset"}},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[7]},
			},
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[4], AuditLogsColumns[5]},
			},
		},
	}
	// AuthSessionsColumns holds the columns for the "auth_sessions" table.
	AuthSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "access_token", Type: field.TypeString},
		{Name: "remote_user_id", Type: field.TypeString},
		{Name: "device_id", Type: field.TypeString},
		{Name: "device_name", Type: field.TypeString, Nullable: true},
		{Name: "client", Type: field.TypeString, Nullable: true},
		{Name: "client_version", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_seen", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "server_mapping_sessions", Type: field.TypeUUID},
		{Name: "user_sessions", Type: field.TypeUUID},
	}
	// AuthSessionsTable holds the schema information for the "auth_sessions" table.
	AuthSessionsTable = &schema.Table{
		Name:       "auth_sessions",
		Columns:    AuthSessionsColumns,
		PrimaryKey: []*schema.Column{AuthSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "auth_sessions_server_mappings_sessions",
				Columns:    []*schema.Column{AuthSessionsColumns[10]},
				RefColumns: []*schema.Column{ServerMappingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "auth_sessions_users_sessions",
				Columns:    []*schema.Column{AuthSessionsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "authsession_device_id_user_sessions_server_mapping_sessions",
				Unique:  true,
				Columns: []*schema.Column{AuthSessionsColumns[3], AuthSessionsColumns[11], AuthSessionsColumns[10]},
			},
		},
	}
	// HealthChecksColumns holds the columns for the "health_checks" table.
	HealthChecksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "healthy", Type: field.TypeBool},
		{Name: "response_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "version", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "checked_at", Type: field.TypeTime},
		{Name: "server_health_checks", Type: field.TypeUUID},
	}
	// HealthChecksTable holds the schema information for the "health_checks" table.
	HealthChecksTable = &schema.Table{
		Name:       "health_checks",
		Columns:    HealthChecksColumns,
		PrimaryKey: []*schema.Column{HealthChecksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "health_checks_servers_health_checks",
				Columns:    []*schema.Column{HealthChecksColumns[6]},
				RefColumns: []*schema.Column{ServersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "healthcheck_checked_at_server_health_checks",
				Unique:  false,
				Columns: []*schema.Column{HealthChecksColumns[5], HealthChecksColumns[6]},
			},
		},
	}
	// MediaMappingsColumns holds the columns for the "media_mappings" table.
	MediaMappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "virtual_id", Type: field.TypeString, Unique: true},
		{Name: "original_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "server_media_mappings", Type: field.TypeUUID},
	}
	// MediaMappingsTable holds the schema information for the "media_mappings" table.
	MediaMappingsTable = &schema.Table{
		Name:       "media_mappings",
		Columns:    MediaMappingsColumns,
		PrimaryKey: []*schema.Column{MediaMappingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "media_mappings_servers_media_mappings",
				Columns:    []*schema.Column{MediaMappingsColumns[4]},
				RefColumns: []*schema.Column{ServersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mediamapping_original_id_server_media_mappings",
				Unique:  true,
				Columns: []*schema.Column{MediaMappingsColumns[2], MediaMappingsColumns[4]},
			},
		},
	}
	// MergedLibrariesColumns holds the columns for the "merged_libraries" table.
	MergedLibrariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "virtual_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "collection_type", Type: field.TypeEnum, Enums: []string{"movies", "tvshows", "music", "books", "mixed"}, Default: "mixed"},
		{Name: "dedup_strategy", Type: field.TypeEnum, Enums: []string{"provider_ids", "name_year", "none"}, Default: "provider_ids"},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "is_global", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MergedLibrariesTable holds the schema information for the "merged_libraries" table.
	MergedLibrariesTable = &schema.Table{
		Name:       "merged_libraries",
		Columns:    MergedLibrariesColumns,
		PrimaryKey: []*schema.Column{MergedLibrariesColumns[0]},
	}
	// MergedLibrarySourcesColumns holds the columns for the "merged_library_sources" table.
	MergedLibrarySourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "library_id", Type: field.TypeString},
		{Name: "library_name", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 100},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "merged_library_sources", Type: field.TypeUUID},
		{Name: "server_library_sources", Type: field.TypeUUID},
	}
	// MergedLibrarySourcesTable holds the schema information for the "merged_library_sources" table.
	MergedLibrarySourcesTable = &schema.Table{
		Name:       "merged_library_sources",
		Columns:    MergedLibrarySourcesColumns,
		PrimaryKey: []*schema.Column{MergedLibrarySourcesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "merged_library_sources_merged_libraries_sources",
				Columns:    []*schema.Column{MergedLibrarySourcesColumns[5]},
				RefColumns: []*schema.Column{MergedLibrariesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "merged_library_sources_servers_library_sources",
				Columns:    []*schema.Column{MergedLibrarySourcesColumns[6]},
				RefColumns: []*schema.Column{ServersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mergedlibrarysource_library_id_merged_library_sources_server_library_sources",
				Unique:  true,
				Columns: []*schema.Column{MergedLibrarySourcesColumns[1], MergedLibrarySourcesColumns[5], MergedLibrarySourcesColumns[6]},
			},
		},
	}
	// ServersColumns holds the columns for the "servers" table.
	ServersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 100},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ServersTable holds the schema information for the "servers" table.
	ServersTable = &schema.Table{
		Name:       "servers",
		Columns:    ServersColumns,
		PrimaryKey: []*schema.Column{ServersColumns[0]},
	}
	// ServerMappingsColumns holds the columns for the "server_mappings" table.
	ServerMappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "remote_username", Type: field.TypeString},
		{Name: "encrypted_password", Type: field.TypeString},
		{Name: "recovery_password", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "server_mappings", Type: field.TypeUUID},
		{Name: "user_mappings", Type: field.TypeUUID},
	}
	// ServerMappingsTable holds the schema information for the "server_mappings" table.
	ServerMappingsTable = &schema.Table{
		Name:       "server_mappings",
		Columns:    ServerMappingsColumns,
		PrimaryKey: []*schema.Column{ServerMappingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "server_mappings_servers_mappings",
				Columns:    []*schema.Column{ServerMappingsColumns[6]},
				RefColumns: []*schema.Column{ServersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "server_mappings_users_mappings",
				Columns:    []*schema.Column{ServerMappingsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "servermapping_user_mappings_server_mappings",
				Unique:  true,
				Columns: []*schema.Column{ServerMappingsColumns[7], ServerMappingsColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "key_hash", Type: field.TypeString},
		{Name: "virtual_key", Type: field.TypeString, Unique: true},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username_key_hash",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1], UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		AuditLogsTable,
		AuthSessionsTable,
		HealthChecksTable,
		MediaMappingsTable,
		MergedLibrariesTable,
		MergedLibrarySourcesTable,
		ServersTable,
		ServerMappingsTable,
		UsersTable,
	}
)

func init() {
	AuthSessionsTable.ForeignKeys[0].RefTable = ServerMappingsTable
	AuthSessionsTable.ForeignKeys[1].RefTable = UsersTable
	HealthChecksTable.ForeignKeys[0].RefTable = ServersTable
	MediaMappingsTable.ForeignKeys[0].RefTable = ServersTable
	MergedLibrarySourcesTable.ForeignKeys[0].RefTable = MergedLibrariesTable
	MergedLibrarySourcesTable.ForeignKeys[1].RefTable = ServersTable
	ServerMappingsTable.ForeignKeys[0].RefTable = ServersTable
	ServerMappingsTable.ForeignKeys[1].RefTable = UsersTable
}
