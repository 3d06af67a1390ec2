// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BlockExecutionsColumns holds the columns for the "block_executions" table.
	BlockExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "block_id", Type: field.TypeString},
		{Name: "block_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ok", "error"}},
		{Name: "input", Type: field.TypeJSON, SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb"}},
		{Name: "output", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "started_at", Type: field.TypeTime, SchemaType: map[string]string{"mysql": "timestamp", "postgres": "timestamptz"}},
		{Name: "finished_at", Type: field.TypeTime, SchemaType: map[string]string{"mysql": "timestamp", "postgres": "timestamptz"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "social_account_executions", Type: field.TypeUUID, Nullable: true},
		{Name: "user_executions", Type: field.TypeUUID, Nullable: true},
	}
	// BlockExecutionsTable holds the schema information for the "block_executions" table.
	BlockExecutionsTable = &schema.Table{
		Name:       "block_executions",
		Columns:    BlockExecutionsColumns,
		PrimaryKey: []*schema.Column{BlockExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "block_executions_social_accounts_executions",
				Columns:    []*schema.Column{BlockExecutionsColumns[11]},
				RefColumns: []*schema.Column{SocialAccountsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "block_executions_users_executions",
				Columns:    []*schema.Column{BlockExecutionsColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "blockexecution_block_id",
				Unique:  false,
				Columns: []*schema.Column{BlockExecutionsColumns[1]},
			},
			{
				Name:    "blockexecution_status",
				Unique:  false,
				Columns: []*schema.Column{BlockExecutionsColumns[3]},
			},
			{
				Name:    "blockexecution_created_at",
				Unique:  false,
				Columns: []*schema.Column{BlockExecutionsColumns[10]},
			},
		},
	}
	// IdentitiesColumns holds the columns for the "identities" table.
	IdentitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"password"}, Default: "password"},
		{Name: "identifier", Type: field.TypeString, Size: 320},
		{Name: "secret_hash", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "identity_user", Type: field.TypeUUID},
		{Name: "user_identities", Type: field.TypeUUID, Nullable: true},
	}
	// IdentitiesTable holds the schema information for the "identities" table.
	IdentitiesTable = &schema.Table{
		Name:       "identities",
		Columns:    IdentitiesColumns,
		PrimaryKey: []*schema.Column{IdentitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "identities_users_user",
				Columns:    []*schema.Column{IdentitiesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "identities_users_identities",
				Columns:    []*schema.Column{IdentitiesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "identity_provider_identifier",
				Unique:  true,
				Columns: []*schema.Column{IdentitiesColumns[1], IdentitiesColumns[2]},
			},
		},
	}
	// SocialAccountsColumns holds the columns for the "social_accounts" table.
	SocialAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"x"}, Default: "x"},
		{Name: "handle", Type: field.TypeString},
		{Name: "provider_user_id", Type: field.TypeString},
		{Name: "access_token_sealed", Type: field.TypeString},
		{Name: "scopes", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb"}},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"mysql": "timestamp", "postgres": "timestamptz"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_social_accounts", Type: field.TypeUUID},
	}
	// SocialAccountsTable holds the schema information for the "social_accounts" table.
	SocialAccountsTable = &schema.Table{
		Name:       "social_accounts",
		Columns:    SocialAccountsColumns,
		PrimaryKey: []*schema.Column{SocialAccountsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "social_accounts_users_social_accounts",
				Columns:    []*schema.Column{SocialAccountsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "socialaccount_provider_provider_user_id_user_social_accounts",
				Unique:  true,
				Columns: []*schema.Column{SocialAccountsColumns[1], SocialAccountsColumns[3], SocialAccountsColumns[11]},
			},
			{
				Name:    "socialaccount_handle",
				Unique:  false,
				Columns: []*schema.Column{SocialAccountsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"mysql": "timestamp", "postgres": "timestamptz"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BlockExecutionsTable,
		IdentitiesTable,
		SocialAccountsTable,
		UsersTable,
	}
)

func init() {
	BlockExecutionsTable.ForeignKeys[0].RefTable = SocialAccountsTable
	BlockExecutionsTable.ForeignKeys[1].RefTable = UsersTable
	IdentitiesTable.ForeignKeys[0].RefTable = UsersTable
	IdentitiesTable.ForeignKeys[1].RefTable = UsersTable
	SocialAccountsTable.ForeignKeys[0].RefTable = UsersTable
}
