package oauthapp

import "github.com/heartmarshall/records-api/internal/domain"

// Table is the storage table for app registrations.
const Table = "oauth2_apps"

// Schema declares the fields of an OAuth2 app registration.
var Schema = domain.Schema{
	Entity:   domain.EntityTypeOAuthApp,
	Table:    Table,
	Identity: "client_id",
	Owner:    "users_uuid",
	Fields: []domain.Field{
		{Name: "id", Kind: domain.KindInt, ReadOnly: true},
		{Name: "client_id", Export: true, Rule: "uuid"},
		{Name: "client_secret", Export: true, Secret: true, Rule: "uuid"},
		{Name: "users_uuid", Export: true, Rule: "uuid"},
		{Name: "name", Export: true, Rule: "max=255"},
		{Name: "logo_url", Export: true, Rule: "url,max=1024"},
		{Name: "description", Export: true},
		{Name: "scope", Export: true, Rule: "max=255"},
		{Name: "callback_uri", Export: true, Rule: "url,max=1024"},
		{Name: "redirect_uris", Export: true},
		{Name: "status", Export: true, Rule: "oneof=approved pending revoked"},
		{Name: "created", Kind: domain.KindTime, Export: true, ReadOnly: true},
		{Name: "updated", Kind: domain.KindTime, Export: true, ReadOnly: true},
	},
}

// required lists fields that must be non-empty after the merge.
var required = []string{"client_id", "client_secret", "users_uuid", "name"}
