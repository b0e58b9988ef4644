package userdata

import "github.com/heartmarshall/records-api/internal/domain"

// Table is the storage table for per-user key/value data.
const Table = "users_data"

// Schema declares the fields of a user data entry.
var Schema = domain.Schema{
	Entity:   domain.EntityTypeUserData,
	Table:    Table,
	Identity: "uuid",
	Owner:    "users_uuid",
	Fields: []domain.Field{
		{Name: "id", Kind: domain.KindInt, ReadOnly: true},
		{Name: "uuid", Export: true, Rule: "uuid"},
		{Name: "users_uuid", Export: true, Rule: "uuid"},
		{Name: "key", Export: true, Rule: "max=255"},
		{Name: "value", Export: true},
		{Name: "type", Export: true, Rule: "max=32"},
		{Name: "created", Kind: domain.KindTime, Export: true, ReadOnly: true},
		{Name: "updated", Kind: domain.KindTime, Export: true, ReadOnly: true},
	},
}

var required = []string{"users_uuid", "key", "value"}
