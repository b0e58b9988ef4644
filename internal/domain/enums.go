package domain

// EntityType identifies the kind of record (used in audit logs).
type EntityType string

const (
	EntityTypeOAuthApp EntityType = "OAUTH2_APP"
	EntityTypeUserData EntityType = "USER_DATA"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeOAuthApp, EntityTypeUserData:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate:
		return true
	}
	return false
}

// UserRole represents the authorization level of a caller.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// AppStatus is the lifecycle tag of an OAuth2 app registration.
type AppStatus string

const (
	AppStatusApproved AppStatus = "approved"
	AppStatusPending  AppStatus = "pending"
	AppStatusRevoked  AppStatus = "revoked"
)

func (s AppStatus) String() string { return string(s) }

func (s AppStatus) IsValid() bool {
	switch s {
	case AppStatusApproved, AppStatusPending, AppStatusRevoked:
		return true
	}
	return false
}

// View names accepted in the ?view= query parameter.
const (
	ViewAdmin  = "admin"
	ViewExport = "export"
)
