// Package authz decides whether a caller may act on a stored record.
package authz

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
	"github.com/google/uuid"

	"github.com/heartmarshall/records-api/internal/domain"
)

// Actions understood by the policy.
const (
	ActionWrite     = "write"
	ActionRead      = "read"
	ActionViewAdmin = "view_admin"
)

// objectAny is the object name used when a check is not resource-specific.
const objectAny = "record"

const deniedReason = "User does not have permission."

//go:embed model.conf
var modelText string

//go:embed policy.csv
var policyText string

// Authorizer evaluates ownership and role rules with a casbin enforcer.
type Authorizer struct {
	enforcer *casbin.Enforcer
}

// New creates an Authorizer from the embedded model. When policyPath is
// non-empty the policy is read from that file instead of the embedded one.
func New(policyPath string) (*Authorizer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("authz.New: parse model: %w", err)
	}

	var adapter persist.Adapter = stringadapter.NewAdapter(strings.TrimSpace(policyText))
	if strings.TrimSpace(policyPath) != "" {
		adapter = fileadapter.NewAdapter(policyPath)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("authz.New: create enforcer: %w", err)
	}
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("authz.New: load policy: %w", err)
	}

	return &Authorizer{enforcer: enforcer}, nil
}

// Allowed reports whether caller may perform act on obj owned by owner.
func (a *Authorizer) Allowed(caller domain.Caller, obj, act, owner string) (bool, error) {
	sub := ""
	if caller.ID != uuid.Nil {
		sub = caller.Identity()
	}
	ok, err := a.enforcer.Enforce(sub, caller.Role.String(), owner, obj, act)
	if err != nil {
		return false, fmt.Errorf("authz.Allowed: %w", err)
	}
	return ok, nil
}

// AuthorizeOwnership returns an *domain.AuthorizationError unless caller is
// an admin or owns existing, as named by its ownerField.
func (a *Authorizer) AuthorizeOwnership(caller domain.Caller, existing domain.Record, ownerField string) error {
	return a.authorize(caller, existing, ownerField, ActionWrite)
}

// AuthorizeRead applies the same ownership rule to reads.
func (a *Authorizer) AuthorizeRead(caller domain.Caller, existing domain.Record, ownerField string) error {
	return a.authorize(caller, existing, ownerField, ActionRead)
}

// CanViewAdmin reports whether caller may receive the admin view.
func (a *Authorizer) CanViewAdmin(caller domain.Caller) bool {
	ok, err := a.Allowed(caller, objectAny, ActionViewAdmin, "")
	return err == nil && ok
}

func (a *Authorizer) authorize(caller domain.Caller, existing domain.Record, ownerField, act string) error {
	ok, err := a.Allowed(caller, objectAny, act, existing.String(ownerField))
	if err != nil {
		return err
	}
	if !ok {
		return &domain.AuthorizationError{Actor: caller.Identity(), Reason: deniedReason}
	}
	return nil
}
