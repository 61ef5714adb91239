// Package authz holds the access predicates attached to each data request
// action. Predicates never fail: they return a Verdict.
package authz

import (
	"context"
	"errors"

	"datarequests/internal/domain/identity"
	"datarequests/internal/shared/logger"
)

// Action names are the stable public names of the operations.
type Action string

const (
	ActionCreate        Action = "datarequest_create"
	ActionShow          Action = "datarequest_show"
	ActionList          Action = "datarequest_list"
	ActionCommentCreate Action = "datarequest_comment_create"
	ActionCommentList   Action = "datarequest_comment_list"
	ActionStatusUpdate  Action = "datarequest_status_update"
)

// Actions lists every action in a stable order.
func Actions() []Action {
	return []Action{
		ActionCreate,
		ActionShow,
		ActionList,
		ActionCommentCreate,
		ActionCommentList,
		ActionStatusUpdate,
	}
}

// Resource is the object name used in every policy row.
const Resource = "datarequest"

const (
	RoleAnonymous = "anonymous"
	RoleUser      = "user"
	RoleAdmin     = "admin"
)

const (
	ReasonLoginToCreate  = "You must be logged in to create a data request."
	ReasonLoginToComment = "You must be logged in to comment."
	ReasonSysadminStatus = "You must be sysadmin to change status."
	reasonDenied         = "You are not authorized to perform this action."
)

var denyReasons = map[Action]string{
	ActionCreate:        ReasonLoginToCreate,
	ActionCommentCreate: ReasonLoginToComment,
	ActionStatusUpdate:  ReasonSysadminStatus,
}

// DenyReason is the message returned when action is refused.
func DenyReason(action Action) string {
	if r, ok := denyReasons[action]; ok {
		return r
	}
	return reasonDenied
}

// Verdict is the outcome of a predicate.
type Verdict struct {
	Allowed bool
	Reason  string
}

func Allow() Verdict {
	return Verdict{Allowed: true}
}

func Deny(reason string) Verdict {
	return Verdict{Allowed: false, Reason: reason}
}

// Authorizer evaluates the predicate for an action.
type Authorizer interface {
	Check(ctx context.Context, action Action, caller identity.Caller) Verdict
}

// PolicyEnforcer answers whether role may perform action on resource.
type PolicyEnforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

// DefaultPolicies grants each role its own actions; inheritance supplies the rest.
func DefaultPolicies() [][]string {
	return [][]string{
		{RoleAnonymous, Resource, string(ActionShow)},
		{RoleAnonymous, Resource, string(ActionList)},
		{RoleAnonymous, Resource, string(ActionCommentList)},
		{RoleUser, Resource, string(ActionCreate)},
		{RoleUser, Resource, string(ActionCommentCreate)},
		{RoleAdmin, Resource, string(ActionStatusUpdate)},
	}
}

// RoleInheritance lists (member, parent) grouping rules: admin ⊃ user ⊃ anonymous.
func RoleInheritance() [][]string {
	return [][]string{
		{RoleUser, RoleAnonymous},
		{RoleAdmin, RoleUser},
	}
}

// PolicyAuthorizer maps the caller to a role through the identity oracle and
// asks the enforcer.
type PolicyAuthorizer struct {
	enforcer PolicyEnforcer
	resolver identity.IdentityResolver
	logger   logger.Interface
}

func NewPolicyAuthorizer(enforcer PolicyEnforcer, resolver identity.IdentityResolver, logger logger.Interface) *PolicyAuthorizer {
	return &PolicyAuthorizer{
		enforcer: enforcer,
		resolver: resolver,
		logger:   logger,
	}
}

func (a *PolicyAuthorizer) Check(ctx context.Context, action Action, caller identity.Caller) Verdict {
	role := a.RoleOf(ctx, caller)

	allowed, err := a.enforcer.Enforce(role, Resource, string(action))
	if err != nil {
		a.logger.Errorw("policy evaluation failed", "action", action, "role", role, "error", err)
		return Deny(DenyReason(action))
	}
	if !allowed {
		a.logger.Debugw("action denied", "action", action, "role", role, "user_id", caller.UserID)
		return Deny(DenyReason(action))
	}
	return Allow()
}

// RoleOf derives the caller's role. Callers the oracle cannot resolve are
// treated as anonymous.
func (a *PolicyAuthorizer) RoleOf(ctx context.Context, caller identity.Caller) string {
	if !caller.IsAuthenticated() {
		return RoleAnonymous
	}

	ident, err := a.resolver.Resolve(ctx, caller.UserID)
	if err != nil {
		if !errors.Is(err, identity.ErrNotFound) {
			a.logger.Warnw("failed to resolve caller identity", "user_id", caller.UserID, "error", err)
		}
		return RoleAnonymous
	}
	if ident.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}
