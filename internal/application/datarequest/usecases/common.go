package usecases

import (
	"context"
	stderrors "errors"

	"datarequests/internal/application/datarequest/authz"
	"datarequests/internal/domain/identity"
	"datarequests/internal/shared/errors"
	"datarequests/internal/shared/logger"
)

const msgRequestNotFound = "Data request not found"

// authorize turns a denied verdict into a forbidden error carrying its reason.
func authorize(ctx context.Context, a authz.Authorizer, action authz.Action, caller identity.Caller, log logger.Interface) error {
	v := a.Check(ctx, action, caller)
	if v.Allowed {
		return nil
	}
	log.Warnw("action forbidden", "action", action, "user_id", caller.UserID, "reason", v.Reason)
	return errors.NewForbiddenError(v.Reason)
}

// authorDirectory resolves author ids for one call, remembering each answer.
// Unresolvable authors map to nil.
type authorDirectory struct {
	resolver identity.IdentityResolver
	logger   logger.Interface
	seen     map[string]*identity.Identity
}

func newAuthorDirectory(resolver identity.IdentityResolver, log logger.Interface) *authorDirectory {
	return &authorDirectory{
		resolver: resolver,
		logger:   log,
		seen:     make(map[string]*identity.Identity),
	}
}

func (d *authorDirectory) lookup(ctx context.Context, userID string) *identity.Identity {
	if userID == "" {
		return nil
	}
	if ident, ok := d.seen[userID]; ok {
		return ident
	}

	ident, err := d.resolver.Resolve(ctx, userID)
	if err != nil {
		if !stderrors.Is(err, identity.ErrNotFound) {
			d.logger.Warnw("failed to resolve author", "user_id", userID, "error", err)
		}
		ident = nil
	}
	d.seen[userID] = ident
	return ident
}
