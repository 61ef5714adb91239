package usecases

import (
	"context"

	"datarequests/internal/application/datarequest/authz"
	"datarequests/internal/domain/datarequest"
	"datarequests/internal/domain/identity"
	"datarequests/internal/shared/errors"
	"datarequests/internal/shared/logger"
)

type mockDataRequestRepository struct {
	SaveFunc         func(ctx context.Context, req *datarequest.DataRequest) error
	UpdateStatusFunc func(ctx context.Context, req *datarequest.DataRequest) error
	GetByIDFunc      func(ctx context.Context, id string) (*datarequest.DataRequest, error)
	ExistsFunc       func(ctx context.Context, id string) (bool, error)
	ListFunc         func(ctx context.Context, filter datarequest.Filter) ([]*datarequest.DataRequest, error)
	DeleteFunc       func(ctx context.Context, id string) error
}

func (m *mockDataRequestRepository) Save(ctx context.Context, req *datarequest.DataRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	return nil
}

func (m *mockDataRequestRepository) UpdateStatus(ctx context.Context, req *datarequest.DataRequest) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, req)
	}
	return nil
}

func (m *mockDataRequestRepository) GetByID(ctx context.Context, id string) (*datarequest.DataRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("Data request not found")
}

func (m *mockDataRequestRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockDataRequestRepository) List(ctx context.Context, filter datarequest.Filter) ([]*datarequest.DataRequest, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockDataRequestRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockCommentRepository struct {
	SaveFunc              func(ctx context.Context, c *datarequest.Comment) error
	ListByRequestIDFunc   func(ctx context.Context, requestID string) ([]*datarequest.Comment, error)
	ListByRequestIDsFunc  func(ctx context.Context, requestIDs []string) (map[string][]*datarequest.Comment, error)
	CountByRequestIDFunc  func(ctx context.Context, requestID string) (int64, error)
	CountByRequestIDsFunc func(ctx context.Context, requestIDs []string) (map[string]int64, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *datarequest.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByRequestID(ctx context.Context, requestID string) ([]*datarequest.Comment, error) {
	if m.ListByRequestIDFunc != nil {
		return m.ListByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByRequestIDs(ctx context.Context, requestIDs []string) (map[string][]*datarequest.Comment, error) {
	if m.ListByRequestIDsFunc != nil {
		return m.ListByRequestIDsFunc(ctx, requestIDs)
	}
	return map[string][]*datarequest.Comment{}, nil
}

func (m *mockCommentRepository) CountByRequestID(ctx context.Context, requestID string) (int64, error) {
	if m.CountByRequestIDFunc != nil {
		return m.CountByRequestIDFunc(ctx, requestID)
	}
	return 0, nil
}

func (m *mockCommentRepository) CountByRequestIDs(ctx context.Context, requestIDs []string) (map[string]int64, error) {
	if m.CountByRequestIDsFunc != nil {
		return m.CountByRequestIDsFunc(ctx, requestIDs)
	}
	return map[string]int64{}, nil
}

// passthroughTx runs the unit of work without a database.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

// roleAuthorizer allows anything to admins, the logged-in actions to any
// authenticated caller, and the read actions to everyone.
type roleAuthorizer struct {
	admins map[string]bool
}

func (a *roleAuthorizer) Check(_ context.Context, action authz.Action, caller identity.Caller) authz.Verdict {
	switch action {
	case authz.ActionShow, authz.ActionList, authz.ActionCommentList:
		return authz.Allow()
	case authz.ActionStatusUpdate:
		if a.admins[caller.UserID] {
			return authz.Allow()
		}
	default:
		if caller.IsAuthenticated() {
			return authz.Allow()
		}
	}
	return authz.Deny(authz.DenyReason(action))
}

func newRoleAuthorizer(admins ...string) *roleAuthorizer {
	m := make(map[string]bool, len(admins))
	for _, a := range admins {
		m[a] = true
	}
	return &roleAuthorizer{admins: m}
}

func staticResolver(users ...identity.Identity) identity.IdentityResolver {
	byID := make(map[string]identity.Identity, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return identity.ResolverFunc(func(_ context.Context, id string) (*identity.Identity, error) {
		if u, ok := byID[id]; ok {
			return &u, nil
		}
		return nil, identity.ErrNotFound
	})
}

type mockLogger struct {
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
