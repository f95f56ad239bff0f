package auth

import (
	"context"

	"github.com/Malcan-Technologies/shoraka-sub003/dbtypes"
	"github.com/Malcan-Technologies/shoraka-sub003/oidc"
	"github.com/Malcan-Technologies/shoraka-sub003/storage"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// resolveUser maps a provider subject to a local user record, creating one
// on first login. A user who re-registered through the provider keeps their
// existing record: the new subject is bound to the row matching their email.
// New users start with no roles; roles are earned through onboarding.
func (a *Auth) resolveUser(ctx context.Context, info *oidc.UserInfo) (user *dbtypes.User, created bool, err error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Auth.resolveUser()")
	defer span.End()

	user, err = a.users.UserByProviderSubject(ctx, info.Subject)
	switch {
	case err == nil:
		a.syncProfile(ctx, user, info)

		return user, false, nil
	case !errors.Is(err, storage.ErrNotFound):
		return nil, false, errors.Wrap(err, "storage.UserStore.UserByProviderSubject()")
	}

	user, err = a.users.UserByEmail(ctx, info.Email)
	switch {
	case err == nil:
		if err := a.users.BindProviderSubject(ctx, user.ID, info.Subject); err != nil {
			return nil, false, errors.Wrap(err, "storage.UserStore.BindProviderSubject()")
		}
		user.ProviderSubject = info.Subject
		a.syncProfile(ctx, user, info)

		return user, false, nil
	case !errors.Is(err, storage.ErrNotFound):
		return nil, false, errors.Wrap(err, "storage.UserStore.UserByEmail()")
	}

	user, err = a.users.CreateUser(ctx, &dbtypes.User{
		ProviderSubject: info.Subject,
		Email:           info.Email,
		EmailVerified:   info.EmailVerified,
		GivenName:       info.GivenName,
		FamilyName:      info.FamilyName,
		Roles:           []string{},
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "storage.UserStore.CreateUser()")
	}

	return user, true, nil
}

// syncProfile reconciles drifted profile fields from the provider. Failure
// is logged, not fatal: the login proceeds on the stored profile.
func (a *Auth) syncProfile(ctx context.Context, user *dbtypes.User, info *oidc.UserInfo) {
	if user.Email == info.Email && user.EmailVerified == info.EmailVerified &&
		user.GivenName == info.GivenName && user.FamilyName == info.FamilyName {
		return
	}

	if err := a.users.SyncProfile(ctx, user.ID, info.Email, info.EmailVerified, info.GivenName, info.FamilyName); err != nil {
		logger.Ctx(ctx).Errorf("failed to sync profile for user %s: %v", user.ID, err)

		return
	}

	user.Email = info.Email
	user.EmailVerified = info.EmailVerified
	user.GivenName = info.GivenName
	user.FamilyName = info.FamilyName
}
