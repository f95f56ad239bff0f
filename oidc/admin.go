package oidc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Malcan-Technologies/shoraka-sub003/roles"
	"github.com/go-playground/errors/v5"
)

// GlobalSignOut invalidates every provider-side session for the subject.
// Callers treat it as best-effort and must time-box it via ctx.
func (o *OIDC) GlobalSignOut(ctx context.Context, subject string) error {
	endpoint := fmt.Sprintf("%s/users/%s/sign-out", o.adminURL, url.PathEscape(subject))

	return o.adminPost(ctx, http.MethodPost, endpoint, nil)
}

// SetRoleAttribute mirrors the locally-held role set into the provider's
// custom role attribute. Best-effort; local persistence stays authoritative.
func (o *OIDC) SetRoleAttribute(ctx context.Context, subject string, rs []roles.Role) error {
	endpoint := fmt.Sprintf("%s/users/%s/attributes", o.adminURL, url.PathEscape(subject))
	body := map[string]string{
		"custom:roles": strings.Join(roles.Strings(rs), ","),
	}

	return o.adminPost(ctx, http.MethodPut, endpoint, body)
}

func (o *OIDC) adminPost(ctx context.Context, method, endpoint string, body any) error {
	if o.adminURL == "" {
		return errors.New("admin endpoint not configured")
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return errors.Wrap(err, "json.Encoder.Encode()")
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, &buf)
	if err != nil {
		return errors.Wrap(err, "http.NewRequestWithContext()")
	}
	req.Header.Set("Authorization", "Bearer "+o.adminCredential)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := o.adminClient.Do(req)
	if err != nil {
		return errors.Wrap(ErrProviderUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errors.Newf("provider admin call %s returned %d", endpoint, resp.StatusCode)
	}

	return nil
}
