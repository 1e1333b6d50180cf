package api

import (
	"context"
	"net/url"

	"github.com/Green-Future-Society/incident-console/internal/core/domain"
	"github.com/Green-Future-Society/incident-console/internal/core/ports"
)

// authAPI is the façade over the authentication and registration resources.
// All its endpoints sit on the public allow-list, so calls go out without a
// bearer header.
type authAPI struct {
	client *Client
}

// NewAuthAPI returns a ports.AuthAPI backed by the pipeline client.
func NewAuthAPI(client *Client) ports.AuthAPI {
	return &authAPI{client: client}
}

func (a *authAPI) Login(ctx context.Context, creds domain.LoginRequest) (*domain.LoginResponse, error) {
	if err := a.client.ValidateRequest(creds); err != nil {
		return nil, err
	}
	var out domain.LoginResponse
	if err := a.client.Post(ctx, "/token", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *authAPI) Register(ctx context.Context, data domain.RegistrationRequest) (*domain.RESTResponse, error) {
	if err := a.client.ValidateRequest(data); err != nil {
		return nil, err
	}
	var out domain.RESTResponse
	if err := a.client.Post(ctx, "/registration", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *authAPI) ConfirmEmail(ctx context.Context, token string) (*domain.RESTResponse, error) {
	return a.registrationGet(ctx, "/registration/confirm", url.Values{"token": {token}})
}

func (a *authAPI) ResetPassword(ctx context.Context, msisdn string) (*domain.RESTResponse, error) {
	return a.registrationGet(ctx, "/registration/reset", url.Values{"msisdn": {msisdn}})
}

func (a *authAPI) ResendOTP(ctx context.Context, msisdn string) (*domain.RESTResponse, error) {
	return a.registrationGet(ctx, "/registration/resend", url.Values{"msisdn": {msisdn}})
}

func (a *authAPI) SetNewPassword(ctx context.Context, token, password string) (*domain.RESTResponse, error) {
	return a.registrationGet(ctx, "/registration/forgot", url.Values{
		"token":    {token},
		"password": {password},
	})
}

func (a *authAPI) registrationGet(ctx context.Context, path string, query url.Values) (*domain.RESTResponse, error) {
	var out domain.RESTResponse
	if err := a.client.Get(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
