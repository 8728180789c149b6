package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/raven-themes/raven/internal/domain"
)

// CreateUser registers a new account.
func (c *Client) CreateUser(ctx context.Context, name, pass string) error {
	_, err := c.exec(ctx, OpCreateUser, Request{
		Method:   http.MethodPost,
		Segments: []string{"themes", "user", "create"},
		Query:    url.Values{"name": {name}, "pass": {pass}},
	})
	return err
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, name, pass string) (domain.UserInfo, error) {
	var info domain.UserInfo
	err := c.fetchJSON(ctx, OpLogin, Request{
		Method:   http.MethodGet,
		Segments: []string{"themes", "user", "login"},
		Query:    url.Values{"name": {name}, "pass": {pass}},
	}, &info)
	if err != nil {
		return domain.UserInfo{}, err
	}
	if !info.Valid() {
		return domain.UserInfo{}, &DecodeError{Op: OpLogin, Err: errMissingFields}
	}
	return info, nil
}

// DeleteUser removes the account of user and every theme it owns.
func (c *Client) DeleteUser(ctx context.Context, user domain.UserInfo, pass string) error {
	_, err := c.exec(ctx, OpDeleteUser, Request{
		Method:   http.MethodPost,
		Segments: []string{"themes", "users", "delete", user.Name},
		Query:    url.Values{"token": {user.Token}, "pass": {pass}},
	})
	return err
}
