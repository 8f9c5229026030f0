package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/KevinStop/inventory-management-frontend/models"
)

// Users is the client of the identity/session service.
type Users struct {
	c *Client
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Users) Register(ctx context.Context, input RegisterInput) error {
	return s.c.sendJSON(ctx, http.MethodPost, "/users/register", input, nil)
}

// Login exchanges credentials for the backend session cookie. It returns the
// authenticated user and the session token the portal re-issues to the
// browser.
func (s *Users) Login(ctx context.Context, email, password string) (models.User, string, error) {
	const op = "POST /users/login"

	payload := map[string]string{"email": email, "password": password}
	raw, err := json.Marshal(payload)
	if err != nil {
		return models.User{}, "", &TransportError{Op: op, Err: err}
	}
	req, err := s.c.newRequest(ctx, http.MethodPost, "/users/login", nil, bytes.NewReader(raw), "application/json")
	if err != nil {
		return models.User{}, "", &TransportError{Op: op, Err: err}
	}
	resp, err := s.c.http.Do(req)
	if err != nil {
		return models.User{}, "", &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return models.User{}, "", s.c.failure(op, resp)
	}

	token := ""
	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookie {
			token = cookie.Value
		}
	}
	if token == "" {
		return models.User{}, "", &TransportError{Op: op, Err: fmt.Errorf("no %s cookie in login response", SessionCookie)}
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return models.User{}, "", &TransportError{Op: op, Err: err}
	}
	if err := user.Validate(); err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Me fetches the authenticated user's details, including the role claim used
// for navigation.
func (s *Users) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := s.c.getJSON(ctx, "/users/me", nil, &user); err != nil {
		return models.User{}, err
	}
	if err := user.Validate(); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *Users) Logout(ctx context.Context) error {
	return s.c.sendJSON(ctx, http.MethodPost, "/users/logout", nil, nil)
}

func (s *Users) ExtendSession(ctx context.Context) error {
	return s.c.sendJSON(ctx, http.MethodPost, "/users/extend-session", nil, nil)
}

// RemainingTime reports how long the session has left. The backend answers
// in milliseconds.
func (s *Users) RemainingTime(ctx context.Context) (time.Duration, error) {
	var payload struct {
		RemainingTime int64 `json:"remainingTime"`
	}
	if err := s.c.getJSON(ctx, "/users/session-time", nil, &payload); err != nil {
		return 0, err
	}
	return time.Duration(payload.RemainingTime) * time.Millisecond, nil
}

func (s *Users) Authenticated(ctx context.Context) (bool, error) {
	var authenticated bool
	if err := s.c.getJSON(ctx, "/users/authenticated", nil, &authenticated); err != nil {
		return false, err
	}
	return authenticated, nil
}

func (s *Users) RequestPasswordReset(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	return s.c.sendJSON(ctx, http.MethodPost, "/users/reset-password", payload, nil)
}

// All lists every account with the user role. Admin only.
func (s *Users) All(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.c.getJSON(ctx, "/users/all", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type UpdateUserInput struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (s *Users) Update(ctx context.Context, userID int, input UpdateUserInput) (models.User, error) {
	var user models.User
	path := fmt.Sprintf("/users/%d", userID)
	if err := s.c.sendJSON(ctx, http.MethodPut, path, input, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
