// Package services contains the domain-facing operations the CLI and the
// gateway are built on: authentication and file access. Each service wraps
// an API client variant and returns typed results or lets *api.Error
// bubble to the caller.
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/e-lobo/herogram-go/internal/api"
	"github.com/e-lobo/herogram-go/internal/models"
)

// AuthService covers the unauthenticated operations. Neither method stores
// the issued token; persisting it via a session.Store is the caller's job.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Signup(ctx context.Context, name, email, password string) (*models.Session, error)
}

type authService struct {
	client *api.Client
}

// NewAuthService binds the service to the unauthenticated client variant.
func NewAuthService(client *api.Client) AuthService {
	return &authService{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name string `json:"name"`
	loginRequest
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var out models.Envelope[models.Session]
	req := loginRequest{Email: email, Password: password}
	if err := a.client.JSON(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &out.Data, nil
}

func (a *authService) Signup(ctx context.Context, name, email, password string) (*models.Session, error) {
	var out models.Envelope[models.Session]
	req := signupRequest{Name: name, loginRequest: loginRequest{Email: email, Password: password}}
	if err := a.client.JSON(ctx, http.MethodPost, "/auth/signup", req, &out); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return &out.Data, nil
}
