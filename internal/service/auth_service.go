package service

import (
	"context"
	"fmt"
)

type AuthService struct {
	backend AuthBackend
}

func NewAuthService(backend AuthBackend) *AuthService {
	return &AuthService{backend: backend}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	token, err := s.backend.Login(ctx, username, password)
	if err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	return token, nil
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	return s.backend.Register(ctx, username, email, password)
}

// Profile fetches the user and resolves their role client-side.
func (s *AuthService) Profile(ctx context.Context, token string) (ProfileView, error) {
	profile, err := s.backend.Me(ctx, token)
	if err != nil {
		return ProfileView{}, err
	}
	role := profile.Role()
	return ProfileView{
		Profile:         profile,
		Role:            role,
		CanManageOrders: role.CanManageOrders(),
	}, nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
