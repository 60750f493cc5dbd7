package services

import (
	"context"
	"fmt"
	"time"

	"song_rounds_system/configs"
	"song_rounds_system/internal/db/models"
	"song_rounds_system/internal/db/repositories"

	"golang.org/x/oauth2"
)

type authService struct {
	accountRepository repositories.AccountRepository
	oauth             oauth2.Config
}

type AuthService interface {
	GetAccountWithValidToken(ctx context.Context, userID int) (*models.Account, error)
}

func NewAuthService(accountRepository repositories.AccountRepository, config configs.Spotify) AuthService {
	return &authService{
		accountRepository: accountRepository,
		oauth: oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL: config.TokenURL,
			},
		},
	}
}

// GetAccountWithValidToken returns the user's Spotify account with a usable
// access token, refreshing and persisting it when near expiry. Returns nil
// without error when the user has no linked account.
func (s *authService) GetAccountWithValidToken(ctx context.Context, userID int) (*models.Account, error) {
	account, err := s.accountRepository.GetOneByUser(userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}

	if account.TokenValid(time.Now()) {
		return account, nil
	}

	token, err := s.oauth.TokenSource(ctx, &oauth2.Token{
		AccessToken:  account.AccessToken,
		RefreshToken: account.RefreshToken,
		Expiry:       account.TokenExpiry,
	}).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	account.AccessToken = token.AccessToken
	account.TokenExpiry = token.Expiry
	if token.RefreshToken != "" {
		account.RefreshToken = token.RefreshToken
	}

	return s.accountRepository.Update(account)
}
