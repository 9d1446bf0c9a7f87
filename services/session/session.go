package session

import (
	"fmt"
	"strings"
	"time"

	"cooptaxi/models"
	"cooptaxi/utils"
)

// The dashboard has no real account system; anyone who signs in gets the demo
// driver identity.
const (
	demoDriverID   = "d1"
	demoDriverName = "Jean Tremblay"
	driverRole     = "chauffeur"
)

// Service issues dashboard sessions.
type Service interface {
	Login(email string) (models.Session, error)
}

// DefaultService signs short-lived JWTs for the demo driver.
type DefaultService struct {
	TokenTTL time.Duration
}

func (s *DefaultService) Login(email string) (models.Session, error) {
	ttl := s.TokenTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	token, err := utils.GenerateToken(demoDriverID, email, ttl)
	if err != nil {
		return models.Session{}, fmt.Errorf("sign session token: %w", err)
	}

	name := demoDriverName
	if strings.Contains(email, "demo") {
		name = "Demo Driver"
	}

	return models.Session{
		Token: token,
		User: models.SessionUser{
			ID:    demoDriverID,
			Email: email,
			Name:  name,
			Role:  driverRole,
		},
	}, nil
}
