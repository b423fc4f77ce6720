package usecase

import (
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/services/match"
)

// MatchUC implements the match use case interface
type MatchUC struct {
	cfg       *models.Config
	matchRepo match.MatchRepo
	matchGW   match.MatchGW
}

// NewMatchUC creates a new match use case
func NewMatchUC(
	cfg *models.Config,
	matchRepo match.MatchRepo,
	matchGW match.MatchGW,
) *MatchUC {
	return &MatchUC{
		cfg:       cfg,
		matchRepo: matchRepo,
		matchGW:   matchGW,
	}
}
