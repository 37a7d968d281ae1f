package service

import (
	"context"
	"time"

	"github.com/andresuchdata/vendex/internal/domain"
	"github.com/andresuchdata/vendex/internal/roster"
	"github.com/rs/zerolog/log"
)

// RosterService builds shift assignment plans. The primary provider is tried
// first; if it fails the fallback provider answers instead.
type RosterService struct {
	primary  roster.Provider
	fallback roster.Provider
	timeout  time.Duration
}

func NewRosterService(primary, fallback roster.Provider, timeout time.Duration) *RosterService {
	return &RosterService{primary: primary, fallback: fallback, timeout: timeout}
}

// Assign validates input and returns an assignment plan. Only invalid input or
// a failing fallback produce an error.
func (s *RosterService) Assign(ctx context.Context, input domain.RosterInput) (domain.RosterDecision, error) {
	if err := roster.Validate(input); err != nil {
		return domain.RosterDecision{}, err
	}

	pctx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		pctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	decision, err := s.primary.Generate(pctx, input)
	if err == nil {
		return decision, nil
	}
	if s.fallback == nil {
		return domain.RosterDecision{}, err
	}

	log.Warn().Err(err).Str("date", input.Date).Msg("roster: primary provider failed, using fallback")
	return s.fallback.Generate(ctx, input)
}
