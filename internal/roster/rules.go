package roster

import (
	"context"
	"strings"

	"github.com/andresuchdata/vendex/internal/domain"
)

const (
	// RuleConfidence is reported when rules are the configured provider.
	RuleConfidence = 0.6
	// FallbackConfidence is reported when rules stand in for a failed model call.
	FallbackConfidence = 0.5
)

// RuleBasedProvider assigns each shift to the first listed staff member who has
// the required skill, is available on that weekday for the whole shift, is not
// already working an overlapping shift, and stays within the weekly hour cap.
type RuleBasedProvider struct {
	confidence float64
}

func NewRuleBasedProvider(confidence float64) *RuleBasedProvider {
	return &RuleBasedProvider{confidence: confidence}
}

func (p *RuleBasedProvider) Generate(ctx context.Context, input domain.RosterInput) (domain.RosterDecision, error) {
	day, err := parseDay(input.Date)
	if err != nil {
		return domain.RosterDecision{}, err
	}

	hours := make(map[int64]float64, len(input.Staff))
	booked := make(map[int64][]window, len(input.Staff))
	for _, st := range input.Staff {
		hours[st.StaffID] = float64(st.HoursWorkedThisWeek)
	}

	assignments := make([]domain.ShiftAssignment, 0, len(input.Shifts))
	for _, shift := range input.Shifts {
		if err := ctx.Err(); err != nil {
			return domain.RosterDecision{}, err
		}

		sw, err := parseWindow(shift.StartTime, shift.EndTime)
		if err != nil {
			return domain.RosterDecision{}, err
		}

		for _, st := range input.Staff {
			if !hasSkill(st, shift.RequiredSkill) {
				continue
			}
			if hours[st.StaffID]+sw.hours() > maxWeeklyHours {
				continue
			}
			if overlapsAny(booked[st.StaffID], sw) {
				continue
			}
			ok, err := available(st, day.String(), sw)
			if err != nil {
				return domain.RosterDecision{}, err
			}
			if !ok {
				continue
			}

			hours[st.StaffID] += sw.hours()
			booked[st.StaffID] = append(booked[st.StaffID], sw)
			assignments = append(assignments, domain.ShiftAssignment{
				ShiftID:    shift.ShiftID,
				StaffID:    st.StaffID,
				Confidence: p.confidence,
			})
			break
		}
	}

	return domain.RosterDecision{
		Assignments:        assignments,
		CoveragePercentage: Coverage(len(assignments), len(input.Shifts)),
		OvertimeRisk:       false,
	}, nil
}

func hasSkill(st domain.Staff, skill string) bool {
	for _, s := range st.Skills {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(skill)) {
			return true
		}
	}
	return false
}

// available reports whether st can work sw on day. Staff with no availability
// listed are treated as always available.
func available(st domain.Staff, day string, sw window) (bool, error) {
	if len(st.Availability) == 0 {
		return true, nil
	}
	for _, slot := range st.Availability {
		if !strings.EqualFold(strings.TrimSpace(slot.Day), day) {
			continue
		}
		aw, err := parseWindow(slot.StartTime, slot.EndTime)
		if err != nil {
			return false, err
		}
		if aw.contains(sw) {
			return true, nil
		}
	}
	return false, nil
}

func overlapsAny(booked []window, sw window) bool {
	for _, b := range booked {
		if b.overlaps(sw) {
			return true
		}
	}
	return false
}
