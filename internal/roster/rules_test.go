package roster

import (
	"context"
	"testing"

	"github.com/andresuchdata/vendex/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday.
const monday = "2025-06-02"

func TestRuleBasedProvider(t *testing.T) {
	tests := []struct {
		name         string
		input        domain.RosterInput
		wantPairs    [][2]int64
		wantCoverage float64
	}{
		{
			name: "first skilled staff wins",
			input: domain.RosterInput{
				Date: monday,
				Shifts: []domain.Shift{
					{ShiftID: 1, StartTime: "09:00", EndTime: "13:00", RequiredSkill: "CASHIER"},
				},
				Staff: []domain.Staff{
					{StaffID: 100, Skills: []string{"STOCKING"}},
					{StaffID: 101, Skills: []string{"cashier"}},
					{StaffID: 102, Skills: []string{"CASHIER"}},
				},
			},
			wantPairs:    [][2]int64{{1, 101}},
			wantCoverage: 100,
		},
		{
			name: "availability on another weekday is ignored",
			input: domain.RosterInput{
				Date: monday,
				Shifts: []domain.Shift{
					{ShiftID: 1, StartTime: "09:00", EndTime: "13:00", RequiredSkill: "CASHIER"},
				},
				Staff: []domain.Staff{
					{StaffID: 101, Skills: []string{"CASHIER"}, Availability: []domain.AvailabilitySlot{
						{Day: "TUESDAY", StartTime: "08:00", EndTime: "18:00"},
					}},
					{StaffID: 102, Skills: []string{"CASHIER"}, Availability: []domain.AvailabilitySlot{
						{Day: "MONDAY", StartTime: "08:00:00", EndTime: "18:00:00"},
					}},
				},
			},
			wantPairs:    [][2]int64{{1, 102}},
			wantCoverage: 100,
		},
		{
			name: "partial availability window does not cover shift",
			input: domain.RosterInput{
				Date: monday,
				Shifts: []domain.Shift{
					{ShiftID: 1, StartTime: "09:00", EndTime: "17:00", RequiredSkill: "CASHIER"},
				},
				Staff: []domain.Staff{
					{StaffID: 101, Skills: []string{"CASHIER"}, Availability: []domain.AvailabilitySlot{
						{Day: "MONDAY", StartTime: "12:00", EndTime: "18:00"},
					}},
				},
			},
			wantPairs:    nil,
			wantCoverage: 0,
		},
		{
			name: "weekly hour cap is respected",
			input: domain.RosterInput{
				Date: monday,
				Shifts: []domain.Shift{
					{ShiftID: 1, StartTime: "09:00", EndTime: "17:00", RequiredSkill: "CASHIER"},
				},
				Staff: []domain.Staff{
					{StaffID: 101, Skills: []string{"CASHIER"}, HoursWorkedThisWeek: 35},
					{StaffID: 102, Skills: []string{"CASHIER"}, HoursWorkedThisWeek: 32},
				},
			},
			wantPairs:    [][2]int64{{1, 102}},
			wantCoverage: 100,
		},
		{
			name: "overlapping shifts go to different staff",
			input: domain.RosterInput{
				Date: monday,
				Shifts: []domain.Shift{
					{ShiftID: 1, StartTime: "09:00", EndTime: "13:00", RequiredSkill: "CASHIER"},
					{ShiftID: 2, StartTime: "12:00", EndTime: "16:00", RequiredSkill: "CASHIER"},
					{ShiftID: 3, StartTime: "13:00", EndTime: "17:00", RequiredSkill: "CASHIER"},
				},
				Staff: []domain.Staff{
					{StaffID: 101, Skills: []string{"CASHIER"}},
					{StaffID: 102, Skills: []string{"CASHIER"}},
				},
			},
			wantPairs:    [][2]int64{{1, 101}, {2, 102}, {3, 101}},
			wantCoverage: 100,
		},
		{
			name: "unfilled shift lowers coverage",
			input: domain.RosterInput{
				Date: monday,
				Shifts: []domain.Shift{
					{ShiftID: 1, StartTime: "09:00", EndTime: "13:00", RequiredSkill: "CASHIER"},
					{ShiftID: 2, StartTime: "09:00", EndTime: "13:00", RequiredSkill: "PHARMACIST"},
				},
				Staff: []domain.Staff{
					{StaffID: 101, Skills: []string{"CASHIER"}},
				},
			},
			wantPairs:    [][2]int64{{1, 101}},
			wantCoverage: 50,
		},
		{
			name:         "no shifts is full coverage",
			input:        domain.RosterInput{Date: monday},
			wantPairs:    nil,
			wantCoverage: 100,
		},
	}

	p := NewRuleBasedProvider(RuleConfidence)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Generate(context.Background(), tt.input)
			require.NoError(t, err)

			var pairs [][2]int64
			for _, a := range got.Assignments {
				pairs = append(pairs, [2]int64{a.ShiftID, a.StaffID})
				assert.Equal(t, RuleConfidence, a.Confidence)
			}
			assert.Equal(t, tt.wantPairs, pairs)
			assert.InDelta(t, tt.wantCoverage, got.CoveragePercentage, 1e-9)
			assert.False(t, got.OvertimeRisk)
		})
	}
}

func TestRuleBasedProviderOvernightShift(t *testing.T) {
	p := NewRuleBasedProvider(FallbackConfidence)
	got, err := p.Generate(context.Background(), domain.RosterInput{
		Date: monday,
		Shifts: []domain.Shift{
			{ShiftID: 9, StartTime: "22:00", EndTime: "06:00", RequiredSkill: "SECURITY"},
		},
		Staff: []domain.Staff{
			{StaffID: 1, Skills: []string{"SECURITY"}, HoursWorkedThisWeek: 33},
			{StaffID: 2, Skills: []string{"SECURITY"}, HoursWorkedThisWeek: 32, Availability: []domain.AvailabilitySlot{
				{Day: "Monday", StartTime: "20:00", EndTime: "07:00"},
			}},
		},
	})
	require.NoError(t, err)
	require.Len(t, got.Assignments, 1)
	assert.Equal(t, int64(2), got.Assignments[0].StaffID)
	assert.Equal(t, FallbackConfidence, got.Assignments[0].Confidence)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(domain.RosterInput{Date: monday}))
	assert.ErrorIs(t, Validate(domain.RosterInput{Date: "02/06/2025"}), ErrInvalidRoster)
	assert.ErrorIs(t, Validate(domain.RosterInput{
		Date:   monday,
		Shifts: []domain.Shift{{ShiftID: 1, StartTime: "9am", EndTime: "13:00"}},
	}), ErrInvalidRoster)
	assert.ErrorIs(t, Validate(domain.RosterInput{
		Date: monday,
		Staff: []domain.Staff{{StaffID: 1, Availability: []domain.AvailabilitySlot{
			{Day: "MONDAY", StartTime: "08:00", EndTime: "25:00"},
		}}},
	}), ErrInvalidRoster)
}

func TestCoverage(t *testing.T) {
	assert.Equal(t, 100.0, Coverage(0, 0))
	assert.InDelta(t, 66.666, Coverage(2, 3), 1e-2)
}
