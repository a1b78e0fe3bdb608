package storage

// DefaultHoursPerPersonPerWeek is assumed for bays that never had their
// weekly hours configured.
const DefaultHoursPerPersonPerWeek = 40.0

type Bay struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	BayNumber             int     `json:"bay_number"`
	Team                  string  `json:"team"`
	IsActive              bool    `json:"is_active"`
	StaffCount            int     `json:"staff_count"`
	HoursPerPersonPerWeek float64 `json:"hours_per_person_per_week"`
}

// WeeklyCapacity is the bay's total scheduled labor hours per week.
func (b Bay) WeeklyCapacity() float64 {
	hours := b.HoursPerPersonPerWeek
	if hours <= 0 {
		hours = DefaultHoursPerPersonPerWeek
	}
	return hours * float64(b.StaffCount)
}

type UpdateBay struct {
	Name                  *string  `json:"name"`
	Team                  *string  `json:"team"`
	IsActive              *bool    `json:"is_active"`
	StaffCount            *int     `json:"staff_count"`
	HoursPerPersonPerWeek *float64 `json:"hours_per_person_per_week"`
}
