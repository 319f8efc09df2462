package registry

import "schoolactivities/internal/domain"

// Seed returns the fixed catalog of activities the registry starts with.
// Each call returns fresh records, so tests may mutate the result freely.
func Seed() map[string]*domain.Activity {
	return map[string]*domain.Activity{
		"Chess Club": domain.NewActivity(
			"Learn strategies and compete in chess tournaments",
			"Fridays, 3:30 PM - 5:00 PM",
			12,
			[]string{"michael@mergington.edu", "daniel@mergington.edu"},
		),
		"Programming Class": domain.NewActivity(
			"Learn programming fundamentals and build software projects",
			"Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			20,
			[]string{"emma@mergington.edu", "sophia@mergington.edu"},
		),
		"Gym Class": domain.NewActivity(
			"Physical education and sports activities",
			"Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			30,
			[]string{"john@mergington.edu", "olivia@mergington.edu"},
		),
		"Basketball Team": domain.NewActivity(
			"Competitive basketball team and practice sessions",
			"Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			15,
			[]string{"alex@mergington.edu"},
		),
		"Tennis Club": domain.NewActivity(
			"Learn tennis techniques and participate in matches",
			"Mondays and Wednesdays, 4:00 PM - 5:00 PM",
			10,
			[]string{"jessica@mergington.edu"},
		),
		"Art Studio": domain.NewActivity(
			"Explore painting, drawing, and sculpture techniques",
			"Wednesdays, 3:30 PM - 5:00 PM",
			18,
			[]string{"maya@mergington.edu", "lucas@mergington.edu"},
		),
		"Music Ensemble": domain.NewActivity(
			"Join our orchestra and perform in school concerts",
			"Mondays and Thursdays, 3:30 PM - 4:30 PM",
			25,
			[]string{"noah@mergington.edu"},
		),
		"Debate Team": domain.NewActivity(
			"Develop public speaking and argumentation skills",
			"Tuesdays, 4:00 PM - 5:30 PM",
			16,
			[]string{"ava@mergington.edu", "ethan@mergington.edu"},
		),
		"Science Club": domain.NewActivity(
			"Conduct experiments and explore scientific concepts",
			"Fridays, 3:30 PM - 4:30 PM",
			22,
			[]string{"grace@mergington.edu"},
		),
	}
}
