package roster

import "example.com/activities/internal/domain"

// Seed returns the initial activity dataset loaded at process start.
func Seed() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Soccer",
			Description:     "Team sport focused on soccer skills and competition",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Basketball",
			Description:     "Basketball training and intramural games",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore painting, drawing, and visual arts",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"isabella@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Theater performances and acting workshops",
			Schedule:        "Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"lucas@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Mondays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"ava@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Explore experiments and scientific discoveries",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"noah@mergington.edu"},
		},
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}
}
