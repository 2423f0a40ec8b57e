package domain

// Activity represents one extracurricular offering in the school roster.
// Name is the unique key; Participants holds student emails in signup order.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}
