package models

import "time"

// Profile is what the login screen captured. Display only.
type Profile struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	LoggedInAt time.Time `json:"loggedInAt"`
}

func (p Profile) LoggedIn() bool {
	return !p.LoggedInAt.IsZero()
}
