package entities

import "time"

// User represents a bot user in the registry. Only identity and
// lifetime practice totals are persisted; session state never is.
type User struct {
	ID              int64 // Telegram user ID
	FirstName       string
	LastName        string
	Username        string
	LanguageCode    string
	TotalAttempts   int64 // lifetime answers submitted
	CorrectAttempts int64 // lifetime correct answers
	CreatedAt       time.Time
}

func NewUser(id int64, firstName, lastName, username, languageCode string) *User {
	return &User{
		ID:           id,
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		LanguageCode: languageCode,
		CreatedAt:    time.Now(),
	}
}
