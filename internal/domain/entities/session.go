package entities

import "time"

// UserState tracks one user's progress within an active practice session.
type UserState struct {
	UserID          int64        // Telegram user ID
	HSKLevel        int          // selected HSK level
	PracticeMode    PracticeMode // selected practice mode
	CurrentWord     *Word        // word awaiting an answer, nil before the first draw
	Score           int          // correct answers this session
	TotalAttempts   int          // answers submitted this session
	CorrectAttempts int          // correct answers this session
}

// Accuracy returns the session accuracy as a percentage (0-100).
// It is 0 when no answers have been submitted yet.
func (s *UserState) Accuracy() float64 {
	if s.TotalAttempts == 0 {
		return 0.0
	}
	return float64(s.CorrectAttempts) / float64(s.TotalAttempts) * 100
}

// GameSession is one user's active practice run. The vocabulary slice
// is a snapshot taken at session start and is never mutated.
type GameSession struct {
	State      UserState
	Vocabulary []Word
	StartedAt  time.Time
}

// NewGameSession creates a session with zeroed counters.
func NewGameSession(userID int64, hskLevel int, mode PracticeMode, vocabulary []Word) *GameSession {
	return &GameSession{
		State: UserState{
			UserID:       userID,
			HSKLevel:     hskLevel,
			PracticeMode: mode,
		},
		Vocabulary: vocabulary,
		StartedAt:  time.Now(),
	}
}
