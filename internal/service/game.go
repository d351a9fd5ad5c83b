package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/amsilf/hsk-bot/internal/domain/entities"
)

var ErrNoActiveSession = errors.New("no active session or current word")

// VocabularyRepo loads the word list for an HSK level.
type VocabularyRepo interface {
	Load(level int) ([]entities.Word, error)
}

// MatchFunc grades an answer against a word for a practice mode.
type MatchFunc func(word entities.Word, answer string, mode entities.PracticeMode) bool

// GameService owns the per-user practice sessions. Sessions are
// in-memory only and die with the process.
//
// Concurrency contract: the registry mutex guards only the user->session
// map; every session carries its own mutex for state mutation. Operations
// for one user are serialized, operations for distinct users never block
// one another.
type GameService struct {
	vocab VocabularyRepo
	match MatchFunc

	mu       sync.Mutex
	sessions map[int64]*session
}

type session struct {
	mu   sync.Mutex
	game *entities.GameSession
}

// NewGameService creates a game service grading answers with the given
// match function.
func NewGameService(vocab VocabularyRepo, match MatchFunc) *GameService {
	return &GameService{
		vocab:    vocab,
		match:    match,
		sessions: make(map[int64]*session),
	}
}

// StartSession begins a practice session for the user, replacing any
// existing one. Counters start at zero and the word list is snapshotted
// once for the whole session. Vocabulary load failures propagate to the
// caller unchanged.
func (s *GameService) StartSession(userID int64, hskLevel int, mode entities.PracticeMode) (entities.GameSession, error) {
	if !mode.Valid() {
		return entities.GameSession{}, fmt.Errorf("%w: %q", entities.ErrUnknownPracticeMode, mode)
	}

	// Possibly a cold file read; keep it outside all locks.
	vocabulary, err := s.vocab.Load(hskLevel)
	if err != nil {
		return entities.GameSession{}, err
	}

	game := entities.NewGameSession(userID, hskLevel, mode, vocabulary)

	s.mu.Lock()
	s.sessions[userID] = &session{game: game}
	s.mu.Unlock()

	return *game, nil
}

// NextWord draws a uniformly random word, with replacement, from the
// session's snapshot and makes it the current word. It returns nil when
// the user has no session: polling without one is not an error.
func (s *GameService) NextWord(userID int64) *entities.Word {
	sess := s.lookup(userID)
	if sess == nil {
		return nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if len(sess.game.Vocabulary) == 0 {
		return nil
	}

	word := sess.game.Vocabulary[rand.Intn(len(sess.game.Vocabulary))]
	sess.game.State.CurrentWord = &word
	return &word
}

// CheckAnswer grades the answer against the current word and updates
// the session counters. Submitting without a session or before a word
// was drawn is a protocol violation and fails with ErrNoActiveSession.
func (s *GameService) CheckAnswer(userID int64, answer string) (bool, error) {
	sess := s.lookup(userID)
	if sess == nil {
		return false, ErrNoActiveSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	state := &sess.game.State
	if state.CurrentWord == nil {
		return false, ErrNoActiveSession
	}

	correct := s.match(*state.CurrentWord, answer, state.PracticeMode)

	state.TotalAttempts++
	if correct {
		state.CorrectAttempts++
		state.Score++
	}

	return correct, nil
}

// Stats returns a snapshot of the user's session state, or nil when no
// session exists.
func (s *GameService) Stats(userID int64) *entities.UserState {
	sess := s.lookup(userID)
	if sess == nil {
		return nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	state := sess.game.State
	return &state
}

// EndSession removes the user's session and returns its final state,
// or nil when there was nothing to end. The user may start a fresh
// session immediately.
func (s *GameService) EndSession(userID int64) *entities.UserState {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	delete(s.sessions, userID)
	s.mu.Unlock()

	if !ok {
		return nil
	}

	// Wait out any in-flight operation on this session.
	sess.mu.Lock()
	state := sess.game.State
	sess.mu.Unlock()

	return &state
}

func (s *GameService) lookup(userID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[userID]
}
