package runner

import (
	"strconv"

	"github.com/charmbracelet/log"
)

// HighScoreStore is the persistence collaborator for high scores.
// Get reports ok=false when the key is absent. SetIfHigher writes value only
// when it beats the stored one and reports whether it did; the compare and
// the write are atomic, so sessions sharing a store never lower it.
type HighScoreStore interface {
	Get(key string) (value string, ok bool, err error)
	SetIfHigher(key string, value int) (bool, error)
}

// HighScoreKey returns the store key holding a variant's high score.
func HighScoreKey(variant string) string {
	return "runner:" + variant + ":highscore"
}

// ScoreKeeper counts passed obstacles and bridges the high score to the
// store. The store is read once on construction and written only when a
// finished run beats the known value. One keeper lives as long as its game.
type ScoreKeeper struct {
	store  HighScoreStore // nil = session-only
	key    string
	score  int
	high   int
	logger *log.Logger
}

// NewScoreKeeper reads the current high score. A nil store or a read error
// leaves the high score session-only; an unparsable value reads as 0.
func NewScoreKeeper(store HighScoreStore, key string, logger *log.Logger) *ScoreKeeper {
	if logger == nil {
		logger = discardLogger()
	}
	s := &ScoreKeeper{store: store, key: key, logger: logger}
	if store == nil {
		return s
	}

	high, err := s.load()
	if err != nil {
		logger.Warn("high score store unavailable, keeping scores for this session only", "key", key, "err", err)
		s.store = nil
		return s
	}
	s.high = high
	return s
}

// load reads the stored high score. A missing or malformed value reads as 0.
func (s *ScoreKeeper) load() (int, error) {
	raw, ok, err := s.store.Get(s.key)
	if err != nil || !ok {
		return 0, err
	}
	high, err := strconv.Atoi(raw)
	if err != nil || high < 0 {
		s.logger.Warn("ignoring malformed stored high score", "key", s.key, "value", raw)
		return 0, nil
	}
	return high, nil
}

// Score returns the current run's score.
func (s *ScoreKeeper) Score() int {
	return s.score
}

// High returns the best score known this session.
func (s *ScoreKeeper) High() int {
	return s.high
}

// Persistent reports whether high scores reach the store.
func (s *ScoreKeeper) Persistent() bool {
	return s.store != nil
}

// Passed adds n obstacles that fully left the screen.
func (s *ScoreKeeper) Passed(n int) {
	if n > 0 {
		s.score += n
	}
}

// Finish closes a run. If the score strictly beats the high score it is
// offered to the store once. Returns true on a new high. When another
// session already stored a higher value, that value becomes the high score
// and the run is not a new high.
func (s *ScoreKeeper) Finish() bool {
	if s.score <= s.high {
		return false
	}
	if s.store == nil {
		s.high = s.score
		return true
	}

	written, err := s.store.SetIfHigher(s.key, s.score)
	if err != nil {
		s.logger.Warn("could not persist high score, keeping it for this session only", "key", s.key, "err", err)
		s.store = nil
		s.high = s.score
		return true
	}
	if written {
		s.high = s.score
		return true
	}

	stored, err := s.load()
	if err != nil {
		s.logger.Warn("could not reload high score", "key", s.key, "err", err)
		s.high = s.score
		return false
	}
	s.high = max(stored, s.score)
	return s.score > stored
}

// NewRun zeroes the score for the next run.
func (s *ScoreKeeper) NewRun() {
	s.score = 0
}
