package flappy

// HighScoreStore persists the single high-score integer.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// memoryStore keeps the high score for the lifetime of the process. It is
// used when no store is configured.
type memoryStore struct {
	score int
}

func (m *memoryStore) LoadHighScore() (int, error) {
	return m.score, nil
}

func (m *memoryStore) SaveHighScore(score int) error {
	m.score = score
	return nil
}
