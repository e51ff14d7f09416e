// File: bot/store.go
package bot

import "sync"

// GameStore owns the per-chat game registry. It is created at process start,
// passed into the bot, and discarded on shutdown; nothing else holds game
// state. One active game per chat.
type GameStore struct {
	mu    sync.Mutex
	games map[int64]*Game
}

// NewGameStore creates an empty store.
func NewGameStore() *GameStore {
	return &GameStore{games: make(map[int64]*Game)}
}

// Start begins a new game for the chat, replacing any unfinished one.
func (s *GameStore) Start(chatID int64) *Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := NewGame()
	s.games[chatID] = g
	return g
}

// Get returns the chat's active game, if any.
func (s *GameStore) Get(chatID int64) (*Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[chatID]
	return g, ok
}

// End removes the chat's game.
func (s *GameStore) End(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, chatID)
}
