package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
	prefixGame     = "game/"
)

// Preferences stores user settings.
type Preferences struct {
	AutoFlip        bool      `json:"auto_flip"`
	SoundEnabled    bool      `json:"sound_enabled"`
	Volume          float64   `json:"volume"`
	ShowCoordinates bool      `json:"show_coordinates"`
	LastPlayed      time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		AutoFlip:        true,
		SoundEnabled:    true,
		Volume:          0.5,
		ShowCoordinates: true,
	}
}

// GameStats stores running totals over finished games.
type GameStats struct {
	GamesPlayed   int           `json:"games_played"`
	WhiteWins     int           `json:"white_wins"`
	BlackWins     int           `json:"black_wins"`
	Stalemates    int           `json:"stalemates"`
	TotalPlies    int           `json:"total_plies"`
	LongestGame   int           `json:"longest_game"`
	TotalPlayTime time.Duration `json:"total_play_time"`
}

// AveragePlies returns the mean game length in plies.
func (s *GameStats) AveragePlies() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(s.GamesPlayed)
}

// Reasons a game can end.
const (
	ReasonCheckmate = "checkmate"
	ReasonStalemate = "stalemate"
)

// GameRecord is one finished game.
type GameRecord struct {
	ID       string        `json:"id"`
	Winner   string        `json:"winner,omitempty"` // "White", "Black" or empty for a draw
	Reason   string        `json:"reason"`
	Plies    int           `json:"plies"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
}

// Options configures where the database lives.
type Options struct {
	Dir      string // ignored when InMemory is set
	InMemory bool
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(Options{Dir: dbDir})
}

// Open opens a database with the given options.
func Open(o Options) (*Storage, error) {
	opts := badger.DefaultOptions(o.Dir)
	if o.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true until MarkFirstLaunchComplete is called.
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})
	return firstLaunch, err
}

// MarkFirstLaunchComplete records that the welcome has been shown.
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()
	return s.db.Update(func(txn *badger.Txn) error {
		return putJSON(txn, []byte(keyPreferences), prefs)
	})
}

// LoadPreferences loads user preferences, returning defaults if none were saved.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, []byte(keyPreferences), prefs)
	})
	return prefs, err
}

// LoadStats loads the running totals, empty if no game was recorded yet.
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := &GameStats{}
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, []byte(keyStats), stats)
	})
	return stats, err
}

// RecordGame stores a finished game and folds it into the running totals
// in one transaction. An empty ID is replaced with a fresh UUID.
func (s *Storage) RecordGame(rec GameRecord) (GameRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Started.IsZero() {
		rec.Started = time.Now()
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		stats := &GameStats{}
		if err := getJSON(txn, []byte(keyStats), stats); err != nil {
			return err
		}

		stats.GamesPlayed++
		stats.TotalPlies += rec.Plies
		stats.TotalPlayTime += rec.Duration
		if rec.Plies > stats.LongestGame {
			stats.LongestGame = rec.Plies
		}
		switch {
		case rec.Reason == ReasonStalemate:
			stats.Stalemates++
		case rec.Winner == "White":
			stats.WhiteWins++
		case rec.Winner == "Black":
			stats.BlackWins++
		}

		if err := putJSON(txn, gameKey(rec), rec); err != nil {
			return err
		}
		return putJSON(txn, []byte(keyStats), stats)
	})
	if err != nil {
		return rec, fmt.Errorf("record game %s: %w", rec.ID, err)
	}
	return rec, nil
}

// RecentGames returns up to limit finished games, newest first.
func (s *Storage) RecentGames(limit int) ([]GameRecord, error) {
	var games []GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(prefixGame)
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(games) >= limit {
				break
			}
			var rec GameRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			games = append(games, rec)
		}
		return nil
	})
	return games, err
}

// gameKey orders records by start time; the ID keeps keys unique.
func gameKey(rec GameRecord) []byte {
	return []byte(fmt.Sprintf("%s%020d/%s", prefixGame, rec.Started.UnixNano(), rec.ID))
}

func putJSON(txn *badger.Txn, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// getJSON decodes the value at key into v, leaving v untouched if the key
// does not exist.
func getJSON(txn *badger.Txn, key []byte, v any) error {
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}
