package storage

import (
	"os"
	"testing"
	"time"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(Options{InMemory: true})
	if err != nil {
		t.Fatalf("Failed to open in-memory storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPreferences(t *testing.T) {
	s := openTestStorage(t)

	t.Run("Defaults", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if !prefs.AutoFlip || !prefs.SoundEnabled {
			t.Errorf("Expected auto-flip and sound on by default, got %+v", prefs)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		prefs := DefaultPreferences()
		prefs.AutoFlip = false
		prefs.Volume = 0.2
		if err := s.SavePreferences(prefs); err != nil {
			t.Fatalf("SavePreferences: %v", err)
		}
		got, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences: %v", err)
		}
		if got.AutoFlip || got.Volume != 0.2 || !got.SoundEnabled {
			t.Errorf("LoadPreferences = %+v", got)
		}
		if got.LastPlayed.IsZero() {
			t.Error("LastPlayed was not stamped")
		}
	})
}

func TestFirstLaunch(t *testing.T) {
	s := openTestStorage(t)

	first, err := s.IsFirstLaunch()
	if err != nil || !first {
		t.Fatalf("IsFirstLaunch = %v, %v; want true", first, err)
	}
	if err := s.MarkFirstLaunchComplete(); err != nil {
		t.Fatalf("MarkFirstLaunchComplete: %v", err)
	}
	if first, _ := s.IsFirstLaunch(); first {
		t.Error("IsFirstLaunch should be false after marking")
	}
}

func TestRecordGame(t *testing.T) {
	s := openTestStorage(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	games := []GameRecord{
		{Winner: "White", Reason: ReasonCheckmate, Plies: 40, Started: base, Duration: 10 * time.Minute},
		{Reason: ReasonStalemate, Plies: 80, Started: base.Add(time.Hour), Duration: 20 * time.Minute},
		{Winner: "Black", Reason: ReasonCheckmate, Plies: 30, Started: base.Add(2 * time.Hour), Duration: 5 * time.Minute},
	}
	for i, g := range games {
		rec, err := s.RecordGame(g)
		if err != nil {
			t.Fatalf("RecordGame(%d): %v", i, err)
		}
		if rec.ID == "" {
			t.Errorf("RecordGame(%d) did not assign an ID", i)
		}
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 3 || stats.WhiteWins != 1 || stats.BlackWins != 1 || stats.Stalemates != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LongestGame != 80 || stats.TotalPlayTime != 35*time.Minute {
		t.Errorf("stats = %+v", stats)
	}
	if avg := stats.AveragePlies(); avg != 50 {
		t.Errorf("AveragePlies = %.2f, want 50", avg)
	}

	recent, err := s.RecentGames(2)
	if err != nil {
		t.Fatalf("RecentGames: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentGames(2) returned %d games", len(recent))
	}
	if recent[0].Winner != "Black" || recent[1].Reason != ReasonStalemate {
		t.Errorf("RecentGames order = %+v", recent)
	}

	all, err := s.RecentGames(0)
	if err != nil || len(all) != 3 {
		t.Errorf("RecentGames(0) = %d games, %v", len(all), err)
	}
}

func TestKeepsExplicitID(t *testing.T) {
	s := openTestStorage(t)
	rec, err := s.RecordGame(GameRecord{ID: "fixed", Reason: ReasonStalemate})
	if err != nil {
		t.Fatalf("RecordGame: %v", err)
	}
	if rec.ID != "fixed" {
		t.Errorf("ID = %q, want %q", rec.ID, "fixed")
	}
}

func TestDataPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDir, dir)

	dbDir, err := GetDatabaseDir()
	if err != nil {
		t.Fatalf("GetDatabaseDir failed: %v", err)
	}
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		t.Errorf("Database directory was not created: %s", dbDir)
	}

	s, err := Open(Options{Dir: dbDir})
	if err != nil {
		t.Fatalf("Open(%s): %v", dbDir, err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	t.Logf("Database directory: %s", dbDir)
}
