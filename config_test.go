package main

import "testing"

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil, fakeEnv(nil))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.dbDir != "" || cfg.mute || cfg.noFlip || cfg.scale != 1.0 {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadConfigEnvironment(t *testing.T) {
	env := fakeEnv(map[string]string{
		envDBDir:  "/tmp/chess2",
		envMute:   "true",
		envNoFlip: "1",
		envScale:  "1.5",
	})
	cfg, err := loadConfig(nil, env)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.dbDir != "/tmp/chess2" || !cfg.mute || !cfg.noFlip || cfg.scale != 1.5 {
		t.Errorf("config from env = %+v", cfg)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	env := fakeEnv(map[string]string{
		envDBDir: "/tmp/env",
		envMute:  "true",
		envScale: "2",
	})
	cfg, err := loadConfig([]string{"-db", "/tmp/flag", "-mute=false", "-scale", "0.75"}, env)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.dbDir != "/tmp/flag" || cfg.mute || cfg.scale != 0.75 {
		t.Errorf("flags did not win: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad bool in env", nil, map[string]string{envMute: "sometimes"}},
		{"bad scale in env", nil, map[string]string{envScale: "big"}},
		{"zero scale flag", []string{"-scale", "0"}, nil},
		{"unknown flag", []string{"-depth", "3"}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadConfig(tc.args, fakeEnv(tc.env)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
