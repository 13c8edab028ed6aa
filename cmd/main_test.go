package main

import (
	"flag"
	"os"
	"strings"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func setRequiredEnv() {
	os.Setenv("DB_NAME", "appdb")
	os.Setenv("DB_HOST", "mongo.local")
	os.Setenv("DB_USER", "app")
	os.Setenv("DB_PASS", "secret")
	os.Setenv("DB_COLLECTION_NAME", "users")
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseConfig_MissingRequired(t *testing.T) {
	resetEnv()

	_, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected error for missing required environment variables")
	}

	for _, key := range requiredEnv {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error should name missing key %s, got: %v", key, err)
		}
	}
}

func TestParseConfig_PartiallyMissing(t *testing.T) {
	resetEnv()
	setRequiredEnv()
	os.Unsetenv("DB_PASS")

	_, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected error for missing DB_PASS")
	}
	if !strings.Contains(err.Error(), "DB_PASS") {
		t.Errorf("error should name DB_PASS, got: %v", err)
	}
	if strings.Contains(err.Error(), "DB_NAME") {
		t.Errorf("error should not name present key DB_NAME, got: %v", err)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()
	setRequiredEnv()

	appHost, appPort, logLevel, dbHost, dbPort, dbName, dbUser, dbPass, collName, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appHost != "localhost" {
		t.Errorf("expected default app host localhost, got %s", appHost)
	}
	if appPort != "8080" {
		t.Errorf("expected default app port 8080, got %s", appPort)
	}
	if logLevel != "info" {
		t.Errorf("expected default log level info, got %s", logLevel)
	}
	if dbPort != "27017" {
		t.Errorf("expected default db port 27017, got %s", dbPort)
	}
	if dbHost != "mongo.local" || dbName != "appdb" || dbUser != "app" || dbPass != "secret" || collName != "users" {
		t.Errorf("unexpected db config: %s %s %s %s %s", dbHost, dbName, dbUser, dbPass, collName)
	}
}

func TestParseConfig_Overrides(t *testing.T) {
	resetEnv()
	setRequiredEnv()
	os.Setenv("APP_HOST", "0.0.0.0")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("DB_PORT", "37017")

	appHost, appPort, logLevel, _, dbPort, _, _, _, _, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appHost != "0.0.0.0" || appPort != "9090" || logLevel != "debug" || dbPort != "37017" {
		t.Errorf("overrides not applied: %s %s %s %s", appHost, appPort, logLevel, dbPort)
	}
}
