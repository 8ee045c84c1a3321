package bootstrap

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "givehub_test",
		SessionKey:    "test-session-key-for-testing-only",
		SessionName:   "givehub-session",
		BaseURL:       "http://localhost:3000",
	}
}

func TestValidateConfig_OK(t *testing.T) {
	if err := ValidateConfig(nil, validAppConfig(), zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig failed: %v", err)
	}
}

func TestValidateConfig_BadMongoURI(t *testing.T) {
	cfg := validAppConfig()
	cfg.MongoURI = "not-a-mongo-uri"
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for malformed MongoDB URI")
	}
}

func TestValidateConfig_EmptyDatabase(t *testing.T) {
	cfg := validAppConfig()
	cfg.MongoDatabase = ""
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for empty database name")
	}
}

func TestValidateConfig_PartialGoogleCredentials(t *testing.T) {
	cfg := validAppConfig()
	cfg.GoogleClientID = "client-id-without-secret"
	err := ValidateConfig(nil, cfg, zap.NewNop())
	if err == nil {
		t.Fatal("expected error when only one Google credential is set")
	}
	if !strings.Contains(err.Error(), "google_client") {
		t.Errorf("error = %v, want mention of google_client settings", err)
	}
}
