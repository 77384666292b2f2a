package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.JWTIssuer != "challenge-hub-auth" {
		t.Errorf("JWTIssuer = %q, want %q", cfg.JWTIssuer, "challenge-hub-auth")
	}
	if cfg.JWTAudience != "challenge-hub-api" {
		t.Errorf("JWTAudience = %q, want %q", cfg.JWTAudience, "challenge-hub-api")
	}
	if cfg.JWTAccessTTL != "15m" {
		t.Errorf("JWTAccessTTL = %q, want %q", cfg.JWTAccessTTL, "15m")
	}
	if cfg.JWTRefreshTTL != "168h" {
		t.Errorf("JWTRefreshTTL = %q, want %q", cfg.JWTRefreshTTL, "168h")
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", cfg.BcryptCost)
	}
	if cfg.NotificationsKafkaTopic != "chub-notifications" {
		t.Errorf("NotificationsKafkaTopic = %q, want default", cfg.NotificationsKafkaTopic)
	}
	if cfg.KafkaGroupID != "chub-notification-worker" {
		t.Errorf("KafkaGroupID = %q, want default", cfg.KafkaGroupID)
	}
}

func TestLoad_EnvVarOverride(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("JWT_ISSUER", "custom-issuer")
	os.Setenv("BCRYPT_COST", "14")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9090")
	}
	if cfg.JWTIssuer != "custom-issuer" {
		t.Errorf("JWTIssuer = %q, want %q", cfg.JWTIssuer, "custom-issuer")
	}
	if cfg.BcryptCost != 14 {
		t.Errorf("BcryptCost = %d, want 14", cfg.BcryptCost)
	}
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":8080")
	os.Setenv("BCRYPT_COST", "99")

	if _, err := Load(); err == nil {
		t.Fatal("Load should reject BCRYPT_COST above 31")
	}
}

func TestConfig_TTLs(t *testing.T) {
	cfg := &Config{JWTAccessTTL: "30m", JWTRefreshTTL: "72h"}
	if got := cfg.AccessTTL(); got != 30*time.Minute {
		t.Errorf("AccessTTL = %v, want 30m", got)
	}
	if got := cfg.RefreshTTL(); got != 72*time.Hour {
		t.Errorf("RefreshTTL = %v, want 72h", got)
	}

	bad := &Config{JWTAccessTTL: "not-a-duration", JWTRefreshTTL: "-1h"}
	if got := bad.AccessTTL(); got != 15*time.Minute {
		t.Errorf("invalid AccessTTL should fall back to 15m, got %v", got)
	}
	if got := bad.RefreshTTL(); got != 168*time.Hour {
		t.Errorf("invalid RefreshTTL should fall back to 168h, got %v", got)
	}
}

func TestConfig_KafkaBrokersList(t *testing.T) {
	cfg := &Config{KafkaBrokers: "localhost:9092, kafka-2:9092 ,"}
	got := cfg.KafkaBrokersList()
	if len(got) != 2 || got[0] != "localhost:9092" || got[1] != "kafka-2:9092" {
		t.Errorf("KafkaBrokersList = %v", got)
	}
	empty := &Config{}
	if empty.KafkaBrokersList() != nil {
		t.Error("empty brokers should return nil")
	}
}

func TestConfig_CORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "https://app.example.com,https://admin.example.com"}
	got := cfg.CORSOrigins()
	if len(got) != 2 || got[0] != "https://app.example.com" {
		t.Errorf("CORSOrigins = %v", got)
	}
}
