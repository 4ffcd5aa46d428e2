package config

import (
	"github.com/DIMO-Network/shared/pkg/db"
)

// Product lookup backends selectable via PRODUCT_BACKEND. An empty value
// disables the lookup and the service falls back to echo replies.
const (
	ProductBackendPostgres = "postgres"
	ProductBackendSupabase = "supabase"
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// VerifyToken is the shared secret compared against hub.verify_token during
	// the webhook verification handshake.
	VerifyToken string `env:"VERIFY_TOKEN"`
	// AccessToken and PhoneNumberID are the Graph API credentials used for
	// outbound sends. Sends are skipped when either is empty.
	AccessToken     string `env:"ACCESS_TOKEN"`
	PhoneNumberID   string `env:"PHONE_NUMBER_ID"`
	GraphAPIBaseURL string `env:"GRAPH_API_BASE_URL"`
	GraphAPIVersion string `env:"GRAPH_API_VERSION"`

	ProductBackend    string `env:"PRODUCT_BACKEND"`
	ProductMatchLimit int    `env:"PRODUCT_MATCH_LIMIT"`
	SupabaseURL       string `env:"SUPABASE_URL"`
	SupabaseKey       string `env:"SUPABASE_KEY"`

	DB db.Settings `envPrefix:"DB_"`
}
