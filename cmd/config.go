package cmd

type Config struct {
	HTTPPort    string
	StoreDriver string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	AuthMode    string
	AuthBaseURL string
}

// Store drivers selectable via STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Auth modes selectable via AUTH_MODE.
const (
	AuthModeHTTP   = "http"
	AuthModeStatic = "static"
)
