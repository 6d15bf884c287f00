package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTimeout is applied to every outbound API call when AAP_TIMEOUT is
// not set.
const DefaultTimeout = 30 * time.Second

// Connection holds the resolved settings for reaching the platform. It is
// built once at process start and passed into the client; nothing reads the
// environment after that.
type Connection struct {
	Host     string
	Username string
	Password string
	Token    string
	Timeout  time.Duration
	// VerifySSL, when false, accepts self-signed certificates.
	VerifySSL bool
}

// Load reads connection settings from the environment, after loading a
// local .env file if one exists.
func Load() (*Connection, error) {
	_ = godotenv.Load()

	conn := &Connection{
		Host:      os.Getenv("AAP_HOST"),
		Username:  os.Getenv("AAP_USERNAME"),
		Password:  os.Getenv("AAP_PASSWORD"),
		Token:     os.Getenv("AAP_TOKEN"),
		Timeout:   getEnvDuration("AAP_TIMEOUT", DefaultTimeout),
		VerifySSL: getEnvBool("AAP_VERIFY_SSL", true),
	}
	return conn, nil
}

// Validate checks that the connection is usable.
func (c *Connection) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("AAP_HOST is required")
	}
	if !strings.HasPrefix(c.Host, "http://") && !strings.HasPrefix(c.Host, "https://") {
		return fmt.Errorf("AAP_HOST must be a full URL with scheme (http:// or https://), got: %s", c.Host)
	}
	if c.Token == "" && (c.Username == "" || c.Password == "") {
		return fmt.Errorf("either AAP_TOKEN or both AAP_USERNAME and AAP_PASSWORD are required")
	}
	return nil
}

// getEnvDuration reads a duration in seconds, falling back on bad or
// missing values.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	secs, err := strconv.Atoi(val)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

func getEnvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}
