package tokens

import (
	"time"

	"github.com/dmitrymomot/tokensvc/pkg/clientip"
)

// Revocation backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds the token service settings.
type Config struct {
	Secret   string        `env:"JWT_SECRET,required,notEmpty"`
	Lifetime time.Duration `env:"TOKEN_LIFETIME" envDefault:"30s"`
	IDFormat string        `env:"TOKEN_ID_FORMAT" envDefault:"uuid"`

	RevocationBackend         string        `env:"REVOCATION_BACKEND" envDefault:"memory"`
	RevocationKeyPrefix       string        `env:"REVOCATION_KEY_PREFIX" envDefault:"invalid_token:"`
	RevocationCleanupInterval time.Duration `env:"REVOCATION_CLEANUP_INTERVAL" envDefault:"1m"`

	QRCodeSize     int    `env:"QR_CODE_SIZE" envDefault:"256"`
	QRCodeRecovery string `env:"QR_CODE_RECOVERY" envDefault:"medium"`

	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"100"`
	RateLimitInterval time.Duration `env:"RATE_LIMIT_INTERVAL" envDefault:"1m"`

	// TrustedIPHeaders lists the proxy headers allowed to name the client,
	// highest priority first. Leave empty unless a proxy sets them.
	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`
}

// ClientIPResolver returns the resolver keying rate limits. Without trusted
// headers only the peer address counts.
func (c Config) ClientIPResolver() *clientip.Resolver {
	headers := c.TrustedIPHeaders
	if headers == nil {
		headers = []string{}
	}
	return clientip.New(headers...)
}
