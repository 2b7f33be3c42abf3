package flash

import "github.com/dmitrymomot/flash/pkg/cookie"

// Config holds the environment-driven settings of the middleware.
type Config struct {
	CookieName     string `env:"FLASH_COOKIE_NAME" envDefault:"_flash"`
	CookieDomain   string `env:"FLASH_COOKIE_DOMAIN"`
	CookieSecure   bool   `env:"FLASH_COOKIE_SECURE" envDefault:"false"`
	CookieHTTPOnly bool   `env:"FLASH_COOKIE_HTTP_ONLY" envDefault:"false"`
}

// DefaultConfig returns the configuration matching Default.
func DefaultConfig() Config {
	return Config{CookieName: DefaultCookieName}
}

func (c Config) cookieOptions() []cookie.Option {
	return []cookie.Option{
		cookie.WithDomain(c.CookieDomain),
		cookie.WithSecure(c.CookieSecure),
		cookie.WithHTTPOnly(c.CookieHTTPOnly),
	}
}
