package config

import "restkit/internal/deprecation"

type Config interface {
	Charset() string
	SafeChars() string
	EncodeKeys() bool

	ProxyPrefix() string

	LogLevel() string
	LogFormat() string

	NoColor() bool

	// Retired lists the retired settings that were used to build this
	// configuration.
	Retired() []deprecation.Field
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Charset() string     { return c.charset }
func (c *config) SafeChars() string   { return c.safeChars }
func (c *config) EncodeKeys() bool    { return c.encodeKeys }
func (c *config) ProxyPrefix() string { return c.proxyPrefix }
func (c *config) LogLevel() string    { return c.logLevel }
func (c *config) LogFormat() string   { return c.logFormat }
func (c *config) NoColor() bool       { return c.noColor }

func (c *config) Retired() []deprecation.Field { return c.retired }
