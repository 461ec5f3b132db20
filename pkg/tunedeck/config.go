package tunedeck

type Config struct {
	Extensions     []string
	FollowSymlinks bool
	Logger         Logger
}

type Option func(*Config)

// WithExtensions replaces the built-in audio extension allow-list.
func WithExtensions(exts []string) Option {
	return func(c *Config) {
		c.Extensions = exts
	}
}

// WithFollowSymlinks toggles descending into symlinked directories.
func WithFollowSymlinks(follow bool) Option {
	return func(c *Config) {
		c.FollowSymlinks = follow
	}
}

func WithLogger(log Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

func defaultConfig() *Config {
	return &Config{
		FollowSymlinks: true,
		Logger:         nil,
	}
}
