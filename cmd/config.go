package cmd

// Config carries the environment-driven settings of the panel backend.
// StorageMode selects between the seeded in-memory backend ("memory",
// the default) and Postgres ("postgres"). The AMQP settings are optional;
// without them notifications stay local to the feed.
type Config struct {
	HTTPPort    string
	StorageMode string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AmqpURL      string
	AmqpExchange string
}
