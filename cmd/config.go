package cmd

// Config carries the environment-driven settings of the application.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// CancellationWindowMinutes is how long after creation a customer cancel
	// is considered in-window. Zero falls back to the default three minutes.
	CancellationWindowMinutes int

	// OrderCounterBase is the first order number handed out after a restart.
	// Zero falls back to the default base of 1000.
	OrderCounterBase int64
}
