package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// SplitTransactional selects whether order splitting writes all
	// sub-orders in one transaction or row by row.
	SplitTransactional bool

	// SettlementTransactional selects the same for settlement payouts.
	SettlementTransactional bool

	// TrackingStrictMode rejects tracking events whose status regresses.
	TrackingStrictMode bool

	// TrackingSyncSchedule is the six-field cron expression for the
	// tracking sync job.
	TrackingSyncSchedule string
}
