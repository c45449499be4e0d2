package config

const (
	DefaultCodeLength   = 4
	DefaultPairingMin   = 10
	DefaultMaxAttempts  = 5
	DefaultBundleDays   = 30
	DefaultReaperMin    = 5
	DefaultDeviceSec    = 600
	DefaultConnFullSec  = 300
	DefaultConnStatSec  = 300
	DefaultBundleSec    = 3600
	DefaultBundleStSec  = 600
)

// Default returns the built-in configuration that yaml and env values
// are layered on top of.
func Default() Config {
	return Config{
		ServiceName: "pairlink",
		Server: ServerConfig{
			Mode:   "dev",
			Port:   8080,
			Scheme: "http",
			Domain: "localhost",
		},
		Pairing: PairingConfig{
			CodeLength:  DefaultCodeLength,
			WindowMin:   DefaultPairingMin,
			MaxAttempts: DefaultMaxAttempts,
			BundleDays:  DefaultBundleDays,
		},
		Cache: CacheConfig{
			DeviceSec:       DefaultDeviceSec,
			ConnFullSec:     DefaultConnFullSec,
			ConnStatusSec:   DefaultConnStatSec,
			BundleFullSec:   DefaultBundleSec,
			BundleStatusSec: DefaultBundleStSec,
		},
		Reaper: ReaperConfig{
			IntervalMin: DefaultReaperMin,
		},
	}
}
