package memo

import "go.uber.org/zap"

// DefaultNumShards is the shard count used when Config.NumShards is not positive.
const DefaultNumShards = 16

// Config tunes a memoized function. The zero value is valid.
type Config struct {
	NumShards int         // default: DefaultNumShards; 1 serializes all keys behind one lock
	Logger    *zap.Logger // default: zap.NewNop()
	Name      string      // added to every log line, helps telling memoized functions apart
}

// NewConfig builds a Config with the given shard count and logger, filling defaults.
func NewConfig(numShards int, logger *zap.Logger) Config {
	if numShards <= 0 {
		numShards = DefaultNumShards
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return Config{
		NumShards: numShards,
		Logger:    logger,
	}
}

// normalizeConfig accepts zero or one Config. Panics if more than one is passed.
func normalizeConfig(cfgs []Config) Config {
	switch len(cfgs) {
	case 0:
		return NewConfig(0, nil)
	case 1:
		cfg := NewConfig(cfgs[0].NumShards, cfgs[0].Logger)
		cfg.Name = cfgs[0].Name
		return cfg
	default:
		panic("normalizeConfig: only one or zero configs allowed")
	}
}
