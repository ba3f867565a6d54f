package internal

import (
	"fmt"
	"time"
	"wordmole/errors"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel            string        `env:"LOG_LEVEL,default=INFO" validate:"required"`
	NumberOfWorkers     int           `env:"NUMBER_OF_WORKERS,required=true" validate:"gte=0"`
	WorkerPriority      int           `env:"WORKER_PRIORITY,default=5" validate:"gte=1,lte=10"`
	MaxCallTime         time.Duration `env:"MAX_CALL_TIME,default=60s" validate:"gt=0"`
	SweepRate           time.Duration `env:"SWEEP_RATE,default=4s" validate:"gt=0"`
	RestartInterval     time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	HeartbeatInterval   time.Duration `env:"HEARTBEAT_INTERVAL,default=30s" validate:"gt=0"`
	JournalFilepath     string        `env:"JOURNAL_FILEPATH"`
	LimitJournalEntries *int          `env:"LIMIT_JOURNAL_ENTRIES" validate:"omitempty,gt=0"`
	CharReplacement     string        `env:"CHARACTER_REPLACEMENT,default=*" validate:"len=1"`
	Host                string        `env:"HOST,default=localhost"`
	Port                int           `env:"PORT,default=8080" validate:"gt=0,lte=65535"`
	DebugPort           int           `env:"DEBUG_PORT,default=0" validate:"gte=0,lte=65535"`
}

// LoadConfig reads the environment, preloaded with the given dotenv files when
// they exist, and validates the result.
func LoadConfig(dotenv ...string) (Config, error) {
	// A missing .env is fine, the environment alone may be enough.
	_ = godotenv.Load(dotenv...)

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfiguration, err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfiguration, err)
	}
	return config, nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"%w: CHARACTER_REPLACEMENT must be a single character, got %q",
			errors.ErrInvalidConfiguration, str,
		)
	}
	return r[0], nil
}
