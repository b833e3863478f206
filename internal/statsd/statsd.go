// Package statsd wraps the few statsd calls the ECS runtime makes so that the
// datadog dependency stays in one place.
package statsd

import (
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

var client ddstatsd.ClientInterface = &ddstatsd.NoOpClient{}

func Client() ddstatsd.ClientInterface {
	return client
}

// EmitJobStat records how long a parallel job stage took.
func EmitJobStat(start time.Time, stage string) {
	emitTiming("job", start, "stage:"+stage)
}

// EmitSystemStat records how long one scheduler system took.
func EmitSystemStat(start time.Time, system string) {
	emitTiming("system", start, "system:"+system)
}

func emitTiming(name string, start time.Time, tag string) {
	duration := time.Since(start)
	err := Client().Timing(name, duration, []string{tag}, 1)
	if err != nil {
		log.Logger.Warn().Msgf("failed to emit %s stat: %v", name, err)
	}
}

// Init replaces the no-op client with one that sends to address.
func Init(address string, tags []string) error {
	if address == "" {
		return eris.New("address must not be empty")
	}
	opts := []ddstatsd.Option{
		// The statsd namespace is the prefix of all metrics
		ddstatsd.WithNamespace("archstore"),
	}
	if len(tags) > 0 {
		opts = append(opts, ddstatsd.WithTags(tags))
	}

	newClient, err := ddstatsd.New(address, opts...)
	if err != nil {
		return eris.Wrap(err, "failed to create statsd client")
	}
	client = newClient
	return nil
}

// Reset closes the current client and restores the no-op client.
func Reset() error {
	old := client
	client = &ddstatsd.NoOpClient{}
	return old.Close()
}
