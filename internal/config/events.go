package config

// EventsConfig gates the circulation event pipeline.  Publishing and
// consuming are switched independently so a deployment can emit events
// for an external consumer without running the bundled log writer, or
// run neither when no broker is available.  The broker URL itself is
// read by the queue package from RABBITMQ_URL / AMQP_URL.
type EventsConfig struct {
    Enabled         bool // publish an event after each successful checkout/checkin
    ConsumerEnabled bool // run the background consumer that appends to logs/circulation.log
}

// LoadEventsConfig reads the event pipeline switches from the
// environment.  Both default to off, so a bare deployment needs no
// broker.
func LoadEventsConfig() EventsConfig {
    return EventsConfig{
        Enabled:         envBool("EVENTS_ENABLED", false),
        ConsumerEnabled: envBool("EVENTS_CONSUMER_ENABLED", false),
    }
}
