package toolkit

type Option func(*Options)

type Options struct {
	Clock Clock
	Zones *ZoneRegistry
}

func WithClock(clock Clock) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

func WithZones(zones *ZoneRegistry) Option {
	return func(o *Options) {
		o.Zones = zones
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Clock: systemClock{},
		Zones: DefaultZones(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
