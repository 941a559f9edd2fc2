package quote

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultSchedule polls quotes every hour.
const DefaultSchedule = "@every 1h"

// Poller fetches the prices of a set of symbols on a cron schedule.
type Poller struct {
	Source   Source
	Symbols  []string
	Schedule string // cron spec, DefaultSchedule if empty
	// OnPrices receives the prices fetched on every tick, even when some
	// symbols failed.
	OnPrices func(map[string]decimal.Decimal)
	Log      zerolog.Logger
}

// Run polls once immediately, then on every tick of the schedule, until ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	schedule := p.Schedule
	if schedule == "" {
		schedule = DefaultSchedule
	}
	log := p.Log.With().Str("component", "poller").Logger()

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(schedule, func() { p.poll(ctx, log) }); err != nil {
		return fmt.Errorf("invalid poll schedule %q: %w", schedule, err)
	}

	p.poll(ctx, log)
	c.Start()
	log.Info().Str("schedule", schedule).Int("symbols", len(p.Symbols)).Msg("Poller started")

	<-ctx.Done()
	<-c.Stop().Done()
	log.Info().Msg("Poller stopped")
	return nil
}

func (p *Poller) poll(ctx context.Context, log zerolog.Logger) {
	log.Debug().Msg("Fetching quotes")
	prices, err := FetchAll(ctx, p.Source, p.Symbols)
	if err != nil {
		log.Warn().Err(err).Int("fetched", len(prices)).Msg("Some quotes failed")
	}
	if ctx.Err() != nil {
		return
	}
	if p.OnPrices != nil {
		p.OnPrices(prices)
	}
}
