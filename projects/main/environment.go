package main

import (
	"context"
	"fmt"

	"github.com/open-control-systems/clock-guard/components/config/cfgcore"
	"github.com/open-control-systems/clock-guard/components/core"
	"github.com/open-control-systems/clock-guard/components/http/htclient"
	"github.com/open-control-systems/clock-guard/components/storage/stcore"
	"github.com/open-control-systems/clock-guard/components/storage/stinfluxdb"
	"github.com/open-control-systems/clock-guard/components/timeguard/tgcore"
)

const baselineBucket = "baseline"

// environment holds the components shared by the commands.
type environment struct {
	closer  *core.FanoutCloser
	store   *stcore.ValueStore
	checker *tgcore.Checker
}

func newStore(closer *core.FanoutCloser, cfg *cfgcore.Config) (*stcore.ValueStore, error) {
	if cfg.DB.Path == "" {
		core.LogWrn.Println("clock-guard: db.path isn't set, the baseline isn't persisted")

		return stcore.NewValueStore(stcore.NewMemoryDB()), nil
	}

	db, err := stcore.NewBboltDB(cfg.DB.Path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open baseline database: path=%s: %w", cfg.DB.Path, err)
	}
	closer.Add("bbolt-db", db)

	bucket := stcore.NewBboltDBBucket(db, baselineBucket)
	closer.Add("bbolt-db-bucket", bucket)

	return stcore.NewValueStore(bucket), nil
}

func newEnvironment(ctx context.Context, cfg *cfgcore.Config) (*environment, error) {
	closer := &core.FanoutCloser{}

	store, err := newStore(closer, cfg)
	if err != nil {
		return nil, err
	}

	handler := &tgcore.FanoutOutcomeHandler{}
	handler.Add(&tgcore.LogOutcomeHandler{})

	influxParams := stinfluxdb.DBParams{
		URL:    cfg.InfluxDB.URL,
		Org:    cfg.InfluxDB.Org,
		Token:  cfg.InfluxDB.Token,
		Bucket: cfg.InfluxDB.Bucket,
	}
	if influxParams.Valid() {
		handler.Add(stinfluxdb.NewOutcomeHandler(ctx, closer, influxParams))
	} else if influxParams.URL != "" {
		core.LogWrn.Println("clock-guard: influxdb.url is set without org, token or bucket," +
			" results aren't exported")
	}

	fetcher := htclient.NewURLFetcher(
		htclient.NewDefaultClient(), cfg.Authority.URL, cfg.Authority.Timeout)

	checker, err := tgcore.NewChecker(
		newKernelClock(ctx),
		nil,
		store,
		fetcher,
		handler,
		cfg.CheckerParams(),
	)
	if err != nil {
		_ = closer.Close()

		return nil, err
	}

	return &environment{
		closer:  closer,
		store:   store,
		checker: checker,
	}, nil
}

func (e *environment) Close() error {
	return e.closer.Close()
}
