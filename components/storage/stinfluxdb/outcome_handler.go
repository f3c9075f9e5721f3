package stinfluxdb

import (
	"context"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/open-control-systems/clock-guard/components/core"
	"github.com/open-control-systems/clock-guard/components/timeguard/tgcore"
)

// OutcomeHandler stores time verification results in influxDB.
//
// Each result is written as a "verification" point tagged with the outcome name.
//
// References:
//   - https://docs.influxdata.com/influxdb/cloud/get-started
//   - https://docs.influxdata.com/influxdb/cloud/api-guide/client-libraries/go/
type OutcomeHandler struct {
	ctx         context.Context
	dbClient    influxdb2.Client
	writeClient api.WriteAPIBlocking
}

// NewOutcomeHandler initializes influxDB handler.
//
// Parameters:
//   - ctx - parent context.
//   - closer - to register the handler for the underlying resource deallocation.
//   - params - various influxDB configuration parameters.
func NewOutcomeHandler(
	ctx context.Context,
	closer *core.FanoutCloser,
	params DBParams,
) *OutcomeHandler {
	dbClient := influxdb2.NewClient(params.URL, params.Token)
	writeClient := dbClient.WriteAPIBlocking(params.Org, params.Bucket)

	handler := &OutcomeHandler{
		ctx:         ctx,
		dbClient:    dbClient,
		writeClient: writeClient,
	}

	closer.Add("influxdb-outcome-handler", handler)

	return handler
}

// HandleOutcome writes the verification result to influxDB.
//
// Remarks:
//   - Write failures are logged, the verification result isn't affected.
func (h *OutcomeHandler) HandleOutcome(res tgcore.VerificationResult) {
	point := influxdb2.NewPoint("verification",
		map[string]string{"outcome": res.Outcome.String()},
		map[string]interface{}{
			"success":       res.Success,
			"drift_seconds": res.Drift.Seconds(),
			"timestamp":     res.Time.Unix(),
			"message":       res.Message,
		},
		res.Time)

	if err := h.writeClient.WritePoint(h.ctx, point); err != nil {
		core.LogErr.Printf("influxdb-outcome-handler: failed to write to DB: outcome=%s err=%v\n",
			res.Outcome, err)
	}
}

// Close stops writing data to the DB.
func (h *OutcomeHandler) Close() error {
	h.dbClient.Close()

	return nil
}
