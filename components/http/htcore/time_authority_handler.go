package htcore

import (
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/open-control-systems/clock-guard/components/system/syscore"
	"github.com/open-control-systems/clock-guard/components/timeguard/tgcore"
)

// TimeAuthorityResponse is a reply of the time server.
type TimeAuthorityResponse struct {
	Date     string `json:"date"`
	Timezone string `json:"timezone"`
}

// TimeAuthorityHandler serves the server time in the requested time zone.
//
// Request:
//   - GET /?timezone=Asia/Kathmandu
//
// Response:
//   - {"date":"2024-05-01 03:45:00 PM","timezone":"Asia/Kathmandu"}
type TimeAuthorityHandler struct {
	clock clockwork.Clock
}

// NewTimeAuthorityHandler creates an HTTP handler serving the server time.
//
// Parameters:
//   - clock to read the server time, real clock is used if nil.
func NewTimeAuthorityHandler(clock clockwork.Clock) *TimeAuthorityHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &TimeAuthorityHandler{
		clock: clock,
	}
}

// ServeHTTP implements an HTTP endpoint logic.
func (h *TimeAuthorityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "error: unsupported method", http.StatusMethodNotAllowed)

		return
	}

	timezone := r.URL.Query().Get(tgcore.TimezoneQueryParam)
	if timezone == "" {
		timezone = "UTC"
	}

	loc, err := syscore.LoadLocation(timezone)
	if err != nil {
		http.Error(w, fmt.Sprintf("error: unknown timezone: %q", timezone),
			http.StatusBadRequest)

		return
	}

	WriteJSON(w, TimeAuthorityResponse{
		Date:     tgcore.FormatServerDate(h.clock.Now(), loc),
		Timezone: timezone,
	})
}
