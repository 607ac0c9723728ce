package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"railstatus-service/internal/domain/entity"
)

// Upstream names used as log fields and metric labels.
const (
	upstreamIRCTCPNR   = "irctc_pnr"
	upstreamSessionPNR = "session_pnr"
	upstreamRailYatri  = "railyatri_live"
	upstreamLegacyLive = "legacy_live"
	upstreamSearch     = "search"
)

// unavailable wraps a transport or decoding failure so callers can match entity.ErrUnavailable.
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", entity.ErrUnavailable, op, err)
}

func unavailablef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", entity.ErrUnavailable, fmt.Sprintf(format, args...))
}

// flexString accepts a JSON string, number or null. Upstreams are not
// consistent about quoting platform and berth numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string {
	return string(f)
}

// atoiOr parses s, returning fallback when it is not a whole number.
func atoiOr(s string, fallback int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return fallback
}
