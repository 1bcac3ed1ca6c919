package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Team struct {
	ID              int32
	Name            string
	TournamentID    int32
	RegistrationFee decimal.Decimal
	ArbitrationFee  decimal.Decimal
	// DiscountAmount is an absolute amount. Percentage discounts are
	// resolved by the caller before they reach storage.
	DiscountAmount   decimal.Decimal
	MatchdayStatuses MatchdayStatuses
	Active           bool
	Created          time.Time

	// Tournament is populated when loading a statement.
	Tournament *Tournament
	// Payments is populated most-recent-first when loading a statement.
	Payments []Payment
}

// MatchdayStatuses maps a matchday number (1..10) to a free-form status
// label. Keys are normalized integers; the legacy store mixed text and
// numeric keys, so UnmarshalJSON accepts both forms.
type MatchdayStatuses map[int]string

func (m *MatchdayStatuses) UnmarshalJSON(data []byte) error {
	raw := make(map[string]string)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(MatchdayStatuses, len(raw))
	for k, v := range raw {
		md, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("matchday status key is not a number: %q", k)
		}
		out[md] = v
	}
	*m = out
	return nil
}
