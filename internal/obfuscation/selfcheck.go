package obfuscation

import (
	"context"
	"fmt"
	"math"

	"github.com/dmitrymomot/obfuscation/pkg/encid"
)

// selfCheckIDs cover sign, zero and both extremes of the id range.
var selfCheckIDs = []int64{0, 1, -1, 12345, math.MaxInt64, math.MinInt64}

// SelfCheck returns a readiness check that round-trips a few ids through
// codec and fails if any comes back different.
func SelfCheck(codec *encid.Codec) func(context.Context) error {
	return func(ctx context.Context) error {
		for _, id := range selfCheckIDs {
			if err := ctx.Err(); err != nil {
				return err
			}
			got, err := codec.Decode(codec.Encode(id))
			if err != nil {
				return fmt.Errorf("%w: id %d: %w", ErrSelfCheck, id, err)
			}
			if got != id {
				return fmt.Errorf("%w: id %d decoded as %d", ErrSelfCheck, id, got)
			}
		}
		return nil
	}
}
