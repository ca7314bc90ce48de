package dashboard

import "errors"

var ErrStatsUnavailable = errors.New("vendor stats unavailable")
