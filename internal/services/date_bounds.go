package services

import (
	"strings"
	"time"

	apierrors "api/internal/errors"
	"api/internal/reporting"
)

const dateLayout = "2006-01-02"

// ParseDateBounds turns the optional date_after/date_before query values
// into concrete timestamps covering whole local days. Either side may be
// empty; an inverted pair is rejected.
func ParseDateBounds(rawAfter string, rawBefore string, location *time.Location) (*time.Time, *time.Time, error) {
	afterRaw := strings.TrimSpace(rawAfter)
	beforeRaw := strings.TrimSpace(rawBefore)

	var from *time.Time
	if afterRaw != "" {
		parsed, err := time.ParseInLocation(dateLayout, afterRaw, location)
		if err != nil {
			return nil, nil, apierrors.NewAPIError(400, apierrors.ErrInvalidDate)
		}
		start := reporting.StartOfDay(parsed)
		from = &start
	}

	var to *time.Time
	if beforeRaw != "" {
		parsed, err := time.ParseInLocation(dateLayout, beforeRaw, location)
		if err != nil {
			return nil, nil, apierrors.NewAPIError(400, apierrors.ErrInvalidDate)
		}
		end := reporting.EndOfDay(parsed)
		to = &end
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, apierrors.NewAPIError(400, apierrors.ErrInvalidDate)
	}

	return from, to, nil
}
