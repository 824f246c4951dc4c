package server

import (
	"errors"

	"github.com/katalvlaran/lvbasket/apriori"
	"github.com/katalvlaran/lvbasket/eclat"
	"github.com/katalvlaran/lvbasket/rules"
)

// thresholdErrors are the core sentinels caused by request parameters.
var thresholdErrors = []error{
	apriori.ErrSupportOutOfRange,
	apriori.ErrOptionViolation,
	eclat.ErrSupportOutOfRange,
	eclat.ErrOptionViolation,
	rules.ErrConfidenceOutOfRange,
}

func isThresholdError(err error) bool {
	for _, target := range thresholdErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
