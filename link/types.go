// Package link: the Link selector type and its documented constants.
package link

// Link selects one of the five supported binary-response link functions.
//
// The integer codes (Logit=1 … Cloglog=5) are part of the external
// contract: callers configure models with these exact values.
type Link int

const (
	// Logit maps eta through the logistic sigmoid 1/(1+exp(-eta)).
	Logit Link = iota + 1

	// Probit maps eta through the standard normal CDF Φ(eta).
	Probit

	// Cauchit maps eta through the standard Cauchy CDF atan(eta)/π + 1/2.
	Cauchit

	// Log maps eta through exp(eta); probabilities stay ≤ 1 only while
	// eta ≤ 0, which the caller enforces via the intercept upper bound.
	Log

	// Cloglog maps eta through the complementary log-log inverse,
	// 1 − exp(−exp(eta)).
	Cloglog
)

// String returns the conventional lowercase name of the link.
// Unknown selectors render as "unknown".
func (l Link) String() string {
	switch l {
	case Logit:
		return "logit"
	case Probit:
		return "probit"
	case Cauchit:
		return "cauchit"
	case Log:
		return "log"
	case Cloglog:
		return "cloglog"
	default:
		return "unknown"
	}
}

// Validate reports whether l is one of the five supported links.
// Returns ErrUnknownLink otherwise.
// Complexity: O(1).
func (l Link) Validate() error {
	if l < Logit || l > Cloglog {
		return ErrUnknownLink
	}

	return nil
}
