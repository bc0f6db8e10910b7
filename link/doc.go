// Package link defines the link-function family for Bernoulli generalized
// linear models: the Link selector and its inverse-link (mean) maps.
//
// 🚀 What is a link?
//
//	A monotone map from an unconstrained linear predictor eta to a
//	probability in (0,1). This package implements the inverse direction,
//	"linkinv", for five classic binary-response links:
//	  • Logit   — logistic sigmoid
//	  • Probit  — standard normal CDF
//	  • Cauchit — standard Cauchy CDF
//	  • Log     — exp(eta), valid for eta ≤ 0
//	  • Cloglog — complementary log-log inverse, 1 − exp(−exp(eta))
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hbern/link"
//
//	p, err := link.Logit.Inv(0.6) // 0.6456...
//	if err != nil { ... }         // only ErrUnknownLink is possible
//
// Selector codes follow the upstream convention: Logit=1 … Cloglog=5.
// Any other value is a configuration error (ErrUnknownLink), never a panic.
//
// Log-scale likelihood kernels built on top of these links live in
// package bern; this package stays on the probability scale.
package link
