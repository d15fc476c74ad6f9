// Package academy implements the application layer over the academic records
// registry.
//
// Service is the only API the front ends (the TUI in internal/app and the
// script runner in internal/script) call. It wraps a domain Registry and adds
// the infrastructure concerns the domain package stays free of:
//   - a trace span per operation, named "academy.<Operation>"
//   - structured logging through internal/log
//   - an Activity event on a pubsub broker after every successful mutation
//
// The Registry is not safe for concurrent use and neither is Service; both
// are driven by one control loop. Activity subscribers are notified only
// after a mutation has completed on both sides of every link.
//
// # Import Aliasing
//
// This package has the same name as the domain academy package. When
// importing both, alias the application one:
//
//	import (
//	    "github.com/campusctl/campus/internal/domain/academy"
//	    appacademy "github.com/campusctl/campus/internal/application/academy"
//	)
package academy
