package aco

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by Solve matches one of them with
// errors.Is; the specific sentinels below wrap them.
var (
	// ErrInvalidConfiguration reports a malformed distance matrix or Options.
	// Detected once, before any worker starts.
	ErrInvalidConfiguration = errors.New("aco: invalid configuration")

	// ErrDegenerateDistribution reports that no unvisited candidate has a
	// positive, finite selection weight, so no probability distribution exists.
	ErrDegenerateDistribution = errors.New("aco: degenerate selection distribution")

	// ErrCommunicationFailure reports a send/receive that could not complete:
	// closed or cancelled transport, unexpected sender, malformed payload.
	// Fatal to the run.
	ErrCommunicationFailure = errors.New("aco: communication failure")
)

// Specific configuration violations.
var (
	ErrNilDistances     = fmt.Errorf("%w: nil distance matrix", ErrInvalidConfiguration)
	ErrNonSquare        = fmt.Errorf("%w: distance matrix is not square", ErrInvalidConfiguration)
	ErrTooFewNodes      = fmt.Errorf("%w: at least 2 nodes required", ErrInvalidConfiguration)
	ErrDiagonal         = fmt.Errorf("%w: diagonal distance must be +Inf", ErrInvalidConfiguration)
	ErrNegativeDistance = fmt.Errorf("%w: negative distance", ErrInvalidConfiguration)
	ErrZeroDistance     = fmt.Errorf("%w: zero distance between distinct nodes", ErrInvalidConfiguration)
	ErrNaNDistance      = fmt.Errorf("%w: NaN or -Inf distance", ErrInvalidConfiguration)
	ErrBestAntsRange    = fmt.Errorf("%w: best ants must be in [1, ants]", ErrInvalidConfiguration)
	ErrDecayRange       = fmt.Errorf("%w: decay rate must be in (0, 1]", ErrInvalidConfiguration)
	ErrStartOutOfRange  = fmt.Errorf("%w: start node out of range", ErrInvalidConfiguration)
	ErrShapeMismatch    = fmt.Errorf("%w: pheromone and distance shapes differ", ErrInvalidConfiguration)
)

// Specific communication failures.
var (
	ErrTransportClosed  = fmt.Errorf("%w: transport closed", ErrCommunicationFailure)
	ErrUnexpectedSender = fmt.Errorf("%w: unexpected sender", ErrCommunicationFailure)
	ErrMalformedReport  = fmt.Errorf("%w: malformed report", ErrCommunicationFailure)
)

// ErrInvalidTour is returned by ValidateTour. It is not one of the three run
// error kinds: the coordinator turns it into ErrMalformedReport.
var ErrInvalidTour = errors.New("aco: invalid tour")
