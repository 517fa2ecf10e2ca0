package commands

import (
	"errors"

	"github.com/Sumatoshi-tech/devdays/pkg/contrib"
)

// Process exit codes.
const (
	ExitOK                = 0
	ExitUsage             = 1
	ExitRepositoryOpen    = 2
	ExitTraversalSetup    = 3
	ExitBranchEnumeration = 4
	ExitCommitResolution  = 5
	ExitTimestamp         = 6
	// ExitFailure covers configuration, rendering and any unclassified error.
	ExitFailure = 7
)

var exitCodes = []struct {
	err  error
	code int
}{
	{ErrUsage, ExitUsage},
	{contrib.ErrRepositoryOpen, ExitRepositoryOpen},
	{contrib.ErrTraversalSetup, ExitTraversalSetup},
	{contrib.ErrBranchEnumeration, ExitBranchEnumeration},
	{contrib.ErrCommitResolution, ExitCommitResolution},
	{contrib.ErrTimestamp, ExitTimestamp},
}

// ExitCode classifies err into a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	for _, ec := range exitCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}

	return ExitFailure
}
