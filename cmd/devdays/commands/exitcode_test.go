package commands_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/devdays/cmd/devdays/commands"
	"github.com/Sumatoshi-tech/devdays/pkg/contrib"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, commands.ExitOK},
		{"usage", commands.ErrUsage, commands.ExitUsage},
		{"open", fmt.Errorf("%w /tmp/x: boom", contrib.ErrRepositoryOpen), commands.ExitRepositoryOpen},
		{"traversal", fmt.Errorf("%w: boom", contrib.ErrTraversalSetup), commands.ExitTraversalSetup},
		{"branches", fmt.Errorf("%w: boom", contrib.ErrBranchEnumeration), commands.ExitBranchEnumeration},
		{"commit", fmt.Errorf("commit abc: %w", fmt.Errorf("%w: boom", contrib.ErrCommitResolution)), commands.ExitCommitResolution},
		{"timestamp", fmt.Errorf("commit abc: %w", contrib.ErrTimestamp), commands.ExitTimestamp},
		{"config", fmt.Errorf("%w: bad", commands.ErrConfig), commands.ExitFailure},
		{"render", fmt.Errorf("%w: bad", commands.ErrRender), commands.ExitFailure},
		{"canceled", context.Canceled, commands.ExitFailure},
		{"other", errors.New("other"), commands.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, commands.ExitCode(tt.err))
		})
	}
}
