package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveCmd(t *testing.T) {
	cmd := removeCmd()

	assert.NotNil(t, cmd.Args)
	assert.NoError(t, cmd.Args(cmd, []string{"some-id"}))
	assert.Error(t, cmd.Args(cmd, nil), "remove should require an ID argument")
	assert.Error(t, cmd.Args(cmd, []string{"a", "b"}), "remove should reject extra arguments")

	flag := cmd.Flag("yes")
	assert.NotNil(t, flag, "yes flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

// The interrupt handler in main cancels the execution context; remove has to
// observe that through the command so journal calls and the confirmation
// prompt stop instead of running to completion.
func TestRemoveCmd_CanceledContext(t *testing.T) {
	prev := viper.GetString("journal.path")
	viper.Set("journal.path", filepath.Join(t.TempDir(), "journal.db"))
	t.Cleanup(func() { viper.Set("journal.path", prev) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := removeCmd()
	cmd.SetArgs([]string{"txn-404"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.ExecuteContext(ctx)
	require.Error(t, err, "remove should give up when the execution context is already canceled")
	assert.ErrorIs(t, err, context.Canceled)
}
