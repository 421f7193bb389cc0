package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddCmd(t *testing.T) {
	cmd := addCmd()

	for _, name := range []string{"date", "note", "category", "amount"} {
		assert.NotNil(t, cmd.Flag(name), "%s flag should exist", name)
	}

	// Date defaults to today so quick entries don't need the flag.
	assert.Equal(t, time.Now().Format("2006-01-02"), cmd.Flag("date").DefValue)
	assert.Equal(t, "0", cmd.Flag("amount").DefValue)
	assert.Contains(t, cmd.Flag("category").Usage, "required")
}

func TestRootCmd(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"add", "remove", "list", "version"} {
		assert.True(t, names[want], "%s subcommand should exist", want)
	}
}
