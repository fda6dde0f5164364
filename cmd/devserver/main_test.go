package main

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cancelled() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestRun_StopsWhenContextEnds(t *testing.T) {
	stderr := new(bytes.Buffer)

	err := run(cancelled(), []string{"-host", "127.0.0.1", "-port", "0"}, stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "development backend shutting down")
}

func TestRun_SeedsFileDatabase(t *testing.T) {
	t.Setenv("BCRYPT_COST", "4")
	dbPath := filepath.Join(t.TempDir(), "backend.db")
	stderr := new(bytes.Buffer)
	args := []string{"-host", "127.0.0.1", "-port", "0", "-db", dbPath, "-seed", "-seed-value", "42"}

	serveBriefly := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return run(ctx, args, stderr)
	}

	require.NoError(t, serveBriefly())
	assert.Contains(t, stderr.String(), "seeded demo data")

	// second start finds the demo user and leaves it alone
	stderr.Reset()
	require.NoError(t, serveBriefly())
	assert.Contains(t, stderr.String(), "demo user already present")
}

func TestRun_Help(t *testing.T) {
	stderr := new(bytes.Buffer)

	err := run(context.Background(), []string{"-h"}, stderr)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, stderr.String(), "-seed")
}

func TestRun_UnknownFlag(t *testing.T) {
	err := run(context.Background(), []string{"-bogus"}, new(bytes.Buffer))
	assert.Error(t, err)
}
