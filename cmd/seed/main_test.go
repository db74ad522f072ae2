package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRequiresMongoStore(t *testing.T) {
	t.Setenv("STORE", "memory")
	require.Equal(t, 1, run())
}
