package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutesCommand(t *testing.T) {
	var out bytes.Buffer

	cmd := routesCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	table := out.String()
	for _, path := range []string{"/items/", "/search/", "/users/", "/validate/", "/reports/:report_id", "/status", "/metrics"} {
		assert.Contains(t, table, path)
	}
	assert.Contains(t, strings.ToUpper(table), "METHOD")

	assert.Less(t, strings.Index(table, "/items/"), strings.Index(table, "/search/"))
	assert.Less(t, strings.Index(table, "/reports/:report_id"), strings.Index(table, "/users/"))
}
