package snapshot_test

import (
	"testing"

	"poc-availability/feature/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargets(t *testing.T) {
	targets, err := snapshot.ParseTargets(" 1:7, 2:7 ,,")
	require.NoError(t, err)
	assert.Equal(t, []snapshot.Target{{PocID: 1, ClientID: 7}, {PocID: 2, ClientID: 7}}, targets)
	assert.Equal(t, "1:7", targets[0].String())

	targets, err = snapshot.ParseTargets("")
	assert.NoError(t, err)
	assert.Empty(t, targets)

	for _, bad := range []string{"1", "a:7", "1:b", "0:7", "1:-2"} {
		_, err := snapshot.ParseTargets(bad)
		assert.Error(t, err, bad)
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, snapshot.Config{Schedule: "not a schedule"}.Validate())
	assert.NoError(t, snapshot.Config{Enabled: true, Schedule: "@hourly", Targets: "1:7"}.Validate())
	assert.NoError(t, snapshot.Config{Enabled: true, Schedule: "*/15 * * * *"}.Validate())

	assert.Error(t, snapshot.Config{Enabled: true, Schedule: "not a schedule"}.Validate())
	assert.Error(t, snapshot.Config{Targets: "oops"}.Validate())
	assert.Error(t, snapshot.Config{Keep: -1}.Validate())
}
