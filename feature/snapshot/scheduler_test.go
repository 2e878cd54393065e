package snapshot_test

import (
	"testing"
	"time"

	"poc-availability/core/storage"
	"poc-availability/core/storage/mocks"
	"poc-availability/feature/availability/models"
	"poc-availability/feature/snapshot"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	svc, _ := newService(t, new(mocks.Client), snapshot.Config{})
	_, err := snapshot.NewScheduler(svc, "every tuesday", time.Minute, zap.NewNop())
	assert.Error(t, err)
}

func TestScheduler_Run(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "snaps").Return(true, nil)
	client.On("PutObject", mock.Anything, "snaps", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", mock.Anything, "snaps", mock.Anything).
		Return(listing("reports/poc-1/client-7/20300106T070000.000000000Z-a1b2c3d4e5f6.json", "reports/poc-1/client-7/20300106T083000.000000000Z-a1b2c3d4e5f6.json"))
	client.On("RemoveObjects", mock.Anything, "snaps", mock.Anything, mock.Anything).Return(nil)

	core, logs := observer.New(zap.DebugLevel)
	svc, err := snapshot.NewService(&stubSource{reports: map[snapshot.Target]*models.AvailabilityReport{
		{PocID: 1, ClientID: 7}: sampleReport,
	}}, client, storage.Config{Bucket: "snaps"}, snapshot.Config{Targets: "1:7", Prefix: "reports", Keep: 1}, zap.New(core))
	require.NoError(t, err)

	s, err := snapshot.NewScheduler(svc, "@hourly", time.Minute, zap.New(core))
	require.NoError(t, err)
	s.Run()

	client.AssertCalled(t, "PutObject", mock.Anything, "snaps", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	client.AssertCalled(t, "RemoveObjects", mock.Anything, "snaps", mock.Anything, mock.Anything)
	assert.Equal(t, 1, logs.FilterMessage("Snapshot job finished").Len())
	assert.Equal(t, 1, logs.FilterMessage("Snapshots pruned").Len())
	assert.Zero(t, logs.FilterMessage("Snapshot export failed").Len())
}

func TestScheduler_StartStop(t *testing.T) {
	svc, _ := newService(t, new(mocks.Client), snapshot.Config{})
	s, err := snapshot.NewScheduler(svc, "@daily", 0, zap.NewNop())
	require.NoError(t, err)

	s.Start()
	select {
	case <-s.Stop().Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
