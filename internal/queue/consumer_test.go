package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFormatLine(t *testing.T) {
	line := FormatLine(DonationEvent{
		Type:       DonationStatusChanged,
		DonationID: "65f0c0ffee",
		Status:     "inprogress",
		DonorEmail: "d@x.com",
		At:         "2026-01-02T03:04:05Z",
	})
	assert.Equal(t, "[2026-01-02T03:04:05Z] donation.status_changed | donation_id=65f0c0ffee | status=inprogress | donor=d@x.com\n", line)
}

func TestConsumerHandle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	c := &Consumer{Dir: dir, Log: zap.NewNop()}

	body, err := json.Marshal(DonationEvent{Type: DonationCreated, DonationID: "a1", At: "now"})
	require.NoError(t, err)
	require.NoError(t, c.Handle(body))
	require.NoError(t, c.Handle(body))

	data, err := os.ReadFile(filepath.Join(dir, "donation.log"))
	require.NoError(t, err)
	assert.Equal(t, "[now] donation.created | donation_id=a1\n[now] donation.created | donation_id=a1\n", string(data))
}

func TestConsumerHandle_Rejects(t *testing.T) {
	c := &Consumer{Dir: t.TempDir(), Log: zap.NewNop()}
	assert.Error(t, c.Handle([]byte("{")))
	assert.Error(t, c.Handle([]byte(`{"type":"donation.created"}`)))
}
