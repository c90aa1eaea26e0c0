package queue

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cv-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

func TestEmailCVTaskPayloadRoundTrip(t *testing.T) {
	task := EmailCVTask{
		TaskID:    "f3b9c6d0-0000-0000-0000-000000000001",
		FirstName: "Jane",
		LastName:  "Doe",
		Recipient: "hr@example.com",
		PDF:       []byte("%PDF-1.4 fake body"),
	}

	payload, err := json.Marshal(task)
	require.NoError(t, err)

	// The PDF travels base64-encoded inside the JSON body.
	assert.Contains(t, string(payload), base64.StdEncoding.EncodeToString(task.PDF))

	var decoded EmailCVTask
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, task, decoded)
}

func TestDisabledPublisher(t *testing.T) {
	pub, err := NewTaskPublisher("")
	require.NoError(t, err)
	require.NotNil(t, pub)

	_, err = pub.PublishEmailTask(context.Background(), EmailCVTask{
		FirstName: "Jane",
		LastName:  "Doe",
		Recipient: "hr@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")

	assert.NoError(t, pub.Close())
}
