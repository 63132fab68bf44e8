package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLegacyUsers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	content := "telegram_id,client_id,api_key,is_active,trial_start_date,subscription_expires_at\n" +
		"1001,123456,key-1,true,2024-03-01 10:00:00.123456,\n" +
		"1002,,,false,2024-01-01,2024-02-01T00:00:00Z\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	users, err := readLegacyUsers(path)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, int64(1001), users[0].TelegramID)
	assert.Equal(t, "123456", users[0].ClientID)
	assert.Equal(t, "key-1", users[0].APIKey)
	assert.True(t, users[0].IsActive)
	require.NotNil(t, users[0].TrialStartedAt)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 123456000, time.UTC), *users[0].TrialStartedAt)
	assert.Nil(t, users[0].SubscriptionExpiresAt)

	assert.False(t, users[1].IsActive)
	assert.Empty(t, users[1].ClientID)
	require.NotNil(t, users[1].SubscriptionExpiresAt)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *users[1].SubscriptionExpiresAt)
}

func TestParseLegacyUser_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		record []string
	}{
		{name: "telegram id", record: []string{"abc", "", "", "true", "", ""}},
		{name: "is_active", record: []string{"1", "", "", "maybe", "", ""}},
		{name: "trial date", record: []string{"1", "", "", "true", "01/03/2024", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseLegacyUser(tt.record)
			assert.Error(t, err)
		})
	}
}
