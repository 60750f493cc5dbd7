package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"song_rounds_system/configs"
	"song_rounds_system/internal/db/models"

	"github.com/stretchr/testify/assert"
)

func TestSendToUsers_PostsBatchedMessage(t *testing.T) {
	var received pushMessage
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &received))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	service := NewPushService(configs.Push{GatewayURL: server.URL, AccessToken: "secret"})

	users := []*models.User{
		{ID: 1, PushToken: "tok-1"},
		{ID: 2},
		{ID: 3, PushToken: "tok-3"},
	}
	notification := PushNotification{
		Title: "Voting Started",
		Body:  "Voting is open.",
		Data:  map[string]string{"roundId": "5"},
	}

	err := service.SendToUsers(context.Background(), users, notification)
	assert.NoError(t, err)
	assert.Equal(t, 1, requests)
	assert.Equal(t, []string{"tok-1", "tok-3"}, received.To)
	assert.Equal(t, "Voting Started", received.Title)
	assert.Equal(t, "5", received.Data["roundId"])
	assert.NotEmpty(t, received.Data["batchId"])
}

func TestSendToUsers_NoTokensSendsNothing(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	service := NewPushService(configs.Push{GatewayURL: server.URL})

	err := service.SendToUsers(context.Background(), []*models.User{{ID: 1}}, PushNotification{Title: "x"})
	assert.NoError(t, err)
	assert.Equal(t, 0, requests)
}

func TestSendToUsers_GatewayErrorIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	service := NewPushService(configs.Push{GatewayURL: server.URL})

	err := service.SendToUsers(context.Background(), []*models.User{{ID: 1, PushToken: "tok"}}, PushNotification{Title: "x"})
	assert.Error(t, err)
}
