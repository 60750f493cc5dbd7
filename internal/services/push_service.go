package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"song_rounds_system/configs"
	"song_rounds_system/internal/db/models"

	"github.com/google/uuid"
)

// PushNotification is the payload delivered to every member of a round's group.
type PushNotification struct {
	Title string
	Body  string
	Data  map[string]string
}

type pushMessage struct {
	To    []string          `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

type pushService struct {
	client      *http.Client
	gatewayURL  string
	accessToken string
}

type PushService interface {
	SendToUsers(ctx context.Context, users []*models.User, notification PushNotification) error
}

func NewPushService(config configs.Push) PushService {
	return &pushService{
		client:      &http.Client{},
		gatewayURL:  config.GatewayURL,
		accessToken: config.AccessToken,
	}
}

// SendToUsers attempts one best-effort delivery to every user with a device
// token. Delivery outcome is not tracked per device; a batch id lets clients
// collapse duplicates.
func (s *pushService) SendToUsers(ctx context.Context, users []*models.User, notification PushNotification) error {
	tokens := make([]string, 0, len(users))
	for _, user := range users {
		if user.PushToken != "" {
			tokens = append(tokens, user.PushToken)
		}
	}

	if len(tokens) == 0 {
		return nil
	}

	data := make(map[string]string, len(notification.Data)+1)
	for key, value := range notification.Data {
		data[key] = value
	}
	data["batchId"] = uuid.NewString()

	jsonData, err := json.Marshal(pushMessage{
		To:    tokens,
		Title: notification.Title,
		Body:  notification.Body,
		Data:  data,
	})
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	request.Header.Add("Content-Type", "application/json; charset=utf-8")
	if s.accessToken != "" {
		request.Header.Add("Authorization", "Bearer "+s.accessToken)
	}

	response, err := s.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("push gateway returned %d: %s", response.StatusCode, responseBody)
	}

	return nil
}
