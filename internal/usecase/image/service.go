package image

import (
	"context"
	"errors"
	"fmt"

	"dalle-telegram-bot/internal/domain"
)

// ErrNoImage is returned when the upstream answered without an image URL.
var ErrNoImage = errors.New("no image url in response")

type Client interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

type Request struct {
	Model  string
	Prompt string
	N      int
}

type Response struct {
	URL string
}

// UpstreamError carries what the image API sent back on failure.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("image api status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("image api status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type Service struct {
	client   Client
	settings domain.SettingsStore
}

func NewService(client Client, settings domain.SettingsStore) *Service {
	return &Service{
		client:   client,
		settings: settings,
	}
}

// Generate requests one image for prompt using the current model and
// returns its URL. The prompt is sent as is, empty or not.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Generate(ctx, Request{
		Model:  s.settings.Model(),
		Prompt: prompt,
		N:      1,
	})
	if err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", ErrNoImage
	}
	return resp.URL, nil
}

func (s *Service) SetModel(model string) {
	s.settings.SetModel(model)
}

func (s *Service) Model() string {
	return s.settings.Model()
}
