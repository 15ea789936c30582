package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	openaiapi "github.com/sashabaranov/go-openai"

	"dalle-telegram-bot/internal/usecase/image"
)

// imageCreateRequest keeps prompt without omitempty so an empty prompt is
// still sent, which openaiapi.ImageRequest would drop.
type imageCreateRequest struct {
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Model  string `json:"model"`
}

func (c *Client) Generate(ctx context.Context, req image.Request) (image.Response, error) {
	body, err := json.Marshal(imageCreateRequest{
		Prompt: req.Prompt,
		N:      req.N,
		Model:  req.Model,
	})
	if err != nil {
		return image.Response{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return image.Response{}, fmt.Errorf("build image request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return image.Response{}, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return image.Response{}, &image.UpstreamError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		upErr := &image.UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
		var apiErr openaiapi.ErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != nil && apiErr.Error.Message != "" {
			upErr.Err = fmt.Errorf("openai error: %s", apiErr.Error.Message)
		}
		return image.Response{}, upErr
	}

	var apiResp openaiapi.ImageResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return image.Response{}, &image.UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody), Err: err}
	}
	if len(apiResp.Data) == 0 || apiResp.Data[0].URL == "" {
		return image.Response{}, &image.UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody), Err: image.ErrNoImage}
	}

	return image.Response{URL: apiResp.Data[0].URL}, nil
}
