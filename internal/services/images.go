package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jwebster45206/mystery-room/pkg/catalog"
)

const veniceBaseURL = "https://api.venice.ai/api/v1"

// ImageService generates background imagery for scenes.
type ImageService interface {
	// GenerateSceneImage returns base64-encoded PNG data for a scene.
	GenerateSceneImage(ctx context.Context, scene *catalog.Scene) (string, error)
}

// VeniceImageService implements ImageService using the Venice AI image API.
type VeniceImageService struct {
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ImageService = (*VeniceImageService)(nil)

type veniceImageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Steps  int    `json:"steps,omitempty"`
	Format string `json:"format,omitempty"`
}

type veniceImageResponse struct {
	Images []string `json:"images"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewVeniceImageService(apiKey string, logger *slog.Logger) *VeniceImageService {
	return &VeniceImageService{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

func (v *VeniceImageService) GenerateSceneImage(ctx context.Context, scene *catalog.Scene) (string, error) {
	prompt := fmt.Sprintf("Moody noir illustration of %s for a detective mystery game. %s", scene.Name, scene.Description)

	veniceReq := veniceImageRequest{
		Model:  "venice-sd35",
		Prompt: prompt,
		Width:  1024,
		Height: 576,
		Format: "png",
	}

	reqBody, err := json.Marshal(veniceReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", veniceBaseURL+"/image/generate", bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+v.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var veniceResp veniceImageResponse
	if err := json.Unmarshal(body, &veniceResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if veniceResp.Error != nil {
		return "", fmt.Errorf("API error: %s", veniceResp.Error.Message)
	}

	if len(veniceResp.Images) == 0 {
		return "", fmt.Errorf("no image in response")
	}

	return veniceResp.Images[0], nil
}

// PlaceholderImage returns the static background path for a scene, used
// when image generation is unavailable or fails.
func PlaceholderImage(scene *catalog.Scene) string {
	if scene != nil && scene.BackgroundImage != "" {
		return scene.BackgroundImage
	}
	return "/images/scenes/default.png"
}
