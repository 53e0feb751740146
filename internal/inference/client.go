package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/haircareai/follicle-api/internal/config"
)

// Client talks to the external classification model service. The service
// accepts a scalp image and answers with the predicted baldness stage.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the configured model service.
func NewClient(cfg config.InferenceConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// predictResponse is the model service's answer.
type predictResponse struct {
	Stage int    `json:"stage"`
	Error string `json:"error"`
}

// Classify sends the stored scan image to the model service and returns the
// predicted stage.
func (c *Client) Classify(ctx context.Context, imageFile string) (int, error) {
	f, err := os.Open(imageFile)
	if err != nil {
		return 0, fmt.Errorf("open scan image: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filepath.Base(imageFile))
	if err != nil {
		return 0, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return 0, fmt.Errorf("read scan image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call model service: %w", err)
	}
	defer resp.Body.Close()

	var result predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decode model response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if result.Error != "" {
			return 0, fmt.Errorf("model service: %s", result.Error)
		}
		return 0, fmt.Errorf("model service returned status %d", resp.StatusCode)
	}
	if result.Stage < 1 {
		return 0, fmt.Errorf("model service returned invalid stage %d", result.Stage)
	}
	return result.Stage, nil
}
