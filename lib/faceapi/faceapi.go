// Package faceapi talks to a deepface-compatible analyze service over
// HTTP. The service runs the actual face detection models; this client
// only ships images to it and decodes the attribute probabilities.
package faceapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"gridiron-backend/lib/telemetry"
	"gridiron-backend/lib/textutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("faceapi")

var ErrNoFace = fmt.Errorf("no face detected in image")

type Config struct {
	BaseUrl string `json:"base_url"`
	// seconds, model inference on cpu can take a while
	TimeoutSeconds int `json:"timeout_seconds"`
}

type Client struct {
	Http *resty.Client
}

func NewClient(config Config) *Client {
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = time.Minute * 2
	}

	client := resty.New()
	client.SetBaseURL(config.BaseUrl)
	client.SetTimeout(timeout)
	telemetry.InstrumentResty(client, "faceapi/http")

	return &Client{Http: client}
}

// Face is one detected face with its attribute probability
// distributions. Probabilities are percentages, not fractions.
type Face struct {
	Age     int                `json:"age"`
	Emotion map[string]float64 `json:"emotion"`
	Race    map[string]float64 `json:"race"`
}

type analyzeRequest struct {
	Img              string   `json:"img"`
	Actions          []string `json:"actions"`
	DetectorBackend  string   `json:"detector_backend"`
	EnforceDetection bool     `json:"enforce_detection"`
}

type analyzeResponse struct {
	Results []Face `json:"results"`
	Error   string `json:"error"`
}

// Analyze runs age, race and emotion inference on the image at path.
// Returns ErrNoFace when the service finds no face to analyze.
func (c *Client) Analyze(ctx context.Context, imagePath string) (Face, error) {
	ctx, span := tracer.Start(ctx, "Analyze")
	defer span.End()

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return Face{}, err
	}

	var body analyzeResponse
	res, err := c.Http.R().SetContext(ctx).
		SetBody(analyzeRequest{
			Img:              "data:image/png;base64," + base64.StdEncoding.EncodeToString(data),
			Actions:          []string{"age", "race", "emotion"},
			DetectorBackend:  "opencv",
			EnforceDetection: false,
		}).
		SetResult(&body).
		SetError(&body).
		Post("/analyze")
	if err != nil {
		return Face{}, err
	}
	if res.StatusCode() != 200 {
		if body.Error != "" {
			return Face{}, fmt.Errorf("analyze failed: %s", body.Error)
		}
		return Face{}, fmt.Errorf("analyze failed: %s", res.Status())
	}
	if len(body.Results) == 0 {
		return Face{}, ErrNoFace
	}
	return body.Results[0], nil
}

// Dominant picks the highest-probability label out of a distribution.
// Labels come back lowercased from the service ("angry", "white") so
// they are title-cased here. ok is false when the distribution is
// empty, which happens when detection ran but produced nothing.
func Dominant(probs map[string]float64) (label string, confidence float64, ok bool) {
	for key, value := range probs {
		if !ok || value > confidence {
			label = key
			confidence = value
			ok = true
		}
	}
	return textutil.Title(label), confidence, ok
}
