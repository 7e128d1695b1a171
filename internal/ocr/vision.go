package ocr

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"

	"github.com/snapledger/snapledger/internal/common"
)

const (
	featureDocumentText = "DOCUMENT_TEXT_DETECTION"
	featureText         = "TEXT_DETECTION"
)

// visionProvider calls the Google Vision images.annotate endpoint with a
// single feature per request.
type visionProvider struct {
	svc     *vision.Service
	feature string
}

func newVisionProvider(ctx context.Context, feature, apiKey string) (Provider, error) {
	var opts []option.ClientOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	svc, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision service: %w", err)
	}

	return &visionProvider{svc: svc, feature: feature}, nil
}

// DetectText runs the configured detection feature over the image bytes
// and returns the raw text.
func (p *visionProvider) DetectText(ctx context.Context, image []byte) (string, error) {
	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{{
			Image:    &vision.Image{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []*vision.Feature{{Type: p.feature}},
		}},
	}

	resp, err := p.svc.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("vision annotate: %w", err)
	}

	if len(resp.Responses) == 0 {
		return "", common.ErrNoTextDetected
	}

	return textFromResponse(resp.Responses[0], p.feature)
}

// textFromResponse reads the detected text out of a single annotate
// response. Document detection fills FullTextAnnotation; plain text
// detection puts the whole block first in TextAnnotations.
func textFromResponse(r *vision.AnnotateImageResponse, feature string) (string, error) {
	if r.Error != nil {
		return "", fmt.Errorf("vision annotate: %s", r.Error.Message)
	}

	if feature == featureDocumentText {
		if r.FullTextAnnotation == nil || r.FullTextAnnotation.Text == "" {
			return "", common.ErrNoTextDetected
		}
		return r.FullTextAnnotation.Text, nil
	}

	if len(r.TextAnnotations) == 0 || r.TextAnnotations[0].Description == "" {
		return "", common.ErrNoTextDetected
	}
	return r.TextAnnotations[0].Description, nil
}
