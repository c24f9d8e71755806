package imagegen

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"docview/internal/imaging"
)

const defaultResultMediaType = "image/png"

// GeminiGenerator implements Generator against the Gemini image model.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey string, modelName string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiGenerator{
		client: client,
		model:  modelName,
	}, nil
}

// Generate sends the source image, the instruction, and the aspect ratio
// in a single request and returns the first image the response carries.
func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (imaging.EncodedImage, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			{InlineData: &genai.Blob{
				MIMEType: req.Image.MediaType,
				Data:     req.Image.Data,
			}},
			{Text: req.Instruction},
		}, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: req.AspectRatio,
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return imaging.EncodedImage{}, err
	}
	return resultFromResponse(resp)
}

// resultFromResponse scans the response parts in order and decodes the
// first one carrying inline image data; any accompanying text is
// discarded. A response with no image part anywhere is ErrNoImage.
func resultFromResponse(resp *genai.GenerateContentResponse) (imaging.EncodedImage, error) {
	if resp == nil {
		return imaging.EncodedImage{}, ErrNoImage
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mediaType := part.InlineData.MIMEType
			if mediaType == "" {
				mediaType = defaultResultMediaType
			}
			return imaging.EncodedImage{
				MediaType: mediaType,
				Data:      part.InlineData.Data,
			}, nil
		}
	}
	return imaging.EncodedImage{}, ErrNoImage
}
