package imagegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func responseWithParts(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

func TestResultFromResponse_FirstImagePartWins(t *testing.T) {
	want := []byte{0x89, 0x50, 0x4e, 0x47}
	resp := responseWithParts(
		&genai.Part{Text: "done"},
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: want}},
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/webp", Data: []byte("later")}},
	)

	img, err := resultFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MediaType)
	assert.Equal(t, want, img.Data)
}

func TestResultFromResponse_DefaultsMediaType(t *testing.T) {
	resp := responseWithParts(
		&genai.Part{InlineData: &genai.Blob{Data: []byte{1, 2, 3}}},
	)

	img, err := resultFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MediaType)
}

func TestResultFromResponse_TextOnlyIsNoImage(t *testing.T) {
	resp := responseWithParts(&genai.Part{Text: "I cannot process this"})

	_, err := resultFromResponse(resp)
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestResultFromResponse_EmptyResponse(t *testing.T) {
	_, err := resultFromResponse(nil)
	assert.ErrorIs(t, err, ErrNoImage)

	_, err = resultFromResponse(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrNoImage)
}
