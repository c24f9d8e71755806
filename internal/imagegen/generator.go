package imagegen

import (
	"context"
	"errors"

	"docview/internal/imaging"
)

// ErrNoImage means the service answered but produced no image part in the
// whole response. This is a declined edit, not a transport failure.
var ErrNoImage = errors.New("the model processed the request but did not return an image; it may have returned text instead")

// Request carries everything one edit attempt sends to the service.
type Request struct {
	Image       imaging.EncodedImage
	Instruction string
	AspectRatio string
}

// Generator turns an edit request into a new encoded image. An error is
// either ErrNoImage or a transport/service failure whose message is
// surfaced to the user verbatim.
type Generator interface {
	Generate(ctx context.Context, req Request) (imaging.EncodedImage, error)
}
