package ytdlp

import (
	"errors"
	"strings"

	"github.com/denisAlshanov/ytgrab/internal/utils"
)

// invalidURLMarker is the fragment the tool prints when it rejects the input
// as malformed. The tool exposes no structured error codes, so substring
// matching on free-text output is the only classification available; the
// rule lives here so it can be swapped out if that ever changes.
const invalidURLMarker = "is not a valid URL"

// classifyExtractorError maps tool stderr to a known error category, or nil
// when the output matches none.
func classifyExtractorError(stderr, url string) *utils.AppError {
	if strings.Contains(stderr, invalidURLMarker) {
		return utils.NewInvalidURLError(url, errors.New(strings.TrimSpace(stderr)))
	}
	return nil
}
