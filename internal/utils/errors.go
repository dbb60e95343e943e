package utils

import (
	"fmt"
	"strings"
)

type ErrorCode string

const (
	ErrorCodeNoURLFound          ErrorCode = "NO_URL_FOUND"
	ErrorCodeInvalidURL          ErrorCode = "INVALID_URL"
	ErrorCodeMetadataFetchFailed ErrorCode = "METADATA_FETCH_FAILED"
	ErrorCodeDownloadFailed      ErrorCode = "DOWNLOAD_FAILED"
	ErrorCodeFileIOFailure       ErrorCode = "FILE_IO_FAILURE"
	ErrorCodeStatusEditFailure   ErrorCode = "STATUS_EDIT_FAILURE"
	ErrorCodeInternalError       ErrorCode = "INTERNAL_ERROR"
)

// AppError is the error type surfaced at handler boundaries. UserText is
// what a chat user sees; Err keeps the underlying cause for logs.
type AppError struct {
	Code     ErrorCode
	Message  string
	UserText string
	Err      error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// UserMessage renders the message shown in chat. Raw error text is appended
// with markup characters stripped so it cannot break message formatting.
func (e *AppError) UserMessage() string {
	if e.Err == nil {
		return e.UserText
	}
	return e.UserText + "\n\n" + SanitizeMarkup(e.Err.Error())
}

// SanitizeMarkup removes characters that carry formatting meaning in chat
// messages from arbitrary error text.
func SanitizeMarkup(s string) string {
	replacer := strings.NewReplacer(
		"<", "", ">", "",
		"*", "", "_", "",
		"`", "", "[", "", "]", "",
	)
	return replacer.Replace(s)
}

// Common error constructors
func NewNoURLFoundError() *AppError {
	return &AppError{
		Code:     ErrorCodeNoURLFound,
		Message:  "no YouTube URL found in message text",
		UserText: "I could not find a YouTube link in that message. Send me a youtube.com or youtu.be link.",
	}
}

func NewInvalidURLError(url string, err error) *AppError {
	return &AppError{
		Code:     ErrorCodeInvalidURL,
		Message:  fmt.Sprintf("extractor rejected URL %s", url),
		UserText: "That link does not look like a valid video URL. Check it and send it again.",
		Err:      err,
	}
}

func NewMetadataFetchError(err error) *AppError {
	return &AppError{
		Code:     ErrorCodeMetadataFetchFailed,
		Message:  "failed to fetch video metadata",
		UserText: "Could not fetch video info. This is usually a temporary network problem, but it can also mean the site changed and the extractor needs an update. Please send the link again.",
		Err:      err,
	}
}

func NewDownloadError(err error) *AppError {
	return &AppError{
		Code:     ErrorCodeDownloadFailed,
		Message:  "media download failed",
		UserText: "Download failed. The file may exceed the platform size or time limits, or the downloader hit an error. Try a smaller quality, or send the link again.",
		Err:      err,
	}
}

func NewFileIOError(op string, err error) *AppError {
	return &AppError{
		Code:    ErrorCodeFileIOFailure,
		Message: fmt.Sprintf("file operation failed: %s", op),
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:     ErrorCodeInternalError,
		Message:  "unexpected internal error",
		UserText: "Something went wrong on my side. Please try again.",
		Err:      err,
	}
}
