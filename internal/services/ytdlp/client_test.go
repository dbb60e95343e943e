package ytdlp

import (
	"errors"
	"reflect"
	"testing"

	"github.com/denisAlshanov/ytgrab/internal/config"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

func testClient() *Client {
	return NewClient(&config.YtdlpConfig{
		BinaryPath:     "yt-dlp",
		FfmpegPath:     "ffmpeg",
		CookieFile:     "cookies.txt",
		POTProviderURL: "http://localhost:4416",
	})
}

func TestBaseArgsMergesUnderOverrides(t *testing.T) {
	c := testClient()

	args := c.baseArgs(Args{"--cookies": "other.txt", "--quiet": ""})

	if args["--cookies"] != "other.txt" {
		t.Errorf("override lost: --cookies = %q", args["--cookies"])
	}
	if args["--extractor-args"] != "youtubepot-bgutilhttp:base_url=http://localhost:4416" {
		t.Errorf("baseline proof-of-origin argument missing: %q", args["--extractor-args"])
	}
	if _, ok := args["--quiet"]; !ok {
		t.Error("caller-supplied flag missing")
	}
}

func TestBaseArgsOmitsUnconfiguredKeys(t *testing.T) {
	c := NewClient(&config.YtdlpConfig{BinaryPath: "yt-dlp"})
	args := c.baseArgs(nil)
	if len(args) != 0 {
		t.Errorf("expected no baseline args, got %v", args)
	}
}

func TestArgsRender(t *testing.T) {
	args := Args{
		"--dump-json": "",
		"--cookies":   "cookies.txt",
		"-f":          "137+140",
	}
	got := args.render()
	want := []string{"--cookies", "cookies.txt", "--dump-json", "-f", "137+140"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("render() = %v, want %v", got, want)
	}
}

func TestClassifyExtractorError(t *testing.T) {
	testCases := []struct {
		name     string
		stderr   string
		wantCode utils.ErrorCode
		wantNil  bool
	}{
		{
			name:     "Invalid URL rejection",
			stderr:   "ERROR: 'htp://nope' is not a valid URL.",
			wantCode: utils.ErrorCodeInvalidURL,
		},
		{
			name:    "Network failure is not classified",
			stderr:  "ERROR: unable to download webpage: <urlopen error timed out>",
			wantNil: true,
		},
		{
			name:    "Empty stderr",
			stderr:  "",
			wantNil: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := classifyExtractorError(tc.stderr, "htp://nope")
			if tc.wantNil {
				if appErr != nil {
					t.Errorf("expected no classification, got %v", appErr)
				}
				return
			}
			if appErr == nil {
				t.Fatal("expected a classified error")
			}
			if appErr.Code != tc.wantCode {
				t.Errorf("code = %s, want %s", appErr.Code, tc.wantCode)
			}
			var target *utils.AppError
			if !errors.As(error(appErr), &target) {
				t.Error("classified error should unwrap as AppError")
			}
		})
	}
}
