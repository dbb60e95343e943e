package downloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/denisAlshanov/ytgrab/internal/models"
)

func TestSessionPaths(t *testing.T) {
	dir := "/tmp/dl"

	video := NewSession(dir, models.SelectionAction{VideoID: "abc", FormatSpec: "137+140", Height: 1080, Width: 1920})
	if got := video.MediaPath(); got != filepath.Join(dir, "abc.mp4") {
		t.Errorf("video media path = %q", got)
	}
	if got := video.ThumbnailPath(); got != filepath.Join(dir, "abc.jpg") {
		t.Errorf("video thumbnail path = %q", got)
	}

	audio := NewSession(dir, models.SelectionAction{VideoID: "abc", FormatSpec: "140"})
	if got := audio.MediaPath(); got != filepath.Join(dir, "abc.m4a") {
		t.Errorf("audio media path = %q", got)
	}
	// The converter names the audio thumbnail after the media file.
	if got := audio.ThumbnailPath(); got != filepath.Join(dir, "abc.m4a.jpg") {
		t.Errorf("audio thumbnail path = %q", got)
	}

	if got := video.DescriptionPath(); got != filepath.Join(dir, "abc-descr.txt") {
		t.Errorf("description path = %q", got)
	}
	if got := video.OutputTemplate(); got != filepath.Join(dir, "abc.%(ext)s") {
		t.Errorf("output template = %q", got)
	}
}

func TestCleanupRemovesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	session := NewSession(dir, models.SelectionAction{VideoID: "abc", FormatSpec: "137+140", Height: 1080, Width: 1920})

	for _, path := range []string{session.MediaPath(), session.ThumbnailPath(), session.DescriptionPath()} {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	session.Cleanup(context.Background())

	for _, path := range []string{session.MediaPath(), session.ThumbnailPath(), session.DescriptionPath()} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("artifact %s still exists", path)
		}
	}
}

func TestCleanupIdempotent(t *testing.T) {
	dir := t.TempDir()
	session := NewSession(dir, models.SelectionAction{VideoID: "abc", FormatSpec: "140"})

	// Nothing was ever written; both passes must only log warnings.
	session.Cleanup(context.Background())
	session.Cleanup(context.Background())
}

func TestCleanupContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	session := NewSession(dir, models.SelectionAction{VideoID: "abc", FormatSpec: "137+140", Height: 1080, Width: 1920})

	// Only the description exists; the media and thumbnail removals fail
	// first but must not stop the description from being removed.
	if err := os.WriteFile(session.DescriptionPath(), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	session.Cleanup(context.Background())

	if _, err := os.Stat(session.DescriptionPath()); !os.IsNotExist(err) {
		t.Error("description should be removed even when earlier removals fail")
	}
}
