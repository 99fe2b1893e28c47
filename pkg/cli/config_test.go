package cli

import (
	"testing"

	"github.com/m-mizutani/gt"
)

func TestApplyFileFillsEmptyFields(t *testing.T) {
	cfg := &config{
		aiBackend:      aiBackendSimulated,
		geminiLocation: "us-central1",
	}
	fc := &fileConfig{}
	fc.DataDir = "/tmp/notes"
	fc.Sync.Bucket = "my-bucket"
	fc.Sync.Folder = "my-folder"
	fc.Sync.CredentialsFile = "/tmp/creds.json"
	fc.AI.GeminiProject = "my-project"

	cfg.applyFile(fc, func(string) bool { return false })

	gt.Equal(t, cfg.dataDir, "/tmp/notes")
	gt.Equal(t, cfg.bucket, "my-bucket")
	gt.Equal(t, cfg.folder, "my-folder")
	gt.Equal(t, cfg.credentialsFile, "/tmp/creds.json")
	gt.Equal(t, cfg.geminiProject, "my-project")
}

func TestApplyFileOverridesDefaultedAIBackend(t *testing.T) {
	cfg := &config{aiBackend: aiBackendSimulated, geminiLocation: "us-central1"}
	fc := &fileConfig{}
	fc.AI.Backend = aiBackendGemini
	fc.AI.GeminiLocation = "asia-northeast1"

	cfg.applyFile(fc, func(string) bool { return false })

	gt.Equal(t, cfg.aiBackend, aiBackendGemini)
	gt.Equal(t, cfg.geminiLocation, "asia-northeast1")
}

func TestApplyFileKeepsExplicitAIBackend(t *testing.T) {
	cfg := &config{aiBackend: aiBackendSimulated, geminiLocation: "europe-west1"}
	fc := &fileConfig{}
	fc.AI.Backend = aiBackendGemini
	fc.AI.GeminiLocation = "asia-northeast1"

	set := map[string]bool{"ai": true, "gemini-location": true}
	cfg.applyFile(fc, func(name string) bool { return set[name] })

	gt.Equal(t, cfg.aiBackend, aiBackendSimulated)
	gt.Equal(t, cfg.geminiLocation, "europe-west1")
}

func TestApplyFileDoesNotClobberFlagValues(t *testing.T) {
	cfg := &config{
		dataDir:        "/explicit/dir",
		bucket:         "explicit-bucket",
		aiBackend:      aiBackendSimulated,
		geminiLocation: "us-central1",
	}
	fc := &fileConfig{}
	fc.DataDir = "/file/dir"
	fc.Sync.Bucket = "file-bucket"

	cfg.applyFile(fc, func(string) bool { return false })

	gt.Equal(t, cfg.dataDir, "/explicit/dir")
	gt.Equal(t, cfg.bucket, "explicit-bucket")
}
