package logger

import (
	"os"
	"path/filepath"
	"testing"

	logrus "github.com/sirupsen/logrus"
)

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	Setup(path, "info")
	defer Setup("", "debug")

	if logrus.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %s, want info", logrus.GetLevel())
	}
	logrus.Info("planner online")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestSetup_UnknownLevel(t *testing.T) {
	Setup("", "chatty")
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %s, want debug", logrus.GetLevel())
	}
}

func TestGorm_FollowsLevel(t *testing.T) {
	Setup("", "warn")
	defer Setup("", "debug")
	if Gorm() == nil {
		t.Fatal("Gorm returned nil")
	}
}
