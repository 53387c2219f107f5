package cmd

import (
	"testing"
	"time"

	"github.com/chris-regnier/calscroll/internal/config"
)

func setupTestEnv(t *testing.T) {
	t.Helper()
	appConfig = &config.Config{
		Mode:    "range",
		Theme:   config.ThemeConfig{Preset: "default-dark"},
		Scroll:  config.ScrollConfig{Threshold: 2},
		Loading: config.LoadingConfig{FadeDelay: 500 * time.Millisecond, HideDelay: 250 * time.Millisecond},
		MCP:     config.MCPConfig{Threshold: 100, LabelOffset: 30},
	}
	jsonOutput = false
	todayFlag = "2024-03-10"
	modeFlag = ""
	t.Cleanup(func() {
		jsonOutput = false
		todayFlag = ""
		modeFlag = ""
	})
}
