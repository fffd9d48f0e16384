package services

import (
	"os"
	"testing"

	"panel.naal.org.tr/configs/configslog"

	"go.uber.org/zap"
)

// TestMain testlerde global logger'ın nil kalmamasını sağlar.
func TestMain(m *testing.M) {
	configslog.Log = zap.NewNop()
	configslog.SLog = configslog.Log.Sugar()
	os.Exit(m.Run())
}
