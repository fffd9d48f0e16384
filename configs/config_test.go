package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppPortReturnsBarePort(t *testing.T) {
	// Dinleme adresi main.go'da ":" + AppPort() olarak kurulur;
	// burada ":" öneki olursa adres "::3000" olur ve bind başarısız olur.
	t.Setenv("APP_PORT", "8080")
	assert.Equal(t, "8080", AppPort())
	assert.NotContains(t, AppPort(), ":")
}

func TestAppPortDefault(t *testing.T) {
	t.Setenv("APP_PORT", "")
	assert.Equal(t, "3000", AppPort())
}
