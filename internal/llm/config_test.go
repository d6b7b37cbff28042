package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, DefaultTemperature, cfg.Temperature)
}

func TestGetModel_Fallback(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierStandard: "std-model"}}
	assert.Equal(t, "std-model", cfg.GetModel(TierAdvanced))

	cfg = &Config{Models: map[ModelTier]string{TierLite: "lite-model"}}
	assert.Equal(t, "lite-model", cfg.GetModel(TierAdvanced))

	cfg = &Config{Models: map[ModelTier]string{}}
	assert.Empty(t, cfg.GetModel(TierStandard))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithModel(TierStandard, "gemini-2.0-flash")

	assert.Equal(t, "gemini-2.0-flash", custom.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash", base.GetModel(TierStandard))
	assert.Equal(t, base.Temperature, custom.Temperature)
}
