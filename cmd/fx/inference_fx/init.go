package inference_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelhelper/internal/config"
	"travelhelper/pkg/llm"
	"travelhelper/pkg/utils"
)

var Module = fx.Provide(ProvideInferenceClient)

// ProvideInferenceClient creates the language model client for the configured provider
func ProvideInferenceClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (llm.Client, error) {
	ic := cfg.Inference
	logger.Info("Initializing inference client",
		zap.String("provider", ic.Provider),
		zap.String("model", ic.Model))

	var client llm.Client
	switch ic.Provider {
	case config.ProviderOpenAI:
		client = llm.NewOpenAIClient(ic.OpenAIKey, ic.OpenAIBaseURL)
	case config.ProviderGemini:
		gemini, err := llm.NewGeminiClient(context.Background(), ic.GeminiKey)
		if err != nil {
			return nil, err
		}
		client = gemini
	default:
		return nil, fmt.Errorf("%w: %s", utils.ErrUnsupportedProvider, ic.Provider)
	}

	lc.Append(fx.StopHook(client.Close))
	return client, nil
}
