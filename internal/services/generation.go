package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tastecraft/tastecraft-api/internal/config"
	"github.com/tastecraft/tastecraft-api/internal/llm"
	"github.com/tastecraft/tastecraft-api/internal/metrics"
	"github.com/tastecraft/tastecraft-api/internal/models"
	"github.com/tastecraft/tastecraft-api/internal/observability"
	"github.com/tastecraft/tastecraft-api/internal/prompt"
	"gorm.io/gorm"
)

// ProviderSource resolves a text-generation provider for a request.
// llm.ProviderFactory satisfies this; tests substitute a stub so the
// prompt builder / response parser pair runs without network access.
type ProviderSource interface {
	GetProvider(ctx context.Context, model, providerName string) (llm.Provider, error)
}

// GenerationService is the boundary the UI talks to: it builds the
// prompt, calls the provider, parses the reply, and records
// observability data along the way.
type GenerationService struct {
	cfg           *config.Config
	providers     ProviderSource
	prompts       *prompt.Builder
	cache         *resultCache
	db            *gorm.DB // nil when history is disabled
	cloudwatch    *metrics.Client
	sentryMetrics *metrics.SentryMetrics
}

// NewGenerationService creates a new generation service. db and
// cloudwatch may be nil.
func NewGenerationService(
	cfg *config.Config,
	providers ProviderSource,
	db *gorm.DB,
	cloudwatch *metrics.Client,
) *GenerationService {
	return &GenerationService{
		cfg:           cfg,
		providers:     providers,
		prompts:       prompt.NewBuilder(),
		cache:         newResultCache(time.Duration(cfg.CacheTTLSeconds) * time.Second),
		db:            db,
		cloudwatch:    cloudwatch,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

// GenerateNames produces up to five name/tagline suggestions for the
// request. Fatal errors are *GenerationError; a short result is not an
// error.
func (s *GenerationService) GenerateNames(ctx context.Context, req models.GenerationRequest) ([]models.NameSuggestion, error) {
	req.Kind = models.KindNamesAndTaglines
	text, err := s.generateText(ctx, &req)
	if err != nil {
		return nil, err
	}
	return ParseNames(text), nil
}

// GenerateMenu produces a parsed four-section menu for the request
func (s *GenerationService) GenerateMenu(ctx context.Context, req models.GenerationRequest) (*models.MenuResult, error) {
	req.Kind = models.KindMenu
	text, err := s.generateText(ctx, &req)
	if err != nil {
		return nil, err
	}
	return ParseMenu(text), nil
}

// generateText runs one upstream call and returns the raw reply text.
// The raw text is memoized per (country, style, kind, model); parsing is
// pure and cheap, so cache hits are re-parsed on the way out.
func (s *GenerationService) generateText(ctx context.Context, req *models.GenerationRequest) (string, error) {
	if strings.TrimSpace(req.Country) == "" || strings.TrimSpace(req.Style) == "" {
		return "", ErrInvalidRequest
	}

	modelName := req.Model
	if modelName == "" {
		modelName = s.cfg.DefaultModel
	}

	key := cacheKey(*req, modelName)
	if cached, ok := s.cache.get(key); ok {
		log.Printf("💾 Cache hit for %s (%s, %s)", req.Kind, req.Country, req.Style)
		return cached.(string), nil
	}

	provider, err := s.providers.GetProvider(ctx, modelName, req.Provider)
	if err != nil {
		return "", newUpstreamError(err)
	}

	promptText := s.prompts.ForKind(req.Kind, req.Country, req.Style)

	trace := observability.GetClient().StartTrace(ctx, "generate."+string(req.Kind), map[string]interface{}{
		"country": req.Country,
		"style":   req.Style,
		"model":   modelName,
	})
	defer trace.Finish()
	generation := trace.Generation(string(req.Kind), nil)

	startTime := time.Now()
	resp, err := provider.Generate(ctx, &llm.GenerationRequest{
		Model:        modelName,
		SystemPrompt: s.prompts.SystemPrompt(),
		Prompt:       promptText,
	})
	duration := time.Since(startTime)

	if err != nil {
		genErr := newUpstreamError(err)
		generation.SetLevel("ERROR")
		generation.Finish()
		s.recordMetrics(ctx, modelName, llm.TokenUsage{}, duration, false)
		s.recordLog(req, modelName, provider.Name(), llm.TokenUsage{}, duration, genErr)
		return "", genErr
	}

	if strings.TrimSpace(resp.Text) == "" {
		genErr := newEmptyResponseError()
		generation.SetLevel("ERROR")
		generation.Finish()
		s.recordMetrics(ctx, modelName, resp.Usage, duration, false)
		s.recordLog(req, modelName, provider.Name(), resp.Usage, duration, genErr)
		return "", genErr
	}

	generation.LogTextGeneration(modelName, promptText, resp.Text, resp.Usage)
	generation.Finish()

	s.recordMetrics(ctx, modelName, resp.Usage, duration, true)
	s.recordLog(req, modelName, provider.Name(), resp.Usage, duration, nil)

	s.cache.put(key, resp.Text)
	return resp.Text, nil
}

func (s *GenerationService) recordMetrics(
	ctx context.Context,
	modelName string,
	usage llm.TokenUsage,
	duration time.Duration,
	success bool,
) {
	s.sentryMetrics.RecordGenerationDuration(ctx, duration, success)
	if usage.TotalTokens > 0 {
		s.sentryMetrics.RecordTokenUsage(ctx, modelName, usage.TotalTokens, usage.InputTokens, usage.OutputTokens)
	}

	if s.cloudwatch != nil {
		s.cloudwatch.RecordGenerationDuration(duration, success)
		if usage.TotalTokens > 0 {
			s.cloudwatch.RecordTokenUsage(modelName, usage.TotalTokens, usage.InputTokens, usage.OutputTokens)
		}
	}
}

// recordLog writes one row of generation history. Best effort: failures
// are logged, never surfaced to the caller.
func (s *GenerationService) recordLog(
	req *models.GenerationRequest,
	modelName, providerName string,
	usage llm.TokenUsage,
	duration time.Duration,
	genErr *GenerationError,
) {
	if s.db == nil {
		return
	}

	entry := models.GenerationLog{
		RequestID:    uuid.New().String(),
		Country:      req.Country,
		Style:        req.Style,
		Kind:         req.Kind,
		Model:        modelName,
		Provider:     providerName,
		Success:      genErr == nil,
		DurationMS:   duration.Milliseconds(),
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		TotalTokens:  usage.TotalTokens,
		CostUSD:      observability.CalculateCost(modelName, usage),
	}
	if genErr != nil {
		entry.ErrorKind = string(genErr.Kind)
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("⚠️  Failed to record generation log: %v", err)
	}
}

// RecentLogs returns the most recent generation history entries
func (s *GenerationService) RecentLogs(limit int) ([]models.GenerationLog, error) {
	if s.db == nil {
		return nil, gorm.ErrInvalidDB
	}

	var logs []models.GenerationLog
	err := s.db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

// HistoryEnabled reports whether generation history is recorded
func (s *GenerationService) HistoryEnabled() bool {
	return s.db != nil
}
