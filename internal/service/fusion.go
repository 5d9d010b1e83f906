package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Harshitk-cp/evidence/internal/domain"
	"github.com/Harshitk-cp/evidence/internal/fusion"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnnamedSource = errors.New("source name is required")

type FusionService struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewFusionService(logger *zap.Logger) *FusionService {
	return &FusionService{
		logger: logger,
		now:    time.Now,
	}
}

// Fuse runs rule over sources in a single left fold. The combined assignment
// and conflict match what the rule's multi-source combination reports; Steps
// additionally records every pairwise conflict of the fold.
func (s *FusionService) Fuse(rule fusion.Rule, sources []domain.Source) (*domain.FusionResult, error) {
	if !fusion.ValidRule(string(rule)) {
		return nil, fmt.Errorf("%w: %q", fusion.ErrUnknownRule, rule)
	}
	if len(sources) < 2 {
		return nil, fusion.ErrInsufficientSources
	}

	result := &domain.FusionResult{
		ID:      uuid.New(),
		Rule:    string(rule),
		Sources: make([]string, 0, len(sources)),
	}
	for _, src := range sources {
		if src.Name == "" {
			return nil, ErrUnnamedSource
		}
		result.Sources = append(result.Sources, src.Name)
	}

	log := s.logger.With(
		zap.String("fusion_id", result.ID.String()),
		zap.String("rule", string(rule)),
	)
	start := s.now()

	combined, steps, err := s.trace(log, rule, sources)
	if err != nil {
		return nil, err
	}
	result.Combined = combined
	result.Steps = steps

	// Both rules report the pairwise conflict for two sources and none
	// for longer folds.
	if len(steps) == 1 {
		result.Conflict = steps[0].Conflict
	}
	result.Duration = s.now().Sub(start)

	log.Info("fusion completed",
		zap.Int("sources", len(sources)),
		zap.Int("focal_elements", result.Combined.Len()),
		zap.Float64("conflict", result.Conflict),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// trace folds rule pairwise over sources, recording each step's conflict,
// and returns the final assignment.
func (s *FusionService) trace(log *zap.Logger, rule fusion.Rule, sources []domain.Source) (domain.BeliefMass, []domain.FusionStep, error) {
	steps := make([]domain.FusionStep, 0, len(sources)-1)
	acc := sources[0].Belief

	for i, src := range sources[1:] {
		var (
			conflict float64
			err      error
		)
		switch rule {
		case fusion.RuleDempster:
			acc, conflict, err = fusion.Dempster(acc, src.Belief)
		case fusion.RulePCR5:
			acc, conflict = fusion.PCR5(acc, src.Belief)
		}
		if err != nil {
			log.Warn("fusion aborted",
				zap.Int("step", i+1),
				zap.String("source", src.Name),
				zap.Float64("conflict", conflict),
				zap.Error(err))
			return domain.BeliefMass{}, nil, fmt.Errorf("step %d (%s): %w", i+1, src.Name, err)
		}

		log.Debug("fusion step",
			zap.Int("step", i+1),
			zap.String("source", src.Name),
			zap.Float64("conflict", conflict),
			zap.Int("focal_elements", acc.Len()))

		steps = append(steps, domain.FusionStep{
			Step:     i + 1,
			Source:   src.Name,
			Conflict: conflict,
		})
	}
	return acc, steps, nil
}

// Comparison holds the outcome of one rule in Compare. Err is set when the
// rule could not fuse the sources, e.g. Dempster on total conflict.
type Comparison struct {
	Rule   fusion.Rule
	Result *domain.FusionResult
	Err    error
}

// Compare runs every supported rule over the same sources. A failure of
// one rule does not stop the others.
func (s *FusionService) Compare(sources []domain.Source) []Comparison {
	out := make([]Comparison, 0, len(fusion.Rules()))
	for _, rule := range fusion.Rules() {
		res, err := s.Fuse(rule, sources)
		out = append(out, Comparison{Rule: rule, Result: res, Err: err})
	}
	return out
}
