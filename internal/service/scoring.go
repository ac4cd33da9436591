package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/platform/logger"
)

// computeResult derives the per-dimension averages for one session from the
// stored responses, questions, and dimensions at call time. Nothing is
// cached or incrementally maintained, so the computation is side-effect-free
// and safe to retry.
//
// Only responses carrying a numeric value are scored. A response whose
// question no longer resolves is dropped silently, and a dimension without a
// stored record keeps its raw ID as the display name.
func (s *sessionServiceImpl) computeResult(ctx context.Context, sessionID uuid.UUID) ([]DimensionScore, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	responses, err := s.responseStore.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}

	questions, err := s.questionStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	questionDimension := make(map[uuid.UUID]uuid.UUID, len(questions))
	for _, q := range questions {
		questionDimension[q.ID] = q.DimensionID
	}

	type accumulator struct {
		sum   int
		count int
	}
	groups := make(map[uuid.UUID]*accumulator)
	dropped := 0

	for _, r := range responses {
		if !r.IsScored() {
			continue
		}

		dimensionID, ok := questionDimension[r.QuestionID]
		if !ok {
			dropped++
			continue
		}

		acc := groups[dimensionID]
		if acc == nil {
			acc = &accumulator{}
			groups[dimensionID] = acc
		}
		acc.sum += *r.AnswerValue
		acc.count++
	}

	if dropped > 0 {
		log.Debug("dropped responses with unresolvable questions",
			slog.String("session_id", sessionID.String()),
			slog.Int("count", dropped))
	}

	dimensions, err := s.dimensionStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dimensions: %w", err)
	}
	dimensionName := make(map[uuid.UUID]string, len(dimensions))
	for _, d := range dimensions {
		dimensionName[d.ID] = d.Name
	}

	result := make([]DimensionScore, 0, len(groups))
	for dimensionID, acc := range groups {
		name, ok := dimensionName[dimensionID]
		if !ok {
			name = dimensionID.String()
		}

		result = append(result, DimensionScore{
			DimensionID:   dimensionID,
			DimensionName: name,
			Average:       roundScore(float64(acc.sum) / float64(acc.count)),
		})
	}

	return result, nil
}

// roundScore rounds an average to two decimal places, half away from zero.
func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
