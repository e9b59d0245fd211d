package store

// #region imports
import (
	"fmt"
	"time"

	"github.com/driftlab/stance-engine/internal/operator"
)

// #endregion

// #region record-performance

// RecordPerformance persists one operator application's scored outcome.
func (s *Store) RecordPerformance(rec PerformanceRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO operator_performance
		 (operator_name, trigger_type, transformation_score, coherence_score, drift_cost, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Operator, string(rec.TriggerType),
		rec.Transformation, rec.Coherence, rec.DriftCost,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert performance: %w", err)
	}
	return nil
}

// #endregion

// #region effectiveness

// EffectivenessWeight returns a planner weight for one operator, blending a
// neutral prior with observed transformation-per-drift as usage accumulates.
// Confidence saturates at 10 recorded uses; an operator with no history gets
// exactly 1.0 so unknown operators are neither favored nor punished.
func (s *Store) EffectivenessWeight(name operator.Name) (float64, error) {
	rows, err := s.db.Query(
		`SELECT transformation_score, drift_cost
		 FROM operator_performance WHERE operator_name = ?`,
		string(name),
	)
	if err != nil {
		return 0, fmt.Errorf("query performance: %w", err)
	}
	defer rows.Close()

	var sum float64
	var count int
	for rows.Next() {
		var transformation, driftCost int
		if err := rows.Scan(&transformation, &driftCost); err != nil {
			return 0, fmt.Errorf("scan performance: %w", err)
		}
		if driftCost <= 0 {
			driftCost = 1
		}
		sum += float64(transformation) / float64(driftCost)
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if count == 0 {
		return 1.0, nil
	}

	confidence := float64(count) / 10.0
	if confidence > 1.0 {
		confidence = 1.0
	}
	avgEffectiveness := sum / float64(count)
	return (1-confidence)*1.0 + confidence*avgEffectiveness, nil
}

// EffectivenessWeights computes planner weights for every named operator.
func (s *Store) EffectivenessWeights(names []operator.Name) (map[operator.Name]float64, error) {
	weights := make(map[operator.Name]float64, len(names))
	for _, n := range names {
		w, err := s.EffectivenessWeight(n)
		if err != nil {
			return nil, err
		}
		weights[n] = w
	}
	return weights, nil
}

// #endregion
