package scoring

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/hacknight-dev/backend/applicant"
)

// NormalizedUpdate is the per-applicant output of one normalization run:
// the standardized value for every question the applicant was scored on,
// and the recomputed total z-score. It is applied as a single store update
// per applicant.
type NormalizedUpdate struct {
	ApplicantID string
	Normalized  map[string]float64
	TotalZScore float64
}

type observation struct {
	raw          float64
	applicantIdx int
	question     string
}

// Normalize standardizes every raw score against the population of scores
// its grader gave for the same question, correcting for each grader's
// personal scale. Scores are grouped by (grader, question); within a group
// the standardized value is (raw - mean) / population stddev, or 0 for the
// whole group when the stddev is 0 (identical scores carry no signal).
//
// If the same applicant/question pair was somehow scored by more than one
// grader, the group visited first (graders and questions are walked in
// sorted order, so runs are deterministic) wins and later values for the
// pair are dropped.
//
// The run is a full recomputation: given the same raw scores it reproduces
// the same standardized values, so it is safe to re-trigger at any time.
func Normalize(scored []applicant.Applicant) []NormalizedUpdate {
	// grader -> question -> observations
	groups := map[string]map[string][]observation{}
	for idx := range scored {
		scores := scored[idx].Score.Scores
		questions := make([]string, 0, len(scores))
		for question := range scores {
			questions = append(questions, question)
		}
		sort.Strings(questions)
		for _, question := range questions {
			entry := scores[question]
			grader := entry.LastUpdatedBy
			if groups[grader] == nil {
				groups[grader] = map[string][]observation{}
			}
			groups[grader][question] = append(groups[grader][question], observation{
				raw:          entry.Score,
				applicantIdx: idx,
				question:     question,
			})
		}
	}

	graders := make([]string, 0, len(groups))
	for grader := range groups {
		graders = append(graders, grader)
	}
	sort.Strings(graders)

	normalized := make([]map[string]float64, len(scored))
	for i := range normalized {
		normalized[i] = map[string]float64{}
	}

	for _, grader := range graders {
		questions := make([]string, 0, len(groups[grader]))
		for question := range groups[grader] {
			questions = append(questions, question)
		}
		sort.Strings(questions)

		for _, question := range questions {
			observations := groups[grader][question]
			raw := make([]float64, len(observations))
			for i, o := range observations {
				raw[i] = o.raw
			}
			mean, err := stats.Mean(raw)
			if err != nil {
				continue
			}
			stdDev, err := stats.StandardDeviationPopulation(raw)
			if err != nil {
				continue
			}

			for _, o := range observations {
				z := 0.0
				if stdDev != 0 {
					z = (o.raw - mean) / stdDev
				}
				target := normalized[o.applicantIdx]
				if _, taken := target[o.question]; taken {
					continue // first writer wins
				}
				target[o.question] = z
			}
		}
	}

	updates := make([]NormalizedUpdate, len(scored))
	for idx := range scored {
		sum := 0.0
		for _, z := range normalized[idx] {
			sum += z
		}
		updates[idx] = NormalizedUpdate{
			ApplicantID: scored[idx].ID,
			Normalized:  normalized[idx],
			TotalZScore: round2(sum),
		}
	}
	return updates
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RunNormalization reads the edition's scored population, standardizes it
// and commits one update per applicant. The read-then-write is not
// transactional across the population; scores changing mid-run converge on
// the next run. Per-applicant commit failures do not abort the rest of the
// run and are reported joined.
func (s *ScoringSrvc) RunNormalization(ctx context.Context, edition string) (int, error) {
	scored, err := s.repo.ListByStatus(ctx, edition, applicant.StatusScored)
	if err != nil {
		return 0, err
	}

	updates := Normalize(scored)

	var errs []error
	applied := 0
	for _, update := range updates {
		err := s.repo.ApplyNormalization(ctx, edition, update.ApplicantID, update.Normalized, update.TotalZScore)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		applied++
	}
	return applied, errors.Join(errs...)
}
