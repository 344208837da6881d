package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/hacknight-dev/backend/scoring"
)

type criteriaFile struct {
	Criteria []scoring.Criterion `toml:"criteria"`
}

// seedCriteria replaces the configured scoring criteria with the contents
// of a TOML definition file. Every criterion is validated before any write
// happens, so a bad file changes nothing.
func seedCriteria(ctx context.Context, table *scoring.DynamoDbCriteriaTable, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read criteria file: %w", err)
	}

	var file criteriaFile
	if err := toml.Unmarshal(content, &file); err != nil {
		return fmt.Errorf("failed to parse criteria file: %w", err)
	}
	if len(file.Criteria) == 0 {
		return fmt.Errorf("criteria file %s defines no criteria", path)
	}

	for _, c := range file.Criteria {
		if err := scoring.ValidateCriterion(c); err != nil {
			return err
		}
	}

	for _, c := range file.Criteria {
		if err := table.PutCriterion(ctx, c); err != nil {
			return err
		}
		slog.Info("criterion stored", "field", c.Field, "weight", c.Weight)
	}
	return nil
}
