package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database: max_conns (%d) must be >= min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if err := c.Points.validate(); err != nil {
		return fmt.Errorf("points: %w", err)
	}

	return nil
}

func (p *PointsConfig) validate() error {
	if p.UploadApprovalAward <= 0 {
		return fmt.Errorf("upload_approval_award must be > 0 (got %d)", p.UploadApprovalAward)
	}
	if p.SwapCompletionAward <= 0 {
		return fmt.Errorf("swap_completion_award must be > 0 (got %d)", p.SwapCompletionAward)
	}
	if p.HistoryPageSize <= 0 {
		return fmt.Errorf("history_page_size must be > 0 (got %d)", p.HistoryPageSize)
	}
	return nil
}
