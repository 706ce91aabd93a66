package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/rgracey/mcp-npm/internal/config"
	"github.com/rgracey/mcp-npm/internal/npm"
)

// Check validates the connection configuration and performs one
// authentication exchange to confirm the proxy manager is reachable.
func Check() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client := npm.NewClient(cfg)
	if err := client.Verify(ctx); err != nil {
		return fmt.Errorf("connection check against %s failed: %w", cfg, err)
	}

	fmt.Printf("Connected to %s\n", cfg)
	return nil
}
