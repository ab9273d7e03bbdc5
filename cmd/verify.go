package main

import (
	"context"
	"fmt"
	"os"

	"gateway/internal/config"

	"github.com/spf13/cobra"
)

// verifyCommand performs a one-shot license verification against the CMS and
// prints the resolved website identity.
func verifyCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify the configured license key against the CMS",
		Run: func(_ *cobra.Command, _ []string) {
			ctx := context.Background()

			client := newClient(ctx, cfg)
			if err := client.Activate(ctx); err != nil {
				fmt.Println("license verification failed:", err) //nolint: forbidigo
				os.Exit(1)
			}

			website := client.Website()
			//nolint: forbidigo
			fmt.Printf("license verified for website %q (id %s, url %q)\n",
				website.Name, website.ID, website.URL)
		},
	}
}
