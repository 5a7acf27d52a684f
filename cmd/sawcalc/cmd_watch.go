package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Peminatan/internal/hermes"
)

func newWatchCommand() *cobra.Command {
	var (
		url     string
		subject string
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print events published by the peminatan service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client, err := hermes.NewNATSClient(ctx, url, "sawcalc", slog.Default())
			if err != nil {
				return err
			}
			defer client.Close()

			out := cmd.OutOrStdout()
			err = client.Subscribe(subject, func(subj string, data []byte) {
				var buf bytes.Buffer
				if json.Indent(&buf, data, "", "  ") != nil {
					buf.Reset()
					buf.Write(data)
				}
				fmt.Fprintf(out, "%s\n%s\n", subj, buf.String())
			})
			if err != nil {
				return fmt.Errorf("subscribe %s: %w", subject, err)
			}

			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "nats://localhost:4222", "NATS server URL")
	cmd.Flags().StringVarP(&subject, "subject", "s", hermes.SubjectAll, "Subject to follow")

	return cmd
}
