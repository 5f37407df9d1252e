package cli

import (
	"fmt"

	"github.com/ncc-portal/order-review/internal/enum"
	"github.com/ncc-portal/order-review/internal/fixture"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		out  string
		kind string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a sample order or draft fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fixture.Sample(kind)
			if err != nil {
				return err
			}
			if err := fixture.Save(out, f); err != nil {
				return err
			}
			a.log.Info("fixture written", zap.String("kind", kind), zap.String("path", out))
			fmt.Fprintf(cmd.OutOrStdout(), "Seed complete: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Path of the fixture to write")
	cmd.Flags().StringVar(&kind, "kind", enum.ReviewKindOrder, "Fixture kind: order or draft")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
