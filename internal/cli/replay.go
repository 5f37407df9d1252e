package cli

import (
	"fmt"

	"github.com/ncc-portal/order-review/internal/enum"
	"github.com/ncc-portal/order-review/internal/export"
	"github.com/ncc-portal/order-review/internal/fixture"
	"github.com/ncc-portal/order-review/internal/replay"
	"github.com/ncc-portal/order-review/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newReplayCmd(a *app) *cobra.Command {
	var (
		fixturePath string
		scriptPath  string
		format      string
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Apply a script of user actions and export the outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadState(fixturePath)
			if err != nil {
				return err
			}
			script, err := fixture.LoadScript(scriptPath)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = a.cfg.ExportDir
			}

			sink, err := export.NewSink(format, outDir, export.LookupItems(s.Items), a.log)
			if err != nil {
				return err
			}
			svc := service.NewReviewService(sink, a.log)
			session := svc.NewSession(s)
			a.log.Debug("replay started",
				zap.String("session_id", session.ID.String()),
				zap.Int("steps", len(script.Steps)),
			)

			res, err := replay.Run(cmd.Context(), session, script.Steps, a.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			a.printView(out, res.Final)
			fmt.Fprintln(out)
			for _, b := range res.Blocked {
				fmt.Fprintf(out, "Bị chặn: %v\n", b)
			}
			fmt.Fprintf(out, "Đã áp dụng: %d, bỏ qua: %d\n", res.Applied, res.Dropped)
			if res.Outcome == "" {
				fmt.Fprintln(out, "Kết quả: chưa gửi")
				return nil
			}
			fmt.Fprintf(out, "Kết quả: %s\n", res.Outcome)
			if w, ok := sink.(interface{ Written() []string }); ok {
				for _, p := range w.Written() {
					fmt.Fprintf(out, "Tệp: %s\n", p)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fixturePath, "fixture", "", "Order or draft fixture (YAML)")
	cmd.Flags().StringVar(&scriptPath, "script", "", "Action script (YAML)")
	cmd.Flags().StringVar(&format, "export", enum.ExportJSON, "Output format: json or xlsx")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default EXPORT_DIR)")
	_ = cmd.MarkFlagRequired("fixture")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}
