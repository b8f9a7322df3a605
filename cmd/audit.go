package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emrgen/dispatch/internal/jobs"
)

func init() {
	rootCmd.AddCommand(auditCmd())
}

func auditCmd() *cobra.Command {
	var watch bool

	command := &cobra.Command{
		Use:     "audit",
		Short:   "report stored link types that disagree with the classifier",
		Example: "dispatch audit [--watch]",
		Run: func(cmd *cobra.Command, args []string) {
			svc := newServices()
			audit := jobs.NewLinkAudit(svc.cnf.AuditSchedule, svc.store, svc.classifier)

			if watch {
				executor := jobs.NewTaskExecutor([]jobs.CronJob{audit})
				executor.Run()
				defer executor.Stop()

				stop := make(chan os.Signal, 1)
				signal.Notify(stop, os.Interrupt)
				<-stop
				return
			}

			drifted, total, err := audit.Audit(context.Background())
			if err != nil {
				logrus.Error(err)
				return
			}

			if drifted > 0 {
				color.Yellow("%d of %d links carry a stale link_type", drifted, total)
				return
			}
			color.Green("%d links checked, no drift", total)
		},
	}

	command.Flags().BoolVarP(&watch, "watch", "w", false, "keep auditing on the configured schedule")
	command.Flags().SortFlags = false

	return command
}
