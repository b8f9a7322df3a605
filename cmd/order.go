package cmd

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emrgen/dispatch/internal/reconcile"
)

func init() {
	rootCmd.AddCommand(orderCmd)
	orderCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	orderCmd.AddCommand(showOrderCmd())
	orderCmd.AddCommand(statusOrderCmd())
}

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "dispatch order commands",
}

func showOrderCmd() *cobra.Command {
	var orderID uint

	var required = []string{"order-id"}

	command := &cobra.Command{
		Use:     "show",
		Short:   "show the correspondence matrix of a dispatch order",
		Example: "dispatch order show -d <order-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			svc := newServices()
			ctx := context.Background()

			order, err := svc.dispatch.GetDispatchOrder(ctx, orderID)
			if err != nil {
				logrus.Error(err)
				return
			}

			matrix, err := svc.dispatch.Matrix(ctx, orderID)
			if err != nil {
				logrus.Error(err)
				return
			}

			color.Cyan("%s  %s", order.DispatchCode, order.ProjectName)

			renderRows("incoming", matrix.Incoming)
			renderRows("outgoing", matrix.Outgoing)
			renderUnassigned("unassigned incoming", matrix.UnassignedIncoming)
			renderUnassigned("unassigned outgoing", matrix.UnassignedOutgoing)

			advisories, err := svc.dispatch.PaymentAdvisories(ctx, orderID)
			if err != nil {
				logrus.Error(err)
				return
			}
			for _, advisory := range advisories {
				color.Yellow("payment recorded under code %s outside the order's categories (amount %d)",
					advisory.Code, advisory.Amount)
			}
		},
	}

	command.Flags().UintVarP(&orderID, "order-id", "d", 0, "dispatch order id (required)")
	command.Flags().SortFlags = false

	return command
}

func statusOrderCmd() *cobra.Command {
	var orderID uint
	var category string

	var required = []string{"order-id"}

	command := &cobra.Command{
		Use:     "status",
		Short:   "derive the lifecycle status of a dispatch order",
		Example: "dispatch order status -d <order-id> -c <category-code>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			svc := newServices()
			status, err := svc.dispatch.Status(context.Background(), orderID, category)
			if err != nil {
				logrus.Error(err)
				return
			}

			switch status {
			case reconcile.StatusOverdue:
				color.Red(string(status))
			case reconcile.StatusCompleted:
				color.Green(string(status))
			default:
				color.White(string(status))
			}
		},
	}

	command.Flags().UintVarP(&orderID, "order-id", "d", 0, "dispatch order id (required)")
	command.Flags().StringVarP(&category, "category", "c", "", "restrict to one category code")
	command.Flags().SortFlags = false

	return command
}

func renderRows(title string, rows []reconcile.MatrixRow) {
	if len(rows) == 0 {
		return
	}

	color.White("%s:", title)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Link", "Doc", "Code", "Subject", "Date", "Events"})
	for _, row := range rows {
		table.Append([]string{
			strconv.FormatUint(uint64(row.Link.ID), 10),
			strconv.FormatUint(uint64(row.Link.DocumentID), 10),
			row.Link.DocCode,
			row.Link.Subject,
			formatDate(row.Link.DocDate),
			strconv.Itoa(len(row.Events)),
		})
	}
	table.Render()
}

func renderUnassigned(title string, docs []reconcile.UnassignedDocument) {
	if len(docs) == 0 {
		return
	}

	color.Yellow("%s:", title)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Link", "Doc", "Code", "Subject", "Date"})
	for _, doc := range docs {
		table.Append([]string{
			strconv.FormatUint(uint64(doc.LinkID), 10),
			strconv.FormatUint(uint64(doc.DocumentID), 10),
			doc.DocCode,
			doc.Subject,
			formatDate(doc.DocDate),
		})
	}
	table.Render()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
