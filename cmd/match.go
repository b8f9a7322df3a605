package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emrgen/dispatch/internal/service"
)

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	matchCmd.AddCommand(proposeCmd())
	matchCmd.AddCommand(confirmCmd())
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "auto-match commands",
}

func proposeCmd() *cobra.Command {
	var orderID uint
	var projectName string

	var required = []string{"order-id", "project"}

	command := &cobra.Command{
		Use:     "propose",
		Short:   "list linkable documents matched from history",
		Example: "dispatch match propose -d <order-id> -p <project-name>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			svc := newServices()
			proposal, err := svc.match.Propose(context.Background(), orderID, projectName)
			if err != nil {
				logrus.Error(err)
				return
			}

			if proposal.Empty() {
				color.Green("nothing new to link")
				return
			}

			renderProposal(proposal)
		},
	}

	command.Flags().UintVarP(&orderID, "order-id", "d", 0, "dispatch order id (required)")
	command.Flags().StringVarP(&projectName, "project", "p", "", "project name (required)")
	command.Flags().SortFlags = false

	return command
}

func confirmCmd() *cobra.Command {
	var orderID uint
	var projectName string
	var exclude []uint

	var required = []string{"order-id", "project"}

	command := &cobra.Command{
		Use:     "confirm",
		Short:   "link the proposed documents, minus any excluded ids",
		Example: "dispatch match confirm -d <order-id> -p <project-name> -x <doc-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			svc := newServices()
			ctx := context.Background()

			proposal, err := svc.match.Propose(ctx, orderID, projectName)
			if err != nil {
				logrus.Error(err)
				return
			}

			if proposal.Empty() {
				color.Green("nothing new to link")
				return
			}

			excluded := make(map[uint]bool, len(exclude))
			for _, id := range exclude {
				excluded[id] = true
			}

			picks := proposal.Items()
			for i := range picks {
				if excluded[picks[i].DocumentID] {
					picks[i].Selected = false
				}
			}

			tally, err := svc.match.Confirm(ctx, orderID, picks)
			if err != nil {
				logrus.Error(err)
				return
			}

			if tally.FailCount > 0 {
				color.Yellow("%d documents linked, %d failed", tally.SuccessCount, tally.FailCount)
				return
			}
			color.Green("%d documents linked", tally.SuccessCount)
		},
	}

	command.Flags().UintVarP(&orderID, "order-id", "d", 0, "dispatch order id (required)")
	command.Flags().StringVarP(&projectName, "project", "p", "", "project name (required)")
	command.Flags().UintSliceVarP(&exclude, "exclude", "x", nil, "document ids to leave unlinked")
	command.Flags().SortFlags = false

	return command
}

func renderProposal(proposal *service.Proposal) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Doc", "Number", "Subject", "Date", "Type"})
	for _, pick := range proposal.Items() {
		table.Append([]string{
			strconv.FormatUint(uint64(pick.DocumentID), 10),
			pick.DocNumber,
			pick.Subject,
			formatDate(pick.DocDate),
			string(pick.LinkType),
		})
	}
	table.Render()
}
