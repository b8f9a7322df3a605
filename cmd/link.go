package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(linkCmd)
	linkCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	linkCmd.AddCommand(addDocLinkCmd())
	linkCmd.AddCommand(removeDocLinkCmd())
	linkCmd.AddCommand(addProjectLinkCmd())
	linkCmd.AddCommand(removeProjectLinkCmd())
	linkCmd.AddCommand(listLinksCmd())
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "link commands",
}

func addDocLinkCmd() *cobra.Command {
	var orderID uint
	var docID uint

	var required = []string{"order-id", "doc-id"}

	command := &cobra.Command{
		Use:     "add-doc",
		Short:   "link a document to a dispatch order",
		Example: "dispatch link add-doc -d <order-id> -c <doc-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			svc := newServices()
			link, err := svc.links.LinkDocument(context.Background(), orderID, docID, "")
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("linked document %d as %s (link id %d)", docID, link.LinkType, link.ID)
		},
	}

	command.Flags().UintVarP(&orderID, "order-id", "d", 0, "dispatch order id (required)")
	command.Flags().UintVarP(&docID, "doc-id", "c", 0, "document id (required)")
	command.Flags().SortFlags = false

	return command
}

func removeDocLinkCmd() *cobra.Command {
	var orderID uint
	var linkID uint

	var required = []string{"order-id", "link-id"}

	command := &cobra.Command{
		Use:     "remove-doc",
		Short:   "remove a document link by its link id",
		Example: "dispatch link remove-doc -d <order-id> -l <link-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			svc := newServices()
			if err := svc.links.UnlinkDocument(context.Background(), orderID, linkID); err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("removed document link %d", linkID)
		},
	}

	command.Flags().UintVarP(&orderID, "order-id", "d", 0, "dispatch order id (required)")
	command.Flags().UintVarP(&linkID, "link-id", "l", 0, "link id (required)")
	command.Flags().SortFlags = false

	return command
}

func addProjectLinkCmd() *cobra.Command {
	var orderID uint
	var projectID uint

	var required = []string{"order-id", "project-id"}

	command := &cobra.Command{
		Use:     "add-project",
		Short:   "link a project to a dispatch order",
		Example: "dispatch link add-project -d <order-id> -p <project-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			svc := newServices()
			link, err := svc.links.LinkProject(context.Background(), orderID, projectID)
			if err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("linked project %d (link id %d)", projectID, link.ID)
		},
	}

	command.Flags().UintVarP(&orderID, "order-id", "d", 0, "dispatch order id (required)")
	command.Flags().UintVarP(&projectID, "project-id", "p", 0, "project id (required)")
	command.Flags().SortFlags = false

	return command
}

func removeProjectLinkCmd() *cobra.Command {
	var orderID uint
	var linkID uint

	var required = []string{"order-id", "link-id"}

	command := &cobra.Command{
		Use:     "remove-project",
		Short:   "remove a project link by its link id",
		Example: "dispatch link remove-project -d <order-id> -l <link-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			svc := newServices()
			if err := svc.links.UnlinkProject(context.Background(), orderID, linkID); err != nil {
				logrus.Error(err)
				return
			}

			logrus.Infof("removed project link %d", linkID)
		},
	}

	command.Flags().UintVarP(&orderID, "order-id", "d", 0, "dispatch order id (required)")
	command.Flags().UintVarP(&linkID, "link-id", "l", 0, "link id (required)")
	command.Flags().SortFlags = false

	return command
}

func listLinksCmd() *cobra.Command {
	var orderID uint

	var required = []string{"order-id"}

	command := &cobra.Command{
		Use:     "list",
		Short:   "list the links of a dispatch order",
		Example: "dispatch link list -d <order-id>",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			svc := newServices()
			ctx := context.Background()

			docLinks, err := svc.store.ListDocumentLinks(ctx, orderID)
			if err != nil {
				logrus.Error(err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Link", "Doc", "Code", "Type", "Date"})
			for _, link := range docLinks {
				table.Append([]string{
					strconv.FormatUint(uint64(link.ID), 10),
					strconv.FormatUint(uint64(link.DocumentID), 10),
					link.DocCode,
					string(svc.classifier.Classify(link.DocCode)),
					formatDate(link.DocDate),
				})
			}
			table.Render()

			projectLinks, err := svc.store.ListProjectLinks(ctx, orderID)
			if err != nil {
				logrus.Error(err)
				return
			}

			table = tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Link", "Project", "Name", "District"})
			for _, link := range projectLinks {
				table.Append([]string{
					strconv.FormatUint(uint64(link.ID), 10),
					strconv.FormatUint(uint64(link.ProjectID), 10),
					link.ProjectName,
					link.District,
				})
			}
			table.Render()
		},
	}

	command.Flags().UintVarP(&orderID, "order-id", "d", 0, "dispatch order id (required)")
	command.Flags().SortFlags = false

	return command
}
