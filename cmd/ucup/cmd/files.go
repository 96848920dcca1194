package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newtype0092/uploadcare-go"
	"github.com/newtype0092/uploadcare-go/uctypes"
)

var (
	listLimit    int
	listOrdering string
	listFrom     string
	listStored   bool
	listRemoved  bool
)

var infoCmd = &cobra.Command{
	Use:   "info <uuid>",
	Args:  cobra.ExactArgs(1),
	Short: "Show the metadata of an uploaded file",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		info, err := client.FileInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "uuid:     %s\n", info.UUID)
		fmt.Fprintf(out, "filename: %s\n", info.OriginalFilename)
		fmt.Fprintf(out, "type:     %s\n", info.MimeType)
		fmt.Fprintf(out, "size:     %d\n", info.Size)
		fmt.Fprintf(out, "uploaded: %s\n", info.DatetimeUploaded)
		if info.DatetimeStored != "" {
			fmt.Fprintf(out, "stored:   %s\n", info.DatetimeStored)
		}
		if info.DatetimeRemoved != "" {
			fmt.Fprintf(out, "removed:  %s\n", info.DatetimeRemoved)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the project's files",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		opts := []uctypes.ListFilesOption{}
		if listLimit > 0 {
			opts = append(opts, ucare.WithLimit(listLimit))
		}
		if listOrdering != "" {
			opts = append(opts, ucare.WithOrdering(listOrdering))
		}
		if listFrom != "" {
			opts = append(opts, ucare.WithFrom(listFrom))
		}
		if listStored {
			opts = append(opts, ucare.WithStored())
		}
		if listRemoved {
			opts = append(opts, ucare.WithRemoved())
		}

		page, err := client.ListFiles(cmd.Context(), opts...)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, f := range page.Results {
			fmt.Fprintf(out, "%s\t%d\t%s\n", f.UUID, f.Size, f.OriginalFilename)
		}
		if page.Next != "" {
			fmt.Fprintf(out, "next: --from %s\n", page.Next)
		}
		return nil
	},
}

var storeCmd = &cobra.Command{
	Use:   "store <uuid>...",
	Args:  cobra.MinimumNArgs(1),
	Short: "Make temporary files permanent",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		for _, id := range args {
			if _, err := client.StoreFile(cmd.Context(), id); err != nil {
				return fmt.Errorf("storing %s: %w", id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy <uuid>",
	Args:  cobra.ExactArgs(1),
	Short: "Create a project-local copy of a stored file",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		copied, err := client.CopyFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), copied.UUID)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <uuid>...",
	Args:  cobra.MinimumNArgs(1),
	Short: "Delete uploaded files",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		for _, id := range args {
			if err := client.DeleteFile(cmd.Context(), id); err != nil {
				return fmt.Errorf("deleting %s: %w", id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

var groupCmd = &cobra.Command{
	Use:   "group <uuid>...",
	Args:  cobra.MinimumNArgs(1),
	Short: "Assemble uploaded files into a group",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		group, err := client.CreateGroup(cmd.Context(), args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), group.ID)
		return nil
	},
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Show the project the configured keys belong to",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		project, err := client.ProjectInfo(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "name:      %s\n", project.Name)
		fmt.Fprintf(out, "pub_key:   %s\n", project.PubKey)
		fmt.Fprintf(out, "autostore: %t\n", project.AutostoreEnabled)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 100, "files per page")
	listCmd.Flags().StringVar(&listOrdering, "ordering", "", "result ordering, e.g. -datetime_uploaded")
	listCmd.Flags().StringVar(&listFrom, "from", "", "pagination cursor from a previous page")
	listCmd.Flags().BoolVar(&listStored, "stored", false, "only stored files")
	listCmd.Flags().BoolVar(&listRemoved, "removed", false, "only removed files")

	rootCmd.AddCommand(infoCmd, listCmd, storeCmd, copyCmd, deleteCmd, groupCmd, projectCmd)
}
