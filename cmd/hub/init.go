package hub

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/habit-hub/internal/service"
	"github.com/saadjs/habit-hub/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data files if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		docs := documentStore()
		if res := docs.Load(); res.Status == store.StatusMissing {
			if err := docs.Save(res.Document); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", docs.Path())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Using %s (%s)\n", docs.Path(), res.Status)
		}

		sessions := sessionStore()
		if res := sessions.Load(); res.Status == store.StatusMissing {
			if err := sessions.Save(res.Document); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", sessions.Path())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Using %s (%s)\n", sessions.Path(), res.Status)
		}

		if !service.HasProfile(loadDocument().Profile) {
			fmt.Fprintln(cmd.OutOrStdout(), "Next: hub profile set --name <name> --weight <kg>")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
