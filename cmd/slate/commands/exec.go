package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slate-orm/slate/pkg/orm"
	"github.com/slate-orm/slate/pkg/runtime"
)

var execCmd = &cobra.Command{
	Use:   "exec <file.sql>",
	Short: "Run a SQL script inside one transaction",
	Long: `Reads a SQL script and executes its statements inside a single
transaction. Any failure rolls back the whole script.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := databaseURL()
		if err != nil {
			return err
		}

		script, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}

		ctx := cmd.Context()
		session, err := orm.Open(ctx, runtime.NewEngine(url))
		if err != nil {
			return err
		}
		defer session.Close(ctx)

		if err := session.Execute(ctx, string(script)); err != nil {
			_ = session.Rollback(ctx)
			return err
		}
		if err := session.Commit(ctx); err != nil {
			return err
		}

		fmt.Printf("executed %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
