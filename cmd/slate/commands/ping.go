package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slate-orm/slate/pkg/runtime"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Verify the database connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := databaseURL()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		conn, err := runtime.NewEngine(url).Connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close(ctx)

		cursor := conn.Cursor()
		defer cursor.Close()

		if err := cursor.Execute(ctx, "SELECT 1;"); err != nil {
			return err
		}

		fmt.Println("connection ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
