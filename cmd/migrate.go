package cmd

import (
	"context"
	"fmt"
	"sync"

	"upsolve-tracker/core/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm/schema"
)

// migrateCmd creates or updates every table and checks the result.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(context.Background())
		if err != nil {
			return err
		}
		l := rt.log

		db, err := rt.connect()
		if err != nil {
			return err
		}

		for _, m := range models() {
			sch, err := schema.Parse(m, &sync.Map{}, db.NamingStrategy)
			if err != nil {
				return fmt.Errorf("failed to parse model: %w", err)
			}
			missing, err := database.MissingColumns(db, sch.Table, sch.DBNames)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return fmt.Errorf("table %s is missing columns %v", sch.Table, missing)
			}
			l.Info("Table ready", zap.String("table", sch.Table), zap.Int("columns", len(sch.DBNames)))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
