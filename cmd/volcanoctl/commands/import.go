package commands

import (
	"fmt"
	"os"

	"volcano-insurance-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func importPostalCodesCmd() *cobra.Command {
	var (
		file    string
		country string
	)

	cmd := &cobra.Command{
		Use:   "import-postal-codes",
		Short: "Replace the postal code table from a GeoNames dump",
		Long: "Reads a GeoNames postal code file (tab separated, e.g. US.txt from\n" +
			"download.geonames.org/export/zip) and replaces the postal_codes table with it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer f.Close()

			records, err := parseGeoNames(f, country)
			if err != nil {
				return err
			}
			log.Info().Str("file", file).Int("records", len(records)).Msg("parsed postal codes")

			ctx := cmd.Context()
			conn, err := pgxpool.New(ctx, cfg.DBSource)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer conn.Close()

			repo := repository.NewRepository(conn)
			n, err := repo.ReplacePostalCodes(ctx, records)
			if err != nil {
				return err
			}

			count, err := repo.CountPostalCodes(ctx)
			if err != nil {
				return err
			}
			if int64(count) != n {
				return fmt.Errorf("record count mismatch: copied %d, table has %d", n, count)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully imported %d postal codes\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the GeoNames postal code file")
	cmd.Flags().StringVar(&country, "country", "US", "only import rows for this country code")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
