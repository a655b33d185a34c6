package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rangeroper/healthcare-scheduler/internal/app"
	"github.com/rangeroper/healthcare-scheduler/internal/clock"
	"github.com/rangeroper/healthcare-scheduler/internal/config"
	domain "github.com/rangeroper/healthcare-scheduler/internal/domain/appointment"
	"github.com/rangeroper/healthcare-scheduler/internal/domain/records"
	"github.com/rangeroper/healthcare-scheduler/internal/infra/cache"
	"github.com/rangeroper/healthcare-scheduler/internal/logger"
	apptuc "github.com/rangeroper/healthcare-scheduler/internal/usecase/appointment"
)

var dataDir string

func main() {
	rootCmd := &cobra.Command{
		Use:          "schedulerctl",
		Short:        "Inspect provider availability and seed scheduler data",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "JSON store directory (overrides DATA_DIR)")

	rootCmd.AddCommand(slotsCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// openStore loads config, applies --data-dir and opens the store.
func openStore() (records.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if dataDir != "" {
		cfg.StoreDriver = config.StoreJSON
		cfg.BlobDriver = config.BlobDisk
		cfg.DataDir = dataDir
	}

	zl, err := logger.New(false, "warn")
	if err != nil {
		return nil, nil, err
	}

	store, closeFn, err := app.OpenStore(cfg, zl)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {
		closeFn()
		_ = zl.Sync()
	}, nil
}

func availabilityInput(providerID, date string) (domain.AvailabilityInput, error) {
	d, err := clock.ParseDate(date)
	if err != nil {
		return domain.AvailabilityInput{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
	}
	return domain.AvailabilityInput{ProviderID: providerID, Date: d}, nil
}

func slotsCmd() *cobra.Command {
	var providerID, date string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the open slots of a provider on a date, one per line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := availabilityInput(providerID, date)
			if err != nil {
				return err
			}

			store, closeFn, err := openStore()
			if err != nil {
				return err
			}
			defer closeFn()

			slots, err := apptuc.NewGetAvailability(store, cache.Noop{}).Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			for _, s := range slots {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&providerID, "provider", "", "provider id")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func checkCmd() *cobra.Command {
	var providerID, date, slot string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether a provider can take an appointment at a time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := availabilityInput(providerID, date)
			if err != nil {
				return err
			}

			store, closeFn, err := openStore()
			if err != nil {
				return err
			}
			defer closeFn()

			ok, err := apptuc.NewCheckSlot(store).Execute(cmd.Context(), in, slot)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "available")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "unavailable")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&providerID, "provider", "", "provider id")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD")
	cmd.Flags().StringVar(&slot, "time", "", "slot start as HH:MM")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the default appointment-type catalog into an empty store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeFn, err := openStore()
			if err != nil {
				return err
			}
			defer closeFn()

			n, err := app.SeedAppointmentTypes(cmd.Context(), store)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d appointment types\n", n)
			return nil
		},
	}
}
