package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Venkatesh961/TimeTable-Generator/internal/config"
	"github.com/Venkatesh961/TimeTable-Generator/internal/csvio"
	"github.com/Venkatesh961/TimeTable-Generator/internal/logger"
	"github.com/Venkatesh961/TimeTable-Generator/internal/metrics"
	"github.com/Venkatesh961/TimeTable-Generator/internal/scheduler"
	"github.com/Venkatesh961/TimeTable-Generator/pkg/model"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "timetable-generator",
	Short: "Assigns course sessions to a weekly grid of slots, rooms and faculty",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.SetLevel(cfg.Logging.Level)
	log := logger.New("main")

	var rec metrics.Recorder = metrics.Nop{}
	if cfg.Metrics.Enabled {
		sink, err := metrics.NewPromSink(prometheus.DefaultRegisterer)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		rec = sink
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Address, nil); err != nil {
				log.Error().Err(err).Msg("metrics listener stopped")
			}
		}()
		log.Info().Str("address", cfg.Metrics.Address).Msg("serving metrics")
	}

	delim := cfg.DelimiterRune()
	courses, err := csvio.LoadCourses(cfg.Data.Courses, delim)
	if err != nil {
		return err
	}
	rooms := csvio.LoadRooms(cfg.Data.Rooms, delim, log)
	batches := csvio.LoadBatches(cfg.Data.Batches, delim, log)
	reservedRows := csvio.LoadReserved(cfg.Data.Reserved, delim, log)

	engine := scheduler.New(scheduler.Config{
		MaxAttempts: cfg.Engine.MaxAttempts,
		Seed:        cfg.Engine.Seed,
	}, logger.New("scheduler"), rec)

	res, err := engine.Run(courses, rooms, batches, reservedRows)
	if err != nil {
		return err
	}

	cal := model.NewCalendar()
	valid, report := scheduler.Validate(res, cal, scheduler.BuildReservedIndex(reservedRows, log))
	fmt.Print(report)
	if !valid {
		log.Error().Msg("generated schedule violates constraints")
	}

	if err := csvio.ExportSchedule(res, cal, cfg.Output.Schedule); err != nil {
		return err
	}
	if err := csvio.ExportUnscheduled(res, cfg.Output.Unscheduled); err != nil {
		return err
	}
	if err := csvio.ExportSelfStudy(res, cfg.Output.SelfStudy); err != nil {
		return err
	}

	log.Info().
		Str("schedule", cfg.Output.Schedule).
		Str("unscheduled", cfg.Output.Unscheduled).
		Int("unscheduled_count", len(res.Unscheduled)).
		Msg("exported timetables")
	return nil
}

// loadConfig falls back to defaults when the default config file is absent;
// an explicitly configured file must exist.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); err != nil {
		if cfgPath == "config.yaml" {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("config file %s: %w", cfgPath, err)
	}
	return config.Load(cfgPath)
}
