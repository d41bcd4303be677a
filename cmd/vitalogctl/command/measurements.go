package command

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitalog-org/vitalog/measurements"
	"github.com/vitalog-org/vitalog/pointer"
)

var (
	seedUserId string
	seedType   string
	seedCount  int
)

var measurementsCmd = &cobra.Command{
	Use:   "measurements",
	Short: "Inspect and seed measurements",
}

var measurementsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed random measurements for a user",
	Long:  "The seed command inserts random readings of a given type, spread over the last week. Intended for development environments only.",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(seedMeasurements) },
}

func seedMeasurements(service measurements.Service) error {
	if seedUserId == "" {
		return fmt.Errorf("--user is required")
	}
	measurementType := measurements.Type(seedType)
	if !measurementType.IsValid() {
		return fmt.Errorf("unknown measurement type %q", seedType)
	}

	items := make([]measurements.Raw, seedCount)
	for i := range items {
		timestamp := time.Now().Add(-time.Duration(rand.Intn(7*24)) * time.Hour)
		items[i] = measurements.Raw{
			Type:      seedType,
			Value:     pointer.FromAny(randomValue(measurementType)),
			Timestamp: &timestamp,
			Source:    pointer.FromAny("app"),
		}
	}

	result, err := service.RecordBatch(context.TODO(), seedUserId, items)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %v measurements, %v failed\n", len(result.Saved), len(result.Errors))
	return nil
}

func randomValue(measurementType measurements.Type) float64 {
	switch measurementType {
	case measurements.TypeGlucose:
		return 70 + rand.Float64()*120
	case measurements.TypeBloodPressure:
		return 100 + rand.Float64()*50
	case measurements.TypeHeartRate:
		return 50 + rand.Float64()*70
	case measurements.TypeWeight:
		return 50 + rand.Float64()*50
	case measurements.TypeSleep:
		return 4 + rand.Float64()*6
	case measurements.TypeSteps:
		return float64(rand.Intn(20000))
	case measurements.TypeWater:
		return float64(rand.Intn(3000))
	case measurements.TypeTemperature:
		return 36 + rand.Float64()*2
	case measurements.TypeOxygenSaturation:
		return 90 + rand.Float64()*10
	}
	return rand.Float64() * 100
}

func init() {
	measurementsSeedCmd.Flags().StringVar(&seedUserId, "user", "", "User Id")
	measurementsSeedCmd.Flags().StringVar(&seedType, "type", "glucose", "Measurement Type")
	measurementsSeedCmd.Flags().IntVar(&seedCount, "count", 10, "Number of measurements to insert")
	measurementsCmd.AddCommand(measurementsSeedCmd)
	rootCmd.AddCommand(measurementsCmd)
}
