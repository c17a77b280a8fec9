// services/export.go
package services

import (
	"fmt"
	"io"
	"time"

	"github.com/jszwec/csvutil"

	"github.com/gewnthar/launchtrack/models"
)

// WriteLaunchesCSV writes the launch set as CSV with a header row, resolving
// rocket and launchpad IDs to names via the provided catalogs.
func WriteLaunchesCSV(w io.Writer, launches []models.Launch, rocketNames, launchpadNames map[string]string) error {
	rows := make([]models.LaunchCSVRow, 0, len(launches))
	for _, l := range launches {
		row := models.LaunchCSVRow{
			ID:            l.ID,
			Name:          l.Name,
			RocketName:    groupName(l.Rocket, rocketNames),
			LaunchpadName: groupName(l.Launchpad, launchpadNames),
			Upcoming:      l.Upcoming,
			FlightNumber:  l.FlightNumber,
		}
		if l.DateUTC != nil {
			row.DateUTC = l.DateUTC.UTC().Format(time.RFC3339)
		}
		if l.Success != nil {
			if *l.Success {
				row.Success = "true"
			} else {
				row.Success = "false"
			}
		}
		rows = append(rows, row)
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to encode launches as CSV: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write CSV output: %w", err)
	}
	return nil
}
