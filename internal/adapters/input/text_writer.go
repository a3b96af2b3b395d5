package input

import (
	"delivery-estimate-service/internal/domain"
	"fmt"
	"io"
	"math"
	"strings"
)

// FormatResult renders "id discount cost deliveryTime": currency as whole
// units rounded half away from zero, time with two decimals.
func FormatResult(r domain.DeliveryEstimate) string {
	return fmt.Sprintf("%s %.0f %.0f %.2f",
		r.PackageID, math.Round(r.Discount), math.Round(r.Cost), domain.Truncate2(r.DeliveryTime))
}

func WriteResults(w io.Writer, results []domain.DeliveryEstimate) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, FormatResult(r)); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
	}
	return nil
}

// WriteDispatches renders one line per vehicle trip.
func WriteDispatches(w io.Writer, dispatches []domain.Dispatch) error {
	for i, d := range dispatches {
		_, err := fmt.Fprintf(w, "trip %d: vehicle %d departs %.2f returns %.2f carrying %s (%.0f kg)\n",
			i+1, d.VehicleID, d.DepartAt, d.ReturnAt, strings.Join(d.PackageIDs, ","), d.TotalWeight)
		if err != nil {
			return fmt.Errorf("write dispatches: %w", err)
		}
	}
	return nil
}
