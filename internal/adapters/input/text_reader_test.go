package input

import (
	"bytes"
	"delivery-estimate-service/internal/domain"
	"delivery-estimate-service/internal/services"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `100 5
PKG1 50 30 OFR001
PKG2 75 125 OFFR0008
PKG3 175 100 OFFR003
PKG4 110 60 OFR002
PKG5 155 95 NA
2 70 200
`

func TestReadRequest(t *testing.T) {
	req, err := ReadRequest(strings.NewReader(sampleInput))
	require.NoError(t, err)

	assert.Equal(t, 100.0, req.BaseCost)
	require.Len(t, req.Packages, 5)
	assert.Equal(t, services.PackageInput{ID: "PKG3", Weight: 175, Distance: 100, OfferCode: "OFFR003"}, req.Packages[2])
	assert.Equal(t, 2, req.VehicleCount)
	assert.Equal(t, 70.0, req.MaxSpeed)
	assert.Equal(t, 200.0, req.MaxLoad)
}

func TestReadRequestIgnoresLineLayout(t *testing.T) {
	req, err := ReadRequest(strings.NewReader("10 1 PKG1 50\n30\tOFR001 1 70 200"))
	require.NoError(t, err)

	assert.Equal(t, 10.0, req.BaseCost)
	assert.Equal(t, []services.PackageInput{{ID: "PKG1", Weight: 50, Distance: 30, OfferCode: "OFR001"}}, req.Packages)
}

func TestReadRequestErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{"empty", "", "base cost"},
		{"bad base cost", "abc 1", "base cost"},
		{"fractional count", "100 1.5", "package count"},
		{"negative count", "100 -1", "package count"},
		{"bad weight", "100 1 PKG1 heavy 30 OFR001 1 70 200", "package 1 weight"},
		{"truncated package", "100 2 PKG1 50 30 OFR001 PKG2 75", "package 2 distance"},
		{"missing fleet", "100 1 PKG1 50 30 OFR001 1 70", "max load"},
		{"not finite", "NaN 1", "base cost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRequest(strings.NewReader(tt.in))
			require.ErrorIs(t, err, ErrMalformedInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestWriteResults(t *testing.T) {
	results := []domain.DeliveryEstimate{
		{PackageID: "PKG1", Discount: 0, Cost: 750, DeliveryTime: 3.99},
		{PackageID: "PKG4", Discount: 105.00000000000001, Cost: 1394.9999999999998, DeliveryTime: 0.85},
		{PackageID: "PKG5", Discount: 52.5, Cost: 2072.5, DeliveryTime: 4.2},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, results))

	assert.Equal(t, "PKG1 0 750 3.99\nPKG4 105 1395 0.85\nPKG5 53 2073 4.20\n", buf.String())
}

func TestWriteDispatches(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDispatches(&buf, []domain.Dispatch{
		{VehicleID: 1, DepartAt: 0, ReturnAt: 3.57, PackageIDs: []string{"PKG2", "PKG4"}, TotalWeight: 185},
	})
	require.NoError(t, err)

	assert.Equal(t, "trip 1: vehicle 1 departs 0.00 returns 3.57 carrying PKG2,PKG4 (185 kg)\n", buf.String())
}
