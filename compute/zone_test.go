package compute_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceaccount-auth/oauth/compute"
)

func timestamp(year int, month time.Month, day, hour, min, sec, msec int) compute.Timestamp {
	return compute.Timestamp{Time: time.Date(year, month, day, hour, min, sec, msec*int(time.Millisecond), time.UTC)}
}

func TestParseZone(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		file, err := os.Open("testdata/zone_get.json")
		require.NoError(t, err)
		defer file.Close()

		zone, err := compute.ParseZone(file)
		require.NoError(t, err)

		expected := compute.Zone{
			ID:                "13020128040171887099",
			CreationTimestamp: timestamp(2012, time.October, 19, 16, 42, 54, 131),
			SelfLink:          "https://www.googleapis.com/compute/v1beta16/projects/myproject/zones/us-central1-a",
			Name:              "us-central1-a",
			Description:       "us-central1-a",
			Status:            compute.ZoneDown,
			MaintenanceWindows: []compute.MaintenanceWindow{
				{
					Name:        "2012-11-10-planned-outage",
					Description: "maintenance zone",
					BeginTime:   timestamp(2012, time.November, 10, 20, 0, 0, 0),
					EndTime:     timestamp(2012, time.December, 2, 20, 0, 0, 0),
				},
			},
		}

		assert.Equal(t, expected, zone)
	})

	t.Run("Error", func(t *testing.T) {
		testCases := []struct {
			name string
			body string
		}{
			{
				name: "malformed document",
				body: `{"id": `,
			},
			{
				name: "malformed timestamp",
				body: `{"creationTimestamp": "2012-10-19 16:42:54"}`,
			},
		}

		for _, testCase := range testCases {
			testCase := testCase

			t.Run(testCase.name, func(t *testing.T) {
				_, err := compute.ParseZone(strings.NewReader(testCase.body))
				require.Error(t, err)
			})
		}
	})
}
