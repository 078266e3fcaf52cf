package locfeed_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/fwojciec/locfeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := locfeed.Errorf(locfeed.ECHANGED, "column %q changed", "County")

	assert.Equal(t, locfeed.ECHANGED, locfeed.ErrorCode(err))
	assert.Equal(t, "column \"County\" changed", locfeed.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, locfeed.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, locfeed.ErrorMessage(nil))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("row 2: %w", locfeed.Errorf(locfeed.ENOID, "missing"))

	assert.Equal(t, locfeed.ENOID, locfeed.ErrorCode(err))
	assert.Equal(t, "missing", locfeed.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, locfeed.EINTERNAL, locfeed.ErrorCode(err))
	assert.Equal(t, "Internal error.", locfeed.ErrorMessage(err))
}

func TestLocationRecord_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("omits detail keys when no detail was merged", func(t *testing.T) {
		t.Parallel()

		rec := locfeed.NewLocationRecord("Clinic A", "Fulton", "123 Main St")

		data, err := json.Marshal(rec)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "Clinic A", got["Location Name"])
		assert.Equal(t, map[string]any{}, got["address-parts"])
		assert.NotContains(t, got, "node-id")
		assert.NotContains(t, got, "last-updated")
		assert.NotContains(t, got, "phone-numbers")
		assert.NotContains(t, got, "contact-links")
	})

	t.Run("flattens merged detail and keeps empty slices as arrays", func(t *testing.T) {
		t.Parallel()

		rec := locfeed.NewLocationRecord("Clinic A", "Fulton", "123 Main St")
		rec.Merge(locfeed.NewDetail("abc123", "2021-05-01"))

		data, err := json.Marshal(rec)
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"Location Name": "Clinic A",
			"County": "Fulton",
			"Address": "123 Main St",
			"address-parts": {},
			"node-id": "abc123",
			"last-updated": "2021-05-01",
			"phone-numbers": [],
			"contact-links": []
		}`, string(data))
	})

	t.Run("omits absent phone fields", func(t *testing.T) {
		t.Parallel()

		label := "Main"
		d := locfeed.NewDetail("n", "t")
		d.PhoneNumbers = append(d.PhoneNumbers, locfeed.PhoneNumber{Label: &label})

		data, err := json.Marshal(d.PhoneNumbers)
		require.NoError(t, err)

		assert.JSONEq(t, `[{"label":"Main"}]`, string(data))
	})
}

func TestLocationRecord_Merge(t *testing.T) {
	t.Parallel()

	t.Run("nil detail leaves record untouched", func(t *testing.T) {
		t.Parallel()

		rec := locfeed.NewLocationRecord("A", "B", "C")
		rec.Merge(nil)

		assert.False(t, rec.HasDetail())
	})

	t.Run("keeps row fields and adds detail fields", func(t *testing.T) {
		t.Parallel()

		rec := locfeed.NewLocationRecord("A", "B", "C")
		rec.AddressParts["locality"] = "Atlanta"
		rec.Merge(locfeed.NewDetail("id-1", "2021-05-01"))

		assert.True(t, rec.HasDetail())
		assert.Equal(t, "A", rec.LocationName)
		assert.Equal(t, "Atlanta", rec.AddressParts["locality"])
		assert.Equal(t, "id-1", rec.NodeID)
		assert.Equal(t, "2021-05-01", rec.LastUpdated)
	})
}
