package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "regate/pkg/domain-errors"
)

func TestParseStatus(t *testing.T) {
	t.Run("accepts every catalog value", func(t *testing.T) {
		for _, entry := range Statuses() {
			st, err := ParseStatus(string(entry.Value))
			require.NoError(t, err)
			assert.Equal(t, entry.Value, st)
		}
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseStatus("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects unknown value", func(t *testing.T) {
		_, err := ParseStatus("alumnus")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestStatusCatalog(t *testing.T) {
	t.Run("values are unique", func(t *testing.T) {
		seen := map[Status]bool{}
		for _, entry := range Statuses() {
			assert.False(t, seen[entry.Value], "duplicate status %s", entry.Value)
			seen[entry.Value] = true
		}
	})

	t.Run("partner is the only hidden status", func(t *testing.T) {
		assert.True(t, StatusPartner.Hidden())
		assert.False(t, StatusStudent.Hidden())
		assert.False(t, StatusTeacher.Hidden())
		assert.False(t, StatusPersonal.Hidden())
	})

	t.Run("hidden statuses still parse", func(t *testing.T) {
		st, err := ParseStatus("partner")
		require.NoError(t, err)
		assert.Equal(t, StatusPartner, st)
	})

	t.Run("returned catalog is a copy", func(t *testing.T) {
		first := Statuses()
		first[0].Value = "mutated"
		assert.Equal(t, StatusStudent, Statuses()[0].Value)
	})
}
