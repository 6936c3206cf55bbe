package utils

import (
	"testing"

	"savannacars-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFilterByQuery(t *testing.T) {
	customers := []domain.Customer{
		{ID: 1, Name: "Jane Doe", Email: "jane@example.com"},
		{ID: 2, Name: "John Smith", Email: "john@example.com"},
		{ID: 3, Name: "Wanjiru Kamau", Email: "wanjiru@example.com"},
	}
	fields := func(c domain.Customer) []string {
		return []string{c.Name, c.Email, c.Phone}
	}

	t.Run("Case-insensitive substring", func(t *testing.T) {
		got := FilterByQuery(customers, "jo", fields)
		assert.Len(t, got, 1)
		assert.Equal(t, "John Smith", got[0].Name)
	})

	t.Run("Matches any field", func(t *testing.T) {
		got := FilterByQuery(customers, "WANJIRU@", fields)
		assert.Len(t, got, 1)
		assert.Equal(t, int32(3), got[0].ID)
	})

	t.Run("Empty query returns all", func(t *testing.T) {
		got := FilterByQuery(customers, "", fields)
		assert.Equal(t, customers, got)
	})

	t.Run("No matches", func(t *testing.T) {
		got := FilterByQuery(customers, "zebra", fields)
		assert.Empty(t, got)
	})

	t.Run("Order preserved and source untouched", func(t *testing.T) {
		got := FilterByQuery(customers, "example.com", fields)
		assert.Len(t, got, 3)
		assert.Equal(t, int32(1), got[0].ID)
		assert.Equal(t, int32(2), got[1].ID)
		assert.Equal(t, int32(3), got[2].ID)
		assert.Equal(t, "Jane Doe", customers[0].Name)
	})
}
