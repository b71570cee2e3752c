package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpense_UnmarshalServerPayload(t *testing.T) {
	payload := `[
	  {"id": 3, "description": "Lunch", "amount": 12.5, "date": "2024-03-05",
	   "location": "Cafe", "category": {"id": 1, "name": "Food"}},
	  {"id": 4, "description": "Bus", "amount": 7.255, "date": "2024-03-06",
	   "location": null, "category": {"id": 2, "name": "Travel"}}
	]`

	var got []Expense
	require.NoError(t, json.Unmarshal([]byte(payload), &got))
	require.Len(t, got, 2)

	assert.Equal(t, int64(3), got[0].ID)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got[0].Amount))
	assert.Equal(t, "2024-03-05", got[0].Date.String())
	assert.Equal(t, Category{ID: 1, Name: "Food"}, got[0].Category)
	assert.Equal(t, "", got[1].Location)
	assert.True(t, decimal.RequireFromString("7.255").Equal(got[1].Amount))
}

func TestTotal(t *testing.T) {
	assert.True(t, Total(nil).IsZero())

	expenses := []Expense{
		{Amount: decimal.RequireFromString("12.5")},
		{Amount: decimal.RequireFromString("7.255")},
	}
	total := Total(expenses)
	assert.Equal(t, "19.755", total.String())
	assert.Equal(t, "19.76", total.StringFixed(2))
}

func TestDate(t *testing.T) {
	t.Run("parses calendar date", func(t *testing.T) {
		d, err := ParseDate("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, NewDate(2024, time.February, 29), d)
	})

	t.Run("accepts RFC3339 timestamps", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-03-05T10:00:00Z"`), &d))
		assert.Equal(t, "2024-03-05", d.String())
	})

	t.Run("null and empty are zero", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.IsZero())
		require.NoError(t, json.Unmarshal([]byte(`""`), &d))
		assert.Equal(t, "", d.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		var d Date
		require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
		require.Error(t, json.Unmarshal([]byte(`20240305`), &d))
	})

	t.Run("marshals as string", func(t *testing.T) {
		b, err := json.Marshal(NewDate(2024, time.March, 5))
		require.NoError(t, err)
		assert.Equal(t, `"2024-03-05"`, string(b))
	})
}

func TestUser(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":5,"name":"A","email":"a@x.com","admin":true}`), &u))
	assert.Equal(t, User{ID: 5, Name: "A", Email: "a@x.com", Admin: true}, u)
	assert.True(t, u.Valid())

	var nilUser *User
	assert.False(t, nilUser.Valid())
	assert.False(t, (&User{Name: "no id"}).Valid())
}
