package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", d.String())

	// The upstream API also emits full timestamps
	d, err = ParseDate("2024-03-05T14:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", d.String())

	_, err = ParseDate("05/03/2024")
	assert.Error(t, err)
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2024, time.March, 5)
	b := NewDate(2024, time.March, 20)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(MustParseDate("2024-03-05")))
	assert.Equal(t, a, MinDate(a, b))
	assert.Equal(t, b, MaxDate(a, b))
}

func TestDaysUntil(t *testing.T) {
	a := MustParseDate("2024-03-05")
	b := MustParseDate("2024-03-20")

	assert.Equal(t, 15, a.DaysUntil(b))
	assert.Equal(t, 0, a.DaysUntil(a))
	assert.Equal(t, -15, b.DaysUntil(a))
}

func TestAddDays(t *testing.T) {
	d := MustParseDate("2024-02-28")
	assert.Equal(t, "2024-02-29", d.AddDays(1).String()) // leap year
	assert.Equal(t, "2024-02-26", d.AddDays(-2).String())
}

func TestDateJSON(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"id":1,"projectId":2,"name":"x","status":"planned","startDate":"2024-03-05","dueDate":"2024-03-20T09:00:00Z"}`), &task)
	require.NoError(t, err)
	require.NotNil(t, task.StartDate)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2024-03-05", task.StartDate.String())
	assert.Equal(t, "2024-03-20", task.DueDate.String())

	out, err := json.Marshal(task.StartDate)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(out))
}

func TestZeroDateMarshalsAsNull(t *testing.T) {
	var zero Date
	assert.True(t, zero.IsZero())
	assert.False(t, MustParseDate("2024-03-05").IsZero())

	out, err := json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestDateJSONNull(t *testing.T) {
	var task Task
	err := json.Unmarshal([]byte(`{"id":1,"projectId":2,"name":"x","status":"planned","startDate":null,"dueDate":null}`), &task)
	require.NoError(t, err)
	assert.Nil(t, task.StartDate)
	assert.Nil(t, task.DueDate)
}
