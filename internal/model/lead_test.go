package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeadAmount(t *testing.T) {
	t.Log("absent value counts as zero")
	{
		l := &Lead{ID: "l1", Status: LeadStatusConverted}
		assert.Equal(t, float64(0), l.Amount())
	}

	t.Log("present value is returned as-is")
	{
		value := 249.99
		l := &Lead{ID: "l1", Status: LeadStatusConverted, Value: &value}
		assert.Equal(t, 249.99, l.Amount())
	}
}

func TestLeadMergePatch(t *testing.T) {
	createdAt := time.Date(2022, time.October, 14, 10, 0, 0, 0, time.UTC)
	l := Lead{
		ID:         "l1",
		CustomerID: "c1",
		Title:      "Arc reactor supply",
		Status:     LeadStatusNew,
		CreatedAt:  createdAt,
	}

	t.Log("supplied fields are replaced, the rest stays intact")
	{
		status := LeadStatusConverted
		value := float64(1200)
		merged := l.MergePatch(&PatchLead{ID: "l1", Status: &status, Value: &value})
		assert.Equal(t, LeadStatusConverted, merged.Status)
		assert.Equal(t, float64(1200), *merged.Value)
		assert.Equal(t, "Arc reactor supply", merged.Title)
	}

	t.Log("parent customer and creation timestamp always survive the merge")
	{
		title := "Suit upgrade"
		merged := l.MergePatch(&PatchLead{ID: "l1", Title: &title})
		assert.Equal(t, "c1", merged.CustomerID)
		assert.Equal(t, createdAt, merged.CreatedAt)
	}

	t.Log("original lead is left untouched")
	{
		title := "Suit upgrade"
		l.MergePatch(&PatchLead{ID: "l1", Title: &title})
		assert.Equal(t, "Arc reactor supply", l.Title)
	}
}
