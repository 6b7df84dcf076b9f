//go:build unit

package service

import (
	"context"
	"testing"

	"edupress/internal/data"

	"github.com/stretchr/testify/assert"
)

func TestInsightsService(t *testing.T) {
	svc := NewInsightsService()
	ctx := context.Background()

	assert.Len(t, svc.Goals(ctx), 4)

	traffic := svc.Traffic(ctx)
	assert.Len(t, traffic, 7)
	assert.Equal(t, data.TrafficPoint{Label: "Per", Visitors: 2400}, traffic[3])

	report := svc.Ads(ctx)
	assert.Len(t, report.Units, 4)
	assert.Equal(t, 452.7, report.Summary.TotalEarnings)
	assert.Equal(t, 59000, report.Summary.TotalImpressions)
	assert.Equal(t, 1.27, report.Summary.AverageCTR)
	assert.Equal(t, 3, report.Summary.ActiveUnits)
	assert.Len(t, report.Summary.Labels, 4)
}

func TestSummarizeEmpty(t *testing.T) {
	sum := summarize(nil)
	assert.Zero(t, sum.AverageCTR)
	assert.Zero(t, sum.TotalEarnings)
}
