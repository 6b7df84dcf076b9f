package service

import (
	"context"
	"math"

	"edupress/internal/data"
)

// RevenueSummary aggregates ad unit performance for the revenue chart.
type RevenueSummary struct {
	TotalEarnings    float64   `json:"totalEarnings"`
	TotalImpressions int       `json:"totalImpressions"`
	AverageCTR       float64   `json:"averageCtr"`
	ActiveUnits      int       `json:"activeUnits"`
	Labels           []string  `json:"labels"`
	Earnings         []float64 `json:"earnings"`
}

// AdReport is the ad units listing with its summary.
type AdReport struct {
	Units   []data.AdUnit  `json:"units"`
	Summary RevenueSummary `json:"summary"`
}

// InsightsService serves the simulated analytics and ad revenue figures.
type InsightsService struct {
	goals   []data.AnalyticsGoal
	units   []data.AdUnit
	traffic []data.TrafficPoint
}

// NewInsightsService creates an InsightsService over the seeded figures.
func NewInsightsService() *InsightsService {
	return &InsightsService{
		goals:   data.SeedGoals(),
		units:   data.SeedAdUnits(),
		traffic: data.SeedTraffic(),
	}
}

// Goals returns the conversion goals.
func (s *InsightsService) Goals(ctx context.Context) []data.AnalyticsGoal {
	return append([]data.AnalyticsGoal(nil), s.goals...)
}

// Traffic returns the weekly visitor series.
func (s *InsightsService) Traffic(ctx context.Context) []data.TrafficPoint {
	return append([]data.TrafficPoint(nil), s.traffic...)
}

// Ads returns the ad units and their revenue summary.
func (s *InsightsService) Ads(ctx context.Context) AdReport {
	units := append([]data.AdUnit(nil), s.units...)
	return AdReport{Units: units, Summary: summarize(units)}
}

// summarize totals earnings and impressions. The CTR is weighted by impressions.
func summarize(units []data.AdUnit) RevenueSummary {
	var sum RevenueSummary
	var clicks float64
	for _, u := range units {
		sum.TotalEarnings += u.Earnings
		sum.TotalImpressions += u.Impressions
		clicks += u.CTR * float64(u.Impressions)
		if u.Status == "active" {
			sum.ActiveUnits++
		}
		sum.Labels = append(sum.Labels, u.Name)
		sum.Earnings = append(sum.Earnings, u.Earnings)
	}
	sum.TotalEarnings = round2(sum.TotalEarnings)
	if sum.TotalImpressions > 0 {
		sum.AverageCTR = round2(clicks / float64(sum.TotalImpressions))
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
