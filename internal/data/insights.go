package data

// AnalyticsGoal is a conversion goal tracked by the analytics dashboard.
type AnalyticsGoal struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	TargetValue    string  `json:"targetValue"`
	Completed      int     `json:"completed"`
	ConversionRate float64 `json:"conversionRate"`
	Status         string  `json:"status"`
}

// AdUnit is an ad placement with its last 30 days of performance.
type AdUnit struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Size        string  `json:"size"`
	Type        string  `json:"type"`
	Placement   string  `json:"placement"`
	Status      string  `json:"status"`
	Earnings    float64 `json:"earnings"`
	Impressions int     `json:"impressions"`
	CTR         float64 `json:"ctr"`
}

// TrafficPoint is one day of visitor counts.
type TrafficPoint struct {
	Label    string `json:"label"`
	Visitors int    `json:"visitors"`
}

// SeedGoals returns the configured conversion goals.
func SeedGoals() []AnalyticsGoal {
	return []AnalyticsGoal{
		{ID: "1", Name: "Bülten Aboneliği", Type: "event", TargetValue: "subscribe", Completed: 145, ConversionRate: 2.4, Status: "active"},
		{ID: "2", Name: "PDF İndirme", Type: "event", TargetValue: "download_pdf", Completed: 320, ConversionRate: 5.8, Status: "active"},
		{ID: "3", Name: "İletişim Formu", Type: "destination", TargetValue: "/iletisim-tesekkur", Completed: 25, ConversionRate: 0.5, Status: "active"},
		{ID: "4", Name: "5 dk+ Oturum", Type: "duration", TargetValue: "300", Completed: 850, ConversionRate: 15.2, Status: "paused"},
	}
}

// SeedAdUnits returns the ad placements.
func SeedAdUnits() []AdUnit {
	return []AdUnit{
		{ID: "1", Name: "Anasayfa Banner", Size: "Responsive", Type: "display", Placement: "Header", Status: "active", Earnings: 145.50, Impressions: 25000, CTR: 1.2},
		{ID: "2", Name: "Sidebar Kare", Size: "300x250", Type: "display", Placement: "Sidebar", Status: "active", Earnings: 85.20, Impressions: 18000, CTR: 0.8},
		{ID: "3", Name: "Makale İçi (In-Article)", Size: "Fluid", Type: "article", Placement: "In-Content", Status: "active", Earnings: 210.00, Impressions: 12000, CTR: 2.4},
		{ID: "4", Name: "Makale Sonu (Matched)", Size: "Responsive", Type: "multiplex", Placement: "Below Content", Status: "paused", Earnings: 12.00, Impressions: 4000, CTR: 0.5},
	}
}

// SeedTraffic returns the weekly visitor series shown on the dashboard.
func SeedTraffic() []TrafficPoint {
	labels := []string{"Pzt", "Sal", "Çar", "Per", "Cum", "Cmt", "Paz"}
	visitors := []int{1200, 1900, 1700, 2400, 2100, 1500, 1850}
	points := make([]TrafficPoint, len(labels))
	for i := range labels {
		points[i] = TrafficPoint{Label: labels[i], Visitors: visitors[i]}
	}
	return points
}
