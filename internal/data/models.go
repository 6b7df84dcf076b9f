package data

import (
	"html/template"
	"time"
)

// ContentType distinguishes posts from static pages.
type ContentType string

const (
	TypePost ContentType = "post"
	TypePage ContentType = "page"
)

// Status is the editorial state of a ContentItem.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusReview    Status = "review"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
)

// ContentItem is a post or a page. Category is the category's name, not a reference.
type ContentItem struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Content        string        `json:"content"`
	HTMLContent    template.HTML `json:"-"`
	Excerpt        string        `json:"excerpt"`
	Slug           string        `json:"slug"`
	Category       string        `json:"category"`
	Tags           string        `json:"tags,omitempty"`
	Type           ContentType   `json:"type"`
	Status         Status        `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	Views          int           `json:"views"`
	FeaturedImage  string        `json:"featuredImage,omitempty"`
	SEOTitle       string        `json:"seoTitle,omitempty"`
	SEODescription string        `json:"seoDescription,omitempty"`
	FocusKeyword   string        `json:"focusKeyword,omitempty"`
	Keywords       string        `json:"keywords,omitempty"`
	CanonicalURL   string        `json:"canonicalUrl,omitempty"`
	RobotsIndex    string        `json:"robotsIndex,omitempty"`
	RobotsFollow   string        `json:"robotsFollow,omitempty"`
}

// IsPublished reports whether the item is publicly listed.
func (c ContentItem) IsPublished() bool {
	return c.Status == StatusPublished
}

// Category groups posts. ParentID points at another category for a single level of nesting.
type Category struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Description    string `json:"description,omitempty"`
	ParentID       string `json:"parentId,omitempty"`
	SEODescription string `json:"seoDescription,omitempty"`
	Count          int    `json:"count,omitempty"`
}

// Tag is a free-form label. Items reference tags through their comma separated Tags field.
type Tag struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Description    string `json:"description,omitempty"`
	SEODescription string `json:"seoDescription,omitempty"`
	Count          int    `json:"count,omitempty"`
}

// MediaItem is an uploaded file stored inline as a data URI.
type MediaItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// Backlink is an inbound link record.
type Backlink struct {
	ID              string `json:"id"`
	Domain          string `json:"domain"`
	PageURL         string `json:"pageUrl"`
	DomainAuthority int    `json:"domainAuthority"`
	SpamScore       int    `json:"spamScore"`
	BacklinkCount   int    `json:"backlinkCount"`
	FirstSeen       string `json:"firstSeen"`
	LastSeen        string `json:"lastSeen"`
}

// KeywordRank tracks the search position of a keyword.
type KeywordRank struct {
	ID           string `json:"id"`
	Keyword      string `json:"keyword"`
	Rank         int    `json:"rank"`
	PreviousRank int    `json:"previousRank"`
	Volume       int    `json:"volume"`
	Traffic      int    `json:"traffic"`
	Difficulty   int    `json:"difficulty"`
	URL          string `json:"url"`
}

// SiteSettings is the singleton configuration record edited from the admin panel.
type SiteSettings struct {
	SiteName        string `json:"siteName"`
	SiteTagline     string `json:"siteTagline"`
	SiteDescription string `json:"siteDescription"`
	LogoURL         string `json:"logoUrl"`
	FaviconURL      string `json:"faviconUrl"`
	BannerURL       string `json:"bannerUrl"`
	FooterText      string `json:"footerText"`
	Language        string `json:"language"`
	Timezone        string `json:"timezone"`
	ThemeColor      string `json:"themeColor"`

	GoogleSearchConsoleID string `json:"googleSearchConsoleId"`
	BingWebmasterID       string `json:"bingWebmasterId"`
	GoogleAnalyticsID     string `json:"googleAnalyticsId"`
	RobotsTxt             string `json:"robotsTxt"`

	AdsensePublisherID string `json:"adsensePublisherId"`
	AdsenseAPIKey      string `json:"adsenseApiKey"`
	EnableAds          bool   `json:"enableAds"`
	AdsenseConnected   bool   `json:"adsenseConnected"`

	FacebookPixelID  string `json:"facebookPixelId"`
	TwitterHandle    string `json:"twitterHandle"`
	InstagramProfile string `json:"instagramProfile"`
	LinkedinProfile  string `json:"linkedinProfile"`
	OGImage          string `json:"ogImage"`

	SMTPServer                 string `json:"smtpServer"`
	SMTPPort                   string `json:"smtpPort"`
	SMTPUser                   string `json:"smtpUser"`
	AdminEmail                 string `json:"adminEmail"`
	EnableCommentNotifications bool   `json:"enableCommentNotifications"`

	CDNURL                  string `json:"cdnUrl"`
	EnableCache             bool   `json:"enableCache"`
	EnableImageOptimization bool   `json:"enableImageOptimization"`
	EnableGzip              bool   `json:"enableGzip"`
}
