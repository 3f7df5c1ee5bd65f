package services

import (
	"encoding/json"
	"strings"

	"algotrading-site/dto"
	"algotrading-site/internal/logger"
	"algotrading-site/models"
)

// Fallbacks applied while normalizing raw records. Named constants so the
// degrade behavior is testable on its own.
const (
	FallbackImageURL    = "https://images.unsplash.com/photo-1611974765270-ca12586343bb?q=80&w=1000&auto=format&fit=crop"
	DefaultCategory     = "pre-built bots"
	DefaultAuthor       = "AlgoTeam"
	PublishDateFallback = "Recently"
	DefaultReadTime     = "5 min read"

	PriceFree    = "Free"
	PricePremium = "Premium"
)

const publishDateLayout = "Jan 2, 2006"

// SanitizeImageURL normalizes an arbitrary stored image field into a safe
// display URL. Some authoring paths store a JSON array string of URLs like
// '["https://..."]'; in that case the first element is used as-is. Anything
// that is not an absolute http(s) URL degrades to FallbackImageURL. Parse
// failures never escape.
func SanitizeImageURL(raw string) string {
	if raw == "" {
		return FallbackImageURL
	}
	if strings.HasPrefix(raw, "[") {
		var urls []string
		if err := json.Unmarshal([]byte(raw), &urls); err == nil && len(urls) > 0 {
			return urls[0]
		}
		// fall through on parse failure
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return FallbackImageURL
}

// MapPost transforms one raw stored record into the BlogPost view model.
// The mapping is deterministic and total: malformed or absent fields
// degrade to the named fallbacks, with best-effort logging and nothing
// else by way of side effects.
func MapPost(p *models.Post) dto.BlogPost {
	category := DefaultCategory
	if len(p.Categories) > 0 && p.Categories[0].Category != nil {
		category = p.Categories[0].Category.Name
	}

	author := p.Author
	if author == "" {
		author = DefaultAuthor
	}

	// A zero created_at means the timestamp was never stored or did not
	// survive the authoring path; render the placeholder instead.
	publishDate := PublishDateFallback
	if !p.CreatedAt.IsZero() {
		publishDate = p.CreatedAt.Format(publishDateLayout)
	}

	image := SanitizeImageURL(p.FeaturedImage)
	if image == FallbackImageURL && p.FeaturedImage != "" && p.FeaturedImage != FallbackImageURL {
		logger.Log.Debugf("post %s: unusable featured image %q, serving fallback", p.ID, p.FeaturedImage)
	}

	price := PricePremium
	if p.DownloadLink != "" {
		price = PriceFree
	}

	return dto.BlogPost{
		ID:             p.ID,
		Title:          p.Title,
		Slug:           p.Slug,
		Description:    p.Excerpt,
		Content:        p.Content,
		Category:       category,
		Author:         author,
		PublishDate:    publishDate,
		Image:          image,
		ReadTime:       DefaultReadTime,
		IsDownloadable: p.DownloadLink != "",
		DownloadURL:    p.DownloadLink,
		Price:          price,
	}
}
