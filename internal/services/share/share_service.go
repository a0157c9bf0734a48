// Package share builds deep links, platform share URLs and plain-text
// reports for comparisons and rankings. Everything here is outbound
// link construction; nothing is sent from the server.
package share

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jackiechou1/sneaker-comparison-matrix/internal/models"
)

// RankingEntry is one row of a rankings report, merged from the catalog
// and the ranking engine.
type RankingEntry struct {
	Model       string `json:"model"`
	Brand       string `json:"brand"`
	Score       int    `json:"score"`
	Favorites   int    `json:"favorites"`
	Comparisons int    `json:"comparisons"`
}

// PlatformLinks holds ready-to-open share URLs for each target.
type PlatformLinks struct {
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	LinkedIn string `json:"linkedin"`
	Reddit   string `json:"reddit"`
	Mailto   string `json:"mailto"`
}

type Service struct {
	baseURL string
}

func NewService(baseURL string) *Service {
	return &Service{baseURL: strings.TrimRight(baseURL, "/")}
}

// CompareLink builds the deep link for a comparison, e.g.
// http://host/?compare=1,2,3.
func (s *Service) CompareLink(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	params := url.Values{}
	params.Set("compare", strings.Join(parts, ","))
	return s.baseURL + "/?" + params.Encode()
}

// RankingsLink builds the deep link for the rankings view.
func (s *Service) RankingsLink() string {
	return s.baseURL + "/rankings"
}

// PlatformLinks assembles the share URLs for every supported target.
func (s *Service) PlatformLinks(title, text, link string) PlatformLinks {
	return PlatformLinks{
		Twitter:  TwitterURL(text, link),
		Facebook: FacebookURL(link),
		LinkedIn: LinkedInURL(link),
		Reddit:   RedditURL(link, title),
		Mailto:   MailtoURL(title, text+"\n\n"+link),
	}
}

func TwitterURL(text, link string) string {
	params := url.Values{}
	params.Set("text", text)
	params.Set("url", link)
	return "https://twitter.com/intent/tweet?" + params.Encode()
}

func FacebookURL(link string) string {
	params := url.Values{}
	params.Set("u", link)
	return "https://www.facebook.com/sharer/sharer.php?" + params.Encode()
}

func LinkedInURL(link string) string {
	params := url.Values{}
	params.Set("url", link)
	return "https://www.linkedin.com/sharing/share-offsite/?" + params.Encode()
}

func RedditURL(link, title string) string {
	params := url.Values{}
	params.Set("url", link)
	params.Set("title", title)
	return "https://reddit.com/submit?" + params.Encode()
}

func MailtoURL(subject, body string) string {
	params := url.Values{}
	params.Set("subject", subject)
	params.Set("body", body)
	// mailto wants %20 for spaces, not '+'.
	return "mailto:?" + strings.ReplaceAll(params.Encode(), "+", "%20")
}

// CompareReport renders a comparison as shareable plain text.
func CompareReport(sneakers []models.SneakerRecord, title string) string {
	if title == "" {
		title = "Sneaker Comparison"
	}
	divider := strings.Repeat("=", 50)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02"))
	fmt.Fprintf(&b, "%s\n\n", divider)

	for i, s := range sneakers {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s.Model)
		fmt.Fprintf(&b, "   Brand: %s\n", s.Brand)
		fmt.Fprintf(&b, "   MSRP: $%.2f\n", s.Price)
		fmt.Fprintf(&b, "   Resale: $%.2f\n", s.ResalePrice)
		fmt.Fprintf(&b, "   Premium: %s%d%%\n", plusSign(s.Premium), s.Premium)
		fmt.Fprintf(&b, "   Use: %s\n", s.Use)
		fmt.Fprintf(&b, "   Style: %s\n\n", s.Style)
	}

	fmt.Fprintf(&b, "%s\n", divider)
	b.WriteString("Share this comparison with your friends!\n")
	return b.String()
}

// RankingsReport renders the top entries of the community ranking as
// shareable plain text.
func RankingsReport(entries []RankingEntry) string {
	if len(entries) > 10 {
		entries = entries[:10]
	}
	divider := strings.Repeat("=", 50)

	var b strings.Builder
	b.WriteString("Sneaker Community Rankings\n")
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02"))
	fmt.Fprintf(&b, "%s\n\n", divider)

	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, e.Model, e.Brand)
		fmt.Fprintf(&b, "   Hotness Score: %d\n", e.Score)
		fmt.Fprintf(&b, "   Favorites: %d\n", e.Favorites)
		fmt.Fprintf(&b, "   Comparisons: %d\n\n", e.Comparisons)
	}

	fmt.Fprintf(&b, "%s\n", divider)
	b.WriteString("Check out the full rankings!\n")
	return b.String()
}

func plusSign(premium int) string {
	if premium > 0 {
		return "+"
	}
	return ""
}
