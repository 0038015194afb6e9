// Package briefparser turns a product landing page into a suggested campaign brief.
package briefparser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/creative-copilot/backend/internal/engine"
	"github.com/creative-copilot/backend/internal/models"
	"go.uber.org/zap"
)

const (
	maxDescriptionRunes = 500
	maxFeatures         = 3
	maxFeatureRunes     = 120
)

var ErrInvalidURL = errors.New("url must be absolute http(s)")

var errPrivateAddr = fmt.Errorf("%w: private or local address", ErrInvalidURL)

var cgnat = netip.MustParsePrefix("100.64.0.0/10")

// publicAddr reports whether a page may be fetched from ip.
func publicAddr(ip netip.Addr) bool {
	ip = ip.Unmap()
	return ip.IsValid() &&
		!ip.IsLoopback() &&
		!ip.IsPrivate() &&
		!ip.IsLinkLocalUnicast() &&
		!ip.IsLinkLocalMulticast() &&
		!ip.IsInterfaceLocalMulticast() &&
		!ip.IsMulticast() &&
		!ip.IsUnspecified() &&
		!cgnat.Contains(ip)
}

// checkDial runs after DNS resolution, so it also covers redirects and
// hostnames that resolve to internal addresses.
func (p *Parser) checkDial(_, address string, _ syscall.RawConn) error {
	if p.allowPrivate {
		return nil
	}
	ap, err := netip.ParseAddrPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", errPrivateAddr, address)
	}
	if !publicAddr(ap.Addr()) {
		return fmt.Errorf("%w: %s", errPrivateAddr, ap.Addr())
	}
	return nil
}

// Extraction is what could be read off a page. Fields may be empty.
type Extraction struct {
	SourceURL   string    `json:"source_url"`
	ProductName string    `json:"product_name"`
	Description string    `json:"description"`
	Features    []string  `json:"features,omitempty"`
	Categories  []string  `json:"categories"`
	LangGuess   string    `json:"lang_guess"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Brief folds the extraction into a brief. Features become extra sentences
// so they surface as caption bullets.
func (e *Extraction) Brief(goal models.Goal, tone models.Tone) models.CampaignBrief {
	parts := make([]string, 0, 1+len(e.Features))
	if d := strings.TrimSpace(e.Description); d != "" {
		parts = append(parts, strings.TrimRight(d, ". "))
	}
	for _, f := range e.Features {
		parts = append(parts, strings.TrimRight(f, ". "))
	}
	desc := strings.Join(parts, ". ")
	if desc != "" {
		desc += "."
	}
	return models.CampaignBrief{
		ProductName:        e.ProductName,
		ProductDescription: desc,
		Goal:               goal,
		Tone:               tone,
	}
}

type Parser struct {
	httpClient   *http.Client
	log          *zap.Logger
	maxRetries   int
	backoff      time.Duration
	allowPrivate bool
}

// NewParser builds a parser that only fetches public addresses.
func NewParser(timeoutMS, maxRetries int, log *zap.Logger) *Parser {
	timeout := time.Duration(timeoutMS) * time.Millisecond
	p := &Parser{
		log:        log,
		maxRetries: maxRetries,
		backoff:    500 * time.Millisecond,
	}

	dialer := &net.Dialer{Timeout: timeout, Control: p.checkDial}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext
	p.httpClient = &http.Client{Timeout: timeout, Transport: transport}
	return p
}

func (p *Parser) FetchAndExtract(ctx context.Context, rawURL string) (*Extraction, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidURL
	}
	if !p.allowPrivate {
		host := strings.ToLower(u.Hostname())
		if host == "localhost" || strings.HasSuffix(host, ".localhost") {
			return nil, errPrivateAddr
		}
		if ip, err := netip.ParseAddr(host); err == nil && !publicAddr(ip) {
			return nil, errPrivateAddr
		}
	}

	var doc *goquery.Document
	var lastErr error

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * p.backoff):
			}
		}

		doc, lastErr = p.fetch(ctx, u.String())
		if lastErr == nil || errors.Is(lastErr, ErrInvalidURL) {
			break
		}
		p.log.Debug("brief fetch failed",
			zap.String("url", u.String()),
			zap.Int("attempt", attempt+1),
			zap.Error(lastErr),
		)
	}
	if lastErr != nil {
		return nil, lastErr
	}

	ex := Extract(doc)
	ex.SourceURL = u.String()
	ex.FetchedAt = time.Now().UTC()
	return ex, nil
}

func (p *Parser) fetch(ctx context.Context, target string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; CreativeCopilot/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
	return goquery.NewDocumentFromReader(io.LimitReader(resp.Body, 2<<20))
}

// Extract reads a brief out of an already parsed page.
func Extract(doc *goquery.Document) *Extraction {
	ex := &Extraction{
		ProductName: productName(doc),
		Description: description(doc),
		Features:    features(doc),
	}

	ex.Categories = engine.Classify(ex.Description + " " + strings.Join(ex.Features, " ")).Ordered()
	ex.LangGuess = guessLanguage(ex.ProductName + " " + ex.Description)
	return ex
}

func meta(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if v, ok := doc.Find(sel).First().Attr("content"); ok {
			if v = collapse(v); v != "" {
				return v
			}
		}
	}
	return ""
}

func productName(doc *goquery.Document) string {
	if name := meta(doc, `meta[property="og:site_name"]`); name != "" {
		return name
	}
	title := meta(doc, `meta[property="og:title"]`)
	if title == "" {
		title = collapse(doc.Find("title").First().Text())
	}
	if title == "" {
		title = collapse(doc.Find("h1").First().Text())
	}
	// "Product | tagline" and "Product - tagline"
	for _, sep := range []string{" | ", " - ", " – ", " — ", ": "} {
		if i := strings.Index(title, sep); i > 0 {
			return strings.TrimSpace(title[:i])
		}
	}
	return title
}

func description(doc *goquery.Document) string {
	if d := meta(doc, `meta[name="description"]`, `meta[property="og:description"]`, `meta[name="twitter:description"]`); d != "" {
		return truncate(d, maxDescriptionRunes)
	}

	var b strings.Builder
	doc.Find("main p, article p, body p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := collapse(s.Text())
		if text == "" {
			return true
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(text)
		return utf8.RuneCountInString(b.String()) < maxDescriptionRunes
	})
	return truncate(b.String(), maxDescriptionRunes)
}

func features(doc *goquery.Document) []string {
	var out []string
	seen := map[string]bool{}
	doc.Find("main li, section li, article li").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Find("a").Length() > 0 && s.Children().Length() == s.Find("a").Length() {
			// navigation
			return true
		}
		text := collapse(s.Text())
		if text == "" || seen[strings.ToLower(text)] {
			return true
		}
		seen[strings.ToLower(text)] = true
		out = append(out, truncate(text, maxFeatureRunes))
		return len(out) < maxFeatures
	})
	return out
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)[:n]
	return strings.TrimSpace(string(r))
}

func guessLanguage(text string) string {
	var cyrillic, latin, arabic, cjk, total int

	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		case unicode.Is(unicode.Latin, r):
			latin++
		case unicode.Is(unicode.Arabic, r):
			arabic++
		case unicode.Is(unicode.Han, r), unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r):
			cjk++
		}
	}

	if total == 0 {
		return "unknown"
	}

	share := func(n int) float64 { return float64(n) / float64(total) }
	switch {
	case share(cyrillic) >= 0.3:
		return "ru"
	case share(arabic) >= 0.3:
		return "ar"
	case share(cjk) >= 0.3:
		return "zh"
	case share(latin) >= 0.3:
		return "en"
	default:
		return "other"
	}
}
