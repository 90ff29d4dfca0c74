// Package crawl provides documentation crawling orchestration.
// It coordinates sitemap discovery, fetching, extraction, and
// conversion of documentation pages into documents.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// Crawler orchestrates the crawling of a documentation site.
type Crawler struct {
	Sitemaps    carbon.SitemapService
	Fetcher     carbon.Fetcher
	Extractor   carbon.Extractor
	Converter   carbon.Converter
	Selector    carbon.LinkSelector
	Concurrency int
	MaxPages    int
	RetryDelays []time.Duration

	// Frontier holds the worklist for recursive crawls. A fresh
	// bloom-deduplicated Frontier is used when nil.
	Frontier carbon.URLFrontier
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single URL.
type crawlResult struct {
	position int
	url      string
	title    string
	markdown string
	hash     string
	err      error
}

// Frontier configuration for recursive crawling.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
	// defaultMaxPages limits the number of URLs processed to prevent runaway crawls.
	defaultMaxPages = 1000
)

// Crawl collects documentation pages starting at baseURL and returns
// them as documents in crawl order. URLs are discovered from the site's
// sitemap when one exists; otherwise links are followed recursively
// within baseURL's host and path prefix. Pages whose converted content
// duplicates an earlier page are dropped.
func (c *Crawler) Crawl(ctx context.Context, baseURL string, filter *carbon.URLFilter, progress ProgressFunc) ([]*carbon.Document, *Result, error) {
	urls, err := c.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	if len(urls) == 0 {
		if c.Selector != nil {
			return c.recursiveCrawl(ctx, baseURL, filter, progress)
		}
		return nil, &Result{}, nil
	}

	if max := c.maxPages(); len(urls) > max {
		urls = urls[:max]
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan crawlResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, pageURL := range urls {
			g.Go(func() error {
				result := c.processURL(gctx, i, pageURL)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in discovery order
	results := make([]crawlResult, len(urls))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failedCount++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       result.url,
					Error:     result.err,
				})
			}
		} else if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			})
		}
	}

	// Assemble documents, dropping duplicate content
	var docs []*carbon.Document
	var totalBytes int
	seenContent := make(map[string]struct{})

	for _, result := range results {
		if result.err != nil {
			continue
		}
		if _, ok := seenContent[result.hash]; ok {
			continue
		}
		seenContent[result.hash] = struct{}{}

		docs = append(docs, &carbon.Document{
			URL:     result.url,
			Title:   result.title,
			Content: result.markdown,
		})
		totalBytes += len(result.markdown)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return docs, &Result{
		Saved:  len(docs),
		Failed: failedCount,
		Bytes:  totalBytes,
	}, nil
}

// processURL fetches and processes a single URL.
func (c *Crawler) processURL(ctx context.Context, position int, pageURL string) crawlResult {
	result := crawlResult{
		position: position,
		url:      pageURL,
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		return c.Fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, fetchFn, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	extracted, err := c.Extractor.Extract(html)
	if err != nil {
		result.err = err
		return result
	}

	markdown, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.err = err
		return result
	}

	result.title = titleOrURL(extracted.Title, pageURL)
	result.markdown = markdown
	result.hash = computeHash(markdown)

	return result
}

func (c *Crawler) maxPages() int {
	if c.MaxPages > 0 {
		return c.MaxPages
	}
	return defaultMaxPages
}

// recursiveCrawl performs recursive link-following when sitemap
// discovery finds nothing. It starts from baseURL and follows links
// within its host and path prefix scope.
//
// URLs are processed sequentially to keep frontier management simple.
func (c *Crawler) recursiveCrawl(ctx context.Context, baseURL string, filter *carbon.URLFilter, progress ProgressFunc) ([]*carbon.Document, *Result, error) {
	sourceURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid base URL: %w", err)
	}
	pathPrefix := sourceURL.Path

	frontier := c.Frontier
	if frontier == nil {
		frontier = NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	}
	frontier.Push(carbon.DiscoveredLink{
		URL:      baseURL,
		Priority: carbon.PriorityNavigation,
	})

	var docs []*carbon.Document
	var result Result
	seenContent := make(map[string]struct{})
	processedCount := 0

	for {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if processedCount >= c.maxPages() {
			break
		}
		processedCount++

		if ctx.Err() != nil {
			break
		}

		delays := c.RetryDelays
		if delays == nil {
			delays = DefaultRetryDelays()
		}
		fetchFn := func(ctx context.Context, url string) (string, error) {
			return c.Fetcher.Fetch(ctx, url)
		}
		html, err := FetchWithRetryDelays(ctx, link.URL, fetchFn, nil, delays)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:  ProgressFailed,
					URL:   link.URL,
					Error: err,
				})
			}
			continue
		}

		// Extract links and add to frontier
		links, err := c.Selector.ExtractLinks(html, link.URL)
		if err == nil {
			for _, discovered := range links {
				discoveredURL, err := url.Parse(discovered.URL)
				if err != nil {
					continue
				}
				if discoveredURL.Host != sourceURL.Host {
					continue
				}
				if !strings.HasPrefix(discoveredURL.Path, pathPrefix) {
					continue
				}
				if !filter.Match(discovered.URL) {
					continue
				}
				frontier.Push(discovered)
			}
		}

		extracted, err := c.Extractor.Extract(html)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:  ProgressFailed,
					URL:   link.URL,
					Error: err,
				})
			}
			continue
		}

		markdown, err := c.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:  ProgressFailed,
					URL:   link.URL,
					Error: err,
				})
			}
			continue
		}

		hash := computeHash(markdown)
		if _, ok := seenContent[hash]; ok {
			continue
		}
		seenContent[hash] = struct{}{}

		docs = append(docs, &carbon.Document{
			URL:     link.URL,
			Title:   titleOrURL(extracted.Title, link.URL),
			Content: markdown,
		})

		result.Saved++
		result.Bytes += len(markdown)

		if progress != nil {
			progress(ProgressEvent{
				Type: ProgressCompleted,
				URL:  link.URL,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type: ProgressFinished,
		})
	}

	return docs, &result, nil
}

// titleOrURL falls back to the page URL when extraction found no title,
// so every document satisfies Validate.
func titleOrURL(title, pageURL string) string {
	if title != "" {
		return title
	}
	return pageURL
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
