package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
	main "github.com/ashton-krac/ibm-carbon-terminal-chatbot/cmd/carbon"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/crawl"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrawlCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("crawls discovered pages and writes the document file", func(t *testing.T) {
		t.Parallel()

		crawler := &crawl.Crawler{
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, baseURL string, filter *carbon.URLFilter) ([]string, error) {
					assert.Equal(t, "https://carbondesignsystem.com", baseURL)
					return []string{
						"https://carbondesignsystem.com/components/button",
						"https://carbondesignsystem.com/guidelines/color",
					}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "<html><body>" + url + "</body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*carbon.ExtractResult, error) {
					return &carbon.ExtractResult{Title: "page", ContentHTML: html}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					return "# " + html, nil
				},
			},
			RetryDelays: []time.Duration{},
		}

		var written []*carbon.Document
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Crawler: crawler,
			NewWriter: func(path string) carbon.DocumentWriter {
				assert.Equal(t, "carbon.json", path)
				return &mock.DocumentWriter{
					WriteDocumentsFn: func(_ context.Context, docs []*carbon.Document) error {
						written = docs
						return nil
					},
				}
			},
		}

		cmd := &main.CrawlCmd{URL: "https://carbondesignsystem.com", Output: "carbon.json"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, written, 2)
		assert.Equal(t, "https://carbondesignsystem.com/components/button", written[0].URL)
		assert.Contains(t, stdout.String(), "Found 2 URLs")
		assert.Contains(t, stdout.String(), "Saved 2 pages")
		assert.Contains(t, stdout.String(), "carbon.json")
	})

	t.Run("rejects invalid filter patterns", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.CrawlCmd{URL: "https://carbondesignsystem.com", Filter: []string{"["}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "invalid filter pattern")
	})

	t.Run("reports pages that fail to fetch", func(t *testing.T) {
		t.Parallel()

		crawler := &crawl.Crawler{
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, _ string, _ *carbon.URLFilter) ([]string, error) {
					return []string{
						"https://carbondesignsystem.com/components/button",
						"https://carbondesignsystem.com/broken",
					}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					if url == "https://carbondesignsystem.com/broken" {
						return "", carbon.Errorf(carbon.EUNAVAILABLE, "HTTP 500 for %s", url)
					}
					return "<html><body>ok</body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*carbon.ExtractResult, error) {
					return &carbon.ExtractResult{Title: "page", ContentHTML: html}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) { return html, nil },
			},
			RetryDelays: []time.Duration{},
		}

		var written []*carbon.Document
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Crawler: crawler,
			NewWriter: func(path string) carbon.DocumentWriter {
				return &mock.DocumentWriter{
					WriteDocumentsFn: func(_ context.Context, docs []*carbon.Document) error {
						written = docs
						return nil
					},
				}
			},
		}

		cmd := &main.CrawlCmd{URL: "https://carbondesignsystem.com", Output: "carbon.json"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, written, 1)
		assert.Contains(t, stderr.String(), "skip https://carbondesignsystem.com/broken")
		assert.Contains(t, stdout.String(), "Saved 1 pages")
		assert.Contains(t, stdout.String(), "Skipped 1 pages")
	})
}
