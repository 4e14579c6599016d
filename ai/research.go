package ai

import (
	"fmt"
	"strconv"
	"strings"

	serp "github.com/ericgreene/go-serp"
)

// SearchResult represents a web search result
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// SearchConfig holds configuration for web search
type SearchConfig struct {
	MaxResults int
	SafeSearch bool
}

// DefaultSearchConfig returns standard search configuration
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		MaxResults: 5,
		SafeSearch: true,
	}
}

// Researcher looks up a lesson topic on the web so the vocabulary agent can
// ground its examples in current usage. Without an API key it stays disabled.
type Researcher struct {
	apiKey string
	config SearchConfig
}

// NewResearcher creates a Researcher; an empty key disables it.
func NewResearcher(apiKey string) *Researcher {
	return &Researcher{apiKey: apiKey, config: DefaultSearchConfig()}
}

// Enabled reports whether a SerpApi key was configured.
func (r *Researcher) Enabled() bool {
	return r != nil && r.apiKey != ""
}

// Research performs a web search for the given topic.
func (r *Researcher) Research(topic string) ([]SearchResult, error) {
	if !r.Enabled() {
		return nil, fmt.Errorf("SERP_API_KEY not set")
	}

	parameter := map[string]string{
		"q":   topic,
		"key": r.apiKey,
		"num": strconv.Itoa(r.config.MaxResults),
	}
	if r.config.SafeSearch {
		parameter["safe"] = "active"
	}

	queryResponse := serp.NewGoogleSearch(parameter)
	results, err := queryResponse.GetJSON()
	if err != nil {
		return nil, err
	}

	var searchResults []SearchResult
	for _, result := range results.OrganicResults {
		searchResults = append(searchResults, SearchResult{
			Title:   result.Title,
			Snippet: result.Snippet,
			Link:    result.Link,
		})
	}

	return searchResults, nil
}

// ResearchContext renders search results as a context block that can be
// appended to a user message.
func ResearchContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("Relevant findings from the web:\n")
	for _, result := range results {
		builder.WriteString(fmt.Sprintf("- %s\n  %s\n", result.Title, result.Snippet))
	}
	return builder.String()
}
