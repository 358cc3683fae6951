// Package jira implements a minimal Jira Cloud REST v3 client for issue
// creation. Descriptions are sent as document trees, which the v3 API
// requires.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tixmd/tixmd/internal/adf"
)

const clientTimeout = 30 * time.Second

// Client talks to a single Jira Cloud site using basic auth
// (email + API token).
type Client struct {
	baseURL    string
	email      string
	apiToken   string
	httpClient *http.Client
	debug      bool
}

// SetDebug enables request dumps to stderr.
func (c *Client) SetDebug(on bool) {
	c.debug = on
}

// NewClient creates a client for the given site.
// baseURL is the site root, e.g. "https://team.atlassian.net".
func NewClient(baseURL, email, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		email:    email,
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

// IssueRequest describes the issue to create.
type IssueRequest struct {
	Project     string // project key, e.g. "ENG"
	Summary     string
	IssueType   string // e.g. "Task", "Bug"
	Description *adf.Document
}

// CreatedIssue is the API response for a successful creation.
type CreatedIssue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

type issuePayload struct {
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Project     projectRef    `json:"project"`
	Summary     string        `json:"summary"`
	IssueType   issueTypeRef  `json:"issuetype"`
	Description *adf.Document `json:"description,omitempty"`
}

type projectRef struct {
	Key string `json:"key"`
}

type issueTypeRef struct {
	Name string `json:"name"`
}

// CreateIssue creates an issue and returns its key and API URL.
func (c *Client) CreateIssue(ctx context.Context, issue IssueRequest) (*CreatedIssue, error) {
	if issue.Project == "" {
		return nil, fmt.Errorf("project key is required")
	}
	if issue.Summary == "" {
		return nil, fmt.Errorf("summary is required")
	}

	payload := issuePayload{
		Fields: issueFields{
			Project:     projectRef{Key: issue.Project},
			Summary:     issue.Summary,
			IssueType:   issueTypeRef{Name: issue.IssueType},
			Description: issue.Description,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode issue: %w", err)
	}

	url := c.baseURL + "/rest/api/3/issue"
	if c.debug {
		fmt.Fprintf(os.Stderr, "POST %s\n%s\n", url, body)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.email, c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Jira API returned %d: %s", resp.StatusCode, apiError(respBody))
	}

	var created CreatedIssue
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &created, nil
}

// BrowseURL returns the human-facing URL for an issue key.
func (c *Client) BrowseURL(key string) string {
	return c.baseURL + "/browse/" + key
}

// apiError extracts the error messages from a Jira error response body,
// falling back to the raw body when it is not the usual shape.
func apiError(body []byte) string {
	var parsed struct {
		ErrorMessages []string          `json:"errorMessages"`
		Errors        map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		var parts []string
		parts = append(parts, parsed.ErrorMessages...)
		for field, msg := range parsed.Errors {
			parts = append(parts, field+": "+msg)
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}
	return strings.TrimSpace(string(body))
}
