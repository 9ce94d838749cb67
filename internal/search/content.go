package search

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"github.com/davidpaquet/claude-conversation-browser/internal/logging"
	"github.com/davidpaquet/claude-conversation-browser/internal/model"
)

var log = logging.ForComponent("search")

// MinContentQueryLength is the shortest query forwarded to the content
// searcher. Shorter queries stay on the fuzzy title path only.
const MinContentQueryLength = 2

// ContentMatch is one full-text hit reported by the content searcher. The
// context excerpt always comes from the searcher; the core never invents
// one.
type ContentMatch struct {
	SessionID   string
	MatchedText string
	Context     string
	Role        string
}

// ContentSearcher is the full-text collaborator. Implementations may be
// slow and may fail; callers treat any error as zero matches.
type ContentSearcher interface {
	SearchContent(ctx context.Context, query string, sessions []model.Session) ([]ContentMatch, error)
}

// RipgrepSearcher runs ripgrep over session files with a bounded worker
// pool.
type RipgrepSearcher struct {
	maxWorkers int
	rgPath     string
}

// NewRipgrepSearcher creates a ripgrep-backed content searcher.
func NewRipgrepSearcher() *RipgrepSearcher {
	return &RipgrepSearcher{
		maxWorkers: 4,
		rgPath:     findRipgrep(),
	}
}

// Available reports whether the ripgrep binary was found.
func (c *RipgrepSearcher) Available() bool {
	_, err := exec.LookPath(c.rgPath)
	return err == nil
}

func findRipgrep() string {
	// Try common ripgrep locations
	paths := []string{
		"rg",
		"/usr/local/bin/rg",
		"/usr/bin/rg",
		"/opt/homebrew/bin/rg",
	}

	for _, path := range paths {
		if _, err := exec.LookPath(path); err == nil {
			return path
		}
	}

	// Fallback to "rg" and hope it's in PATH
	return "rg"
}

type searchJob struct {
	query        string
	session      model.Session
	sessionIndex int
}

type sessionHits struct {
	sessionIndex int
	matches      []ContentMatch
}

// SearchContent searches all session files for query and returns hits in
// relevance order: sessions with more occurrences first, ties broken by
// list position so the order is reproducible.
func (c *RipgrepSearcher) SearchContent(ctx context.Context, query string, sessions []model.Session) ([]ContentMatch, error) {
	jobs := make(chan searchJob, len(sessions))
	results := make(chan sessionHits, len(sessions))

	var wg sync.WaitGroup
	for i := 0; i < c.maxWorkers; i++ {
		wg.Add(1)
		go c.worker(ctx, &wg, jobs, results)
	}

	for i, session := range sessions {
		select {
		case <-ctx.Done():
			close(jobs)
			return nil, ctx.Err()
		case jobs <- searchJob{query: query, session: session, sessionIndex: i}:
		}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var perSession []sessionHits
	for hits := range results {
		if len(hits.matches) > 0 {
			perSession = append(perSession, hits)
		}
	}

	// Workers deliver in completion order; restore a deterministic one.
	sort.Slice(perSession, func(i, j int) bool {
		if len(perSession[i].matches) != len(perSession[j].matches) {
			return len(perSession[i].matches) > len(perSession[j].matches)
		}
		return perSession[i].sessionIndex < perSession[j].sessionIndex
	})

	var matches []ContentMatch
	for _, hits := range perSession {
		matches = append(matches, hits.matches...)
	}
	return matches, nil
}

func (c *RipgrepSearcher) worker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan searchJob, results chan<- sessionHits) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			matches, err := c.searchFile(job.query, job.session)
			if err != nil {
				log.Debug("content search failed for file", "path", job.session.FilePath, "error", err)
				continue
			}
			results <- sessionHits{sessionIndex: job.sessionIndex, matches: matches}
		}
	}
}

func (c *RipgrepSearcher) searchFile(query string, session model.Session) ([]ContentMatch, error) {
	cmd := exec.Command(c.rgPath,
		"--json",
		"--max-count", "20",
		"--ignore-case",
		"--fixed-strings",
		query,
		session.FilePath,
	)

	output, err := cmd.Output()
	if err != nil {
		// Exit code 1 means no matches, which is not an error for us
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, err
	}

	var matches []ContentMatch
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		var result map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &result); err != nil {
			continue
		}
		if result["type"] != "match" {
			continue
		}
		data, ok := result["data"].(map[string]interface{})
		if !ok {
			continue
		}

		match := ContentMatch{SessionID: session.ID}

		lines, ok := data["lines"].(map[string]interface{})
		if !ok {
			continue
		}
		text, ok := lines["text"].(string)
		if !ok {
			continue
		}

		match.Role = lineRole(text)

		var start, end int
		hasPositions := false
		if submatches, ok := data["submatches"].([]interface{}); ok && len(submatches) > 0 {
			if submatch, ok := submatches[0].(map[string]interface{}); ok {
				if s, ok := submatch["start"].(float64); ok {
					start = int(s)
					hasPositions = true
				}
				if e, ok := submatch["end"].(float64); ok {
					end = int(e)
				}
			}
		}
		if !hasPositions {
			continue
		}

		match.MatchedText = text[start:end]
		match.Context = extractContext(text, start, end)
		matches = append(matches, match)
	}

	return matches, nil
}

// lineRole pulls the record type out of a matched JSONL line.
func lineRole(line string) string {
	var record struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		return ""
	}
	switch record.Type {
	case "user", "assistant":
		return record.Type
	}
	return ""
}

// extractContext extracts a short excerpt around a match in a JSONL line.
// When the match falls inside a content field, the excerpt is cut from the
// field value rather than the raw JSON.
func extractContext(text string, matchStart, matchEnd int) string {
	if contentStart := strings.Index(text, `"content":"`); contentStart != -1 {
		contentStart += len(`"content":"`)
		contentEnd := strings.Index(text[contentStart:], `"`)
		if contentEnd != -1 && matchStart >= contentStart && matchStart < contentStart+contentEnd {
			content := text[contentStart : contentStart+contentEnd]
			posInContent := matchStart - contentStart
			return window(content, posInContent, posInContent+(matchEnd-matchStart), 50)
		}
	}

	return window(text, matchStart, matchEnd, 30)
}

// window cuts text to pad bytes either side of [start,end) with ellipses.
func window(text string, start, end, pad int) string {
	from := start - pad
	if from < 0 {
		from = 0
	}
	to := end + pad
	if to > len(text) {
		to = len(text)
	}

	var result strings.Builder
	if from > 0 {
		result.WriteString("...")
	}
	result.WriteString(text[from:to])
	if to < len(text) {
		result.WriteString("...")
	}
	return result.String()
}
