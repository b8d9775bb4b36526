package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/kollektivet/sitesearch/internal/db"
)

// SearchText runs a field-scoped full-text search via FT.SEARCH.
// The query matches a single TEXT field; Tags become exact TAG filters.
func (s *Store) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if q.Field == "" {
		return nil, fmt.Errorf("field is required")
	}
	if q.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if q.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	textPart := fmt.Sprintf("@%s:(%s)", q.Field, escapeQuery(q.Query))

	queryStr := textPart
	if tagPart := buildTagFilters(q.Tags); tagPart != "" {
		queryStr = tagPart + " " + textPart
	}

	args := []string{
		q.IndexName, queryStr,
		"WITHSCORES",
		"LIMIT", "0", strconv.Itoa(q.Limit),
		"DIALECT", "2",
	}

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	return parseTextResult(raw)
}

// parseTextResult parses the WITHSCORES reply.
// 3-stride: [total, key1, score1, fields1, key2, score2, fields2, ...]
func parseTextResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	entries := make([]db.SearchEntry, 0, total)
	for i := 1; i+2 < len(raw); i += 3 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		scoreStr, err := raw[i+1].ToString()
		if err != nil {
			continue
		}
		score, err := strconv.ParseFloat(scoreStr, 64)
		if err != nil {
			continue
		}

		fields, err := raw[i+2].ToArray()
		if err != nil {
			continue
		}

		entries = append(entries, db.SearchEntry{
			Key:    key,
			Score:  score,
			Fields: parseFieldPairs(fields),
		})
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// buildTagFilters renders equality filters as TAG clauses in key order.
// Sorted iteration keeps the command deterministic for a given query.
func buildTagFilters(tags map[string]string) string {
	if len(tags) == 0 {
		return ""
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("@%s:{%s}", k, escapeTag(tags[k])))
	}
	return strings.Join(parts, " ")
}

// escapeQuery neutralizes FT.SEARCH query syntax in user input.
func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`:`, `\:`,
	`$`, `\$`,
	`%`, `\%`,
	`!`, `\!`,
	`^`, `\^`,
	`&`, `\&`,
)

// escapeTag escapes TAG value separators.
var tagEscaper = strings.NewReplacer(
	`\`, `\\`,
	`,`, `\,`,
	`.`, `\.`,
	`<`, `\<`,
	`>`, `\>`,
	`{`, `\{`,
	`}`, `\}`,
	`[`, `\[`,
	`]`, `\]`,
	`"`, `\"`,
	`'`, `\'`,
	`:`, `\:`,
	`;`, `\;`,
	`!`, `\!`,
	`@`, `\@`,
	`#`, `\#`,
	`$`, `\$`,
	`%`, `\%`,
	`^`, `\^`,
	`&`, `\&`,
	`*`, `\*`,
	`(`, `\(`,
	`)`, `\)`,
	`-`, `\-`,
	`+`, `\+`,
	`=`, `\=`,
	`~`, `\~`,
	` `, `\ `,
)

func escapeTag(s string) string {
	return tagEscaper.Replace(s)
}
