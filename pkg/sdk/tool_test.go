package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newToolServer(t *testing.T, checkParams func(SearchParams), results []SearchResult) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var params SearchParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			t.Fatalf("decode params: %v", err)
		}
		if checkParams != nil {
			checkParams(params)
		}
		_ = json.NewEncoder(w).Encode(SearchResponse{Results: results})
	}))
}

func TestTool_Definition(t *testing.T) {
	tool := NewTool(New("http://localhost"))
	def := tool.Definition()

	if def.Type != openai.ToolTypeFunction {
		t.Errorf("unexpected tool type: %s", def.Type)
	}
	if def.Function.Name != ToolName {
		t.Errorf("unexpected function name: %s", def.Function.Name)
	}
}

func TestTool_Invoke_DefaultLimit(t *testing.T) {
	srv := newToolServer(t, func(p SearchParams) {
		if p.Limit != ToolDefaultLimit {
			t.Errorf("expected default limit %d, got %d", ToolDefaultLimit, p.Limit)
		}
	}, []SearchResult{
		{Title: "Designer", Href: "/jobs/designer", Index: "jobs", Description: "Design role"},
	})
	defer srv.Close()

	tool := NewTool(New(srv.URL))
	res, err := tool.Invoke(context.Background(), `{"query":"design"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.TotalResults != 1 || len(res.Results) != 1 {
		t.Fatalf("unexpected result count: %+v", res)
	}
	if res.Results[0].Href != "/jobs/designer" || res.Results[0].Index != "jobs" {
		t.Errorf("unexpected result item: %+v", res.Results[0])
	}
	if res.Message != "Found 1 relevant results on the site." {
		t.Errorf("unexpected message: %q", res.Message)
	}
}

func TestTool_Invoke_LimitCap(t *testing.T) {
	srv := newToolServer(t, func(p SearchParams) {
		if p.Limit != ToolMaxLimit {
			t.Errorf("expected capped limit %d, got %d", ToolMaxLimit, p.Limit)
		}
	}, nil)
	defer srv.Close()

	tool := NewTool(New(srv.URL))
	if _, err := tool.Invoke(context.Background(), `{"query":"design","limit":100}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTool_Invoke_NorwegianMessage(t *testing.T) {
	srv := newToolServer(t, nil, []SearchResult{
		{Title: "En", Href: "/news/1", Index: "news"},
		{Title: "To", Href: "/news/2", Index: "news"},
	})
	defer srv.Close()

	tool := NewTool(New(srv.URL))
	res, err := tool.Invoke(context.Background(), `{"query":"nyheter","locale":"no"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Fant 2 relevante resultater på nettsiden." {
		t.Errorf("unexpected message: %q", res.Message)
	}
}

func TestTool_Invoke_BadArguments(t *testing.T) {
	tool := NewTool(New("http://localhost"))
	if _, err := tool.Invoke(context.Background(), `{broken`); err == nil {
		t.Fatal("expected error for malformed arguments")
	}
}
