package worker

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ndemidov/claimsift/internal/model"
)

// MockExtractor implements Extractor
type MockExtractor struct {
	ShouldError bool
}

func (m *MockExtractor) ExtractSource(ctx context.Context, source string) (*model.Report, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return nil, errors.New("extraction error")
	}
	return &model.Report{
		Subject: "Test Subject",
		Source:  source,
	}, nil
}

func TestBatchProcessor_ProcessSources(t *testing.T) {
	extractor := &MockExtractor{}
	processor := NewBatchProcessor(extractor, 2)

	sources := []string{"http://example.com", "notes.txt", "http://bing.com"}
	ctx := context.Background()

	results := processor.ProcessSources(ctx, sources)

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}

	successCount := 0
	for _, res := range results {
		if res.Error == nil {
			successCount++
			if res.Report == nil {
				t.Error("expected report for successful extraction")
			}
		} else {
			t.Errorf("unexpected error for %s: %v", res.Source, res.Error)
		}
	}

	if successCount != 3 {
		t.Errorf("expected 3 successes, got %d", successCount)
	}
}

func TestBatchProcessor_ProcessSources_Error(t *testing.T) {
	extractor := &MockExtractor{ShouldError: true}
	processor := NewBatchProcessor(extractor, 2)

	results := processor.ProcessSources(context.Background(), []string{"http://example.com"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Report != nil {
		t.Error("expected nil report on error")
	}
}

func TestBatchProcessor_ProcessSources_Empty(t *testing.T) {
	extractor := &MockExtractor{}
	processor := NewBatchProcessor(extractor, 2)

	results := processor.ProcessSources(context.Background(), []string{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestReadSourcesFromFile(t *testing.T) {
	content := `http://example.com
# comment
notes.txt

http://bing.com   `

	tmpfile, err := os.CreateTemp("", "sources")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	sources, err := ReadSourcesFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadSourcesFromFile failed: %v", err)
	}

	expected := []string{"http://example.com", "notes.txt", "http://bing.com"}
	if len(sources) != len(expected) {
		t.Fatalf("expected %d sources, got %d", len(expected), len(sources))
	}

	for i, source := range sources {
		if source != expected[i] {
			t.Errorf("expected source %s at index %d, got %s", expected[i], i, source)
		}
	}
}

func TestReadSourcesFromFile_NonExistent(t *testing.T) {
	_, err := ReadSourcesFromFile("non_existent_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestExtractResult_GetError(t *testing.T) {
	r1 := &ExtractResult{Source: "http://example.com", Error: nil}
	if r1.GetError() != nil {
		t.Errorf("expected nil error, got %v", r1.GetError())
	}

	expected := errors.New("extraction failed")
	r2 := &ExtractResult{Source: "http://example.com", Error: expected}
	if r2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r2.GetError())
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	content := "http://example.com\nnotes.txt\n# comment\n\nhttp://bing.com\n"

	tmpfile, err := os.CreateTemp("", "batch_sources")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	extractor := &MockExtractor{}
	processor := NewBatchProcessor(extractor, 2)

	results, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFile_NonExistent(t *testing.T) {
	extractor := &MockExtractor{}
	processor := NewBatchProcessor(extractor, 2)

	_, err := processor.ProcessFile(context.Background(), "no_such_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestBatchProcessor_ProcessFile_Empty(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "empty_sources")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	extractor := &MockExtractor{}
	processor := NewBatchProcessor(extractor, 2)

	results, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results for empty file, got %d", len(results))
	}
}

func TestReadSourcesFromFile_Deduplication(t *testing.T) {
	content := `http://example.com
http://example.com`

	tmpfile, err := os.CreateTemp("", "sources_dedup")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	sources, err := ReadSourcesFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadSourcesFromFile failed: %v", err)
	}

	if len(sources) != 1 {
		t.Errorf("expected 1 source after deduplication, got %d", len(sources))
	}
}
