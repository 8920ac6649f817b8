package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/donbr/raven/pkg/adapters/memory"
	"github.com/donbr/raven/pkg/repository/storage"
)

func TestTranscriptClient_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	adapter := memory.New()
	client := storage.New(adapter)

	transcript := &storage.Transcript{
		Phase:        1,
		AgentID:      "analyzer",
		Prompt:       "Analyze the repository at /src/app",
		Output:       "# Component Inventory\n\n...",
		InputTokens:  1200,
		OutputTokens: 3400,
		CompletedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	err := client.SaveTranscript(ctx, "architecture_20250601_120000", transcript)
	gt.NoError(t, err)

	loaded, err := client.LoadTranscript(ctx, "architecture_20250601_120000", 1)
	gt.NoError(t, err).Required()
	gt.Equal(t, loaded, transcript)
}

func TestTranscriptClient_StoredCompressed(t *testing.T) {
	ctx := context.Background()
	adapter := memory.New()
	client := storage.New(adapter)

	transcript := &storage.Transcript{
		Phase:   2,
		AgentID: "doc-writer",
		Prompt:  "Document the API",
		Output:  "# API Reference",
	}

	err := client.SaveTranscript(ctx, "ux_20250601_120000", transcript)
	gt.NoError(t, err)

	// The raw stored bytes are gzip, not JSON
	raw, err := adapter.Get(ctx, "ux_20250601_120000/transcripts/phase_02.json.gz")
	gt.NoError(t, err).Required()
	gt.Equal(t, raw[0], byte(0x1f))
	gt.Equal(t, raw[1], byte(0x8b))
}

func TestTranscriptClient_LoadNonExistent(t *testing.T) {
	ctx := context.Background()
	adapter := memory.New()
	client := storage.New(adapter)

	_, err := client.LoadTranscript(ctx, "workspace_20250601_120000", 7)
	gt.Error(t, err)
}

func TestTranscriptClient_PhaseIsolation(t *testing.T) {
	ctx := context.Background()
	adapter := memory.New()
	client := storage.New(adapter)

	first := &storage.Transcript{Phase: 1, AgentID: "analyzer", Output: "first"}
	second := &storage.Transcript{Phase: 2, AgentID: "doc-writer", Output: "second"}

	gt.NoError(t, client.SaveTranscript(ctx, "architecture_20250601_120000", first))
	gt.NoError(t, client.SaveTranscript(ctx, "architecture_20250601_120000", second))

	loaded1, err := client.LoadTranscript(ctx, "architecture_20250601_120000", 1)
	gt.NoError(t, err).Required()
	gt.Equal(t, loaded1.Output, "first")

	loaded2, err := client.LoadTranscript(ctx, "architecture_20250601_120000", 2)
	gt.NoError(t, err).Required()
	gt.Equal(t, loaded2.Output, "second")
}
