package storage

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/donbr/raven/pkg/domain/interfaces"
)

// Transcript captures the full exchange of a single workflow phase: the
// rendered prompt sent to the agent and the response it produced. Transcripts
// let a failed or surprising run be diagnosed without re-running the agents.
type Transcript struct {
	Phase        int       `json:"phase"`
	AgentID      string    `json:"agent_id"`
	Prompt       string    `json:"prompt"`
	Output       string    `json:"output"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	CompletedAt  time.Time `json:"completed_at"`
}

// Client persists phase transcripts next to run artifacts with gzip
// compression. Prompts embed prior artifacts, so transcripts compress well.
type Client struct {
	adapter interfaces.StorageAdapter
}

// New creates a new transcript client
func New(adapter interfaces.StorageAdapter) *Client {
	return &Client{
		adapter: adapter,
	}
}

// SaveTranscript stores a phase transcript under the run's output prefix
func (c *Client) SaveTranscript(ctx context.Context, outputPrefix string, transcript *Transcript) error {
	key := c.buildTranscriptKey(outputPrefix, transcript.Phase)

	data, err := json.Marshal(transcript)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal transcript",
			goerr.V("output_prefix", outputPrefix),
			goerr.V("phase", transcript.Phase),
		)
	}

	compressed, err := c.compressData(data)
	if err != nil {
		return goerr.Wrap(err, "failed to compress transcript",
			goerr.V("output_prefix", outputPrefix),
			goerr.V("phase", transcript.Phase),
		)
	}

	if err := c.adapter.Put(ctx, key, compressed); err != nil {
		return goerr.Wrap(err, "failed to store transcript",
			goerr.V("key", key),
		)
	}

	return nil
}

// LoadTranscript retrieves and decompresses a phase transcript
func (c *Client) LoadTranscript(ctx context.Context, outputPrefix string, phase int) (*Transcript, error) {
	key := c.buildTranscriptKey(outputPrefix, phase)

	compressed, err := c.adapter.Get(ctx, key)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load transcript",
			goerr.V("key", key),
		)
	}

	data, err := c.decompressData(compressed)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decompress transcript",
			goerr.V("key", key),
		)
	}

	var transcript Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal transcript",
			goerr.V("key", key),
		)
	}

	return &transcript, nil
}

// buildTranscriptKey constructs the storage key for a phase transcript
func (c *Client) buildTranscriptKey(outputPrefix string, phase int) string {
	return fmt.Sprintf("%s/transcripts/phase_%02d.json.gz", outputPrefix, phase)
}

// compressData compresses data using gzip
func (c *Client) compressData(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return nil, goerr.Wrap(err, "failed to write data to gzip writer")
	}

	if err := writer.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to close gzip writer")
	}

	return buf.Bytes(), nil
}

// decompressData decompresses gzip data
func (c *Client) decompressData(compressedData []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(compressedData))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create gzip reader")
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read from gzip reader")
	}

	return data, nil
}
