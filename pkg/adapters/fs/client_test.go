package fs_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/donbr/raven/pkg/adapters/fs"
	"github.com/donbr/raven/pkg/domain/interfaces"
)

func TestClient_PutAndGet(t *testing.T) {
	// Create temporary directory
	tempDir, err := os.MkdirTemp("", "fs_client_test")
	gt.NoError(t, err).Required()
	defer os.RemoveAll(tempDir)

	// Create client
	config := &fs.Config{
		BaseDirectory: tempDir,
		Permissions:   0755,
	}
	client, err := fs.New(config)
	gt.NoError(t, err).Required()

	ctx := context.Background()
	key := "architecture_20250101_120000/docs/01_component_inventory.md"
	data := []byte("# Component Inventory\n")

	// Test Put
	err = client.Put(ctx, key, data)
	gt.NoError(t, err).Required()

	// Test Get
	retrieved, err := client.Get(ctx, key)
	gt.NoError(t, err).Required()
	gt.Equal(t, retrieved, data)
}

func TestClient_GetNotFound(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "fs_client_test")
	gt.NoError(t, err).Required()
	defer os.RemoveAll(tempDir)

	config := &fs.Config{
		BaseDirectory: tempDir,
		Permissions:   0755,
	}
	client, err := fs.New(config)
	gt.NoError(t, err).Required()

	ctx := context.Background()
	_, err = client.Get(ctx, "nonexistent-file.md")
	if err != interfaces.ErrStorageKeyNotFound {
		t.Errorf("Expected ErrStorageKeyNotFound, got %v", err)
	}
}

func TestClient_List(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "fs_client_test")
	gt.NoError(t, err).Required()
	defer os.RemoveAll(tempDir)

	config := &fs.Config{
		BaseDirectory: tempDir,
		Permissions:   0755,
	}
	client, err := fs.New(config)
	gt.NoError(t, err).Required()

	ctx := context.Background()
	keys := []string{
		"architecture_20250101_120000/docs/01_component_inventory.md",
		"architecture_20250101_120000/docs/03_data_flows.md",
		"ux_20250102_090000/01_research/user_research.md",
	}
	for _, key := range keys {
		gt.NoError(t, client.Put(ctx, key, []byte("content"))).Required()
	}

	listed, err := client.List(ctx, "architecture_20250101_120000/")
	gt.NoError(t, err).Required()
	gt.A(t, listed).Length(2)

	all, err := client.List(ctx, "")
	gt.NoError(t, err).Required()
	gt.A(t, all).Length(3)
}

func TestClient_SecurityValidation(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "fs_client_test")
	gt.NoError(t, err).Required()
	defer os.RemoveAll(tempDir)

	config := &fs.Config{
		BaseDirectory: tempDir,
		Permissions:   0755,
	}
	client, err := fs.New(config)
	gt.NoError(t, err).Required()

	ctx := context.Background()
	data := []byte("test data")

	// Test path traversal attempts
	maliciousKeys := []string{
		"../etc/passwd",
		"..\\windows\\system32",
		"/etc/passwd",
		"file\x00.txt", // null byte
	}

	for _, key := range maliciousKeys {
		err := client.Put(ctx, key, data)
		if !errors.Is(err, fs.ErrInvalidKey) {
			t.Errorf("Expected invalid key error for key %s, got %v", key, err)
		}
	}
}
