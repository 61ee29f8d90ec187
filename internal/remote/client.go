// Package remote wraps the git binary for fetching external feature
// catalogs. Catalogs are plain git repositories; no library dependency is
// needed beyond the git CLI users already have.
package remote

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Client is the interface for git operations
type Client interface {
	Clone(url, destPath string) error
	Pull(repoPath string) error
	IsGitRepository(path string) bool
}

// DefaultClient is the default git client implementation
type DefaultClient struct {
	Timeout time.Duration
}

// NewClient creates a new git client
func NewClient() *DefaultClient {
	return &DefaultClient{
		Timeout: 5 * time.Minute,
	}
}

// Clone clones a git repository to the specified path
func (c *DefaultClient) Clone(url, destPath string) error {
	cmd := exec.Command("git", "clone", "--depth", "1", url, destPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		errMsg := stderr.String()
		if isAuthError(errMsg) {
			return &AuthError{URL: url, Message: errMsg}
		}
		return fmt.Errorf("git clone failed: %s", errMsg)
	}

	return nil
}

// Pull pulls the latest changes in a git repository
func (c *DefaultClient) Pull(repoPath string) error {
	cmd := exec.Command("git", "-C", repoPath, "pull", "--ff-only")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		errMsg := stderr.String()
		if isAuthError(errMsg) {
			return &AuthError{URL: repoPath, Message: errMsg}
		}
		return fmt.Errorf("git pull failed: %s", errMsg)
	}

	return nil
}

// IsGitRepository checks if the given path is a git repository
func (c *DefaultClient) IsGitRepository(path string) bool {
	cmd := exec.Command("git", "-C", path, "rev-parse", "--is-inside-work-tree")
	err := cmd.Run()
	return err == nil
}

// AuthError represents a git authentication error
type AuthError struct {
	URL     string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed for '%s': %s", e.URL, e.Message)
}

// isAuthError checks if the error message indicates an authentication failure
func isAuthError(msg string) bool {
	authPatterns := []string{
		"Authentication failed",
		"Permission denied",
		"could not read Username",
		"fatal: repository",
		"not found",
		"403",
		"401",
	}

	for _, pattern := range authPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
