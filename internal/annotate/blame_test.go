package annotate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ashview/ashview/internal/model"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// initRepo creates a repository with one committed file and returns its path.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}

	content := "resource \"aws_s3_bucket\" \"scan\" {\n  bucket = \"artifacts\"\n}\n"
	if err := os.WriteFile(filepath.Join(dir, "storage.tf"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := wt.Add("storage.tf"); err != nil {
		t.Fatal(err)
	}
	_, err = wt.Commit("add storage config", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Dana Reviewer",
			Email: "dana.reviewer@example.com",
			When:  time.Date(2025, 10, 12, 15, 4, 5, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	return dir
}

func TestAnnotatorLine(t *testing.T) {
	dir := initRepo(t)

	a, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	info, err := a.Line("storage.tf", 2)
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	if info.Author != "Dana Reviewer" {
		t.Errorf("Author = %q", info.Author)
	}
	if info.Email != "d***@e***.com" {
		t.Errorf("Email = %q, want masked", info.Email)
	}
	if info.Date != "2025-10-12" {
		t.Errorf("Date = %q", info.Date)
	}
	if len(info.CommitSHA) != 7 {
		t.Errorf("CommitSHA = %q, want 7-char short SHA", info.CommitSHA)
	}
}

func TestAnnotatorLine_OutOfRange(t *testing.T) {
	a, err := Open(initRepo(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Line("storage.tf", 99); err == nil {
		t.Error("expected error for out-of-range line")
	}
}

func TestAnnotatorFinding(t *testing.T) {
	a, err := Open(initRepo(t))
	if err != nil {
		t.Fatal(err)
	}

	line := 1
	annotated := a.Finding(model.Finding{Location: "storage.tf", LineNumber: &line})
	if annotated == nil {
		t.Fatal("expected blame info for committed file")
	}

	if a.Finding(model.Finding{Location: "storage.tf"}) != nil {
		t.Error("finding without line number should not be annotated")
	}
	if a.Finding(model.Finding{Location: "missing.tf", LineNumber: &line}) != nil {
		t.Error("finding outside the repo should degrade to nil")
	}
}

func TestOpen_NotARepo(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Error("expected error for a non-repository path")
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected string
	}{
		{"jane.doe@example.com", "j***@e***.com"},
		{"a@b.io", "a***@b***.io"},
		{"not-an-email", "not-an-email"},
		{"", ""},
		{"@example.com", "@example.com"},
	}

	for _, tt := range tests {
		if got := MaskEmail(tt.email); got != tt.expected {
			t.Errorf("MaskEmail(%q) = %q, want %q", tt.email, got, tt.expected)
		}
	}
}
