// Package annotate enriches findings with git blame context from the
// scanned repository. Annotation is best effort: a finding that cannot be
// blamed (file outside the repo, stale line number, shallow clone) simply
// stays unannotated.
package annotate

import (
	"fmt"
	"strings"

	"github.com/ashview/ashview/internal/model"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// BlameInfo describes who last touched the line a finding points at.
// Email is masked before it ever reaches output.
type BlameInfo struct {
	Author    string
	Email     string
	Date      string
	CommitSHA string
}

// Annotator resolves blame info against one repository HEAD.
type Annotator struct {
	commit *object.Commit
}

// Open prepares an annotator for the repository at path.
func Open(path string) (*Annotator, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening repository %s: %w", path, err)
	}
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD of %s: %w", path, err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("loading HEAD commit of %s: %w", path, err)
	}
	return &Annotator{commit: commit}, nil
}

// Line blames a single 1-based line of a repo-relative file.
func (a *Annotator) Line(file string, line int) (*BlameInfo, error) {
	result, err := git.Blame(a.commit, file)
	if err != nil {
		return nil, fmt.Errorf("blaming %s: %w", file, err)
	}
	if line < 1 || line > len(result.Lines) {
		return nil, fmt.Errorf("line %d out of range for %s", line, file)
	}

	l := result.Lines[line-1]
	info := &BlameInfo{
		Author:    l.AuthorName,
		Email:     MaskEmail(l.Author),
		Date:      l.Date.Format("2006-01-02"),
		CommitSHA: l.Hash.String(),
	}
	if len(info.CommitSHA) > 7 {
		info.CommitSHA = info.CommitSHA[:7]
	}
	return info, nil
}

// Finding blames the location a finding points at, or returns nil when the
// finding carries no line number or the blame fails.
func (a *Annotator) Finding(f model.Finding) *BlameInfo {
	if f.LineNumber == nil || f.Location == "" {
		return nil
	}
	info, err := a.Line(f.Location, *f.LineNumber)
	if err != nil {
		return nil
	}
	return info
}

// MaskEmail hides most of an email address while keeping it recognizable,
// e.g. "jane.doe@example.com" -> "j***@e***.com".
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return email
	}

	local := parts[0]
	domain := parts[1]
	return local[0:1] + "***@" + domain[0:1] + "***." + topLevelDomain(domain)
}

func topLevelDomain(domain string) string {
	parts := strings.Split(domain, ".")
	return parts[len(parts)-1]
}
