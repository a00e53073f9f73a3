// Package provenance stamps persisted rows with write time, source revision and software version.
package provenance

import (
	"context"
	"os/exec"
	"runtime/debug"
	"strings"
	"time"
)

const (
	UnknownRevision = "unknown"
	TimeLayout      = "2006-01-02T15:04:05.000000Z07:00"
	shortHashLength = 7
)

// Stamp is embedded in every row model; the persistence layer fills it at write time.
type Stamp struct {
	WrittenAt string `db:"_written_at"`
	GitHash   string `db:"_git_hash"`
	Version   string `db:"_version"`
}

func (s *Stamp) SetProvenance(stamp Stamp) {
	*s = stamp
}

// Stamped is implemented by any row embedding Stamp.
type Stamped interface {
	SetProvenance(Stamp)
}

// Provider is created once at startup and passed to the persistence layer.
type Provider struct {
	revision string
	version  string
	now      func() time.Time
}

func NewProvider(revision, version string, now func() time.Time) *Provider {
	revision = strings.TrimSpace(revision)
	if revision == "" {
		revision = UnknownRevision
	}
	version = strings.TrimSpace(version)
	if version == "" {
		version = "dev"
	}
	if now == nil {
		now = time.Now
	}
	return &Provider{revision: revision, version: version, now: now}
}

// Fixed returns a provider with constant values, for tests and reproducible runs.
func Fixed(revision, version string, at time.Time) *Provider {
	return NewProvider(revision, version, func() time.Time { return at })
}

func (p *Provider) Revision() string { return p.revision }

func (p *Provider) Version() string { return p.version }

// Now returns the provider clock in UTC.
func (p *Provider) Now() time.Time {
	return p.now().UTC()
}

// Timestamp formats the provider clock as ISO-8601 UTC.
func (p *Provider) Timestamp() string {
	return FormatTime(p.Now())
}

func (p *Provider) Stamp() Stamp {
	return Stamp{
		WrittenAt: p.Timestamp(),
		GitHash:   p.revision,
		Version:   p.version,
	}
}

// Apply stamps every row.
func Apply[T Stamped](p *Provider, rows ...T) {
	stamp := p.Stamp()
	for _, row := range rows {
		row.SetProvenance(stamp)
	}
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// DetectRevision resolves a short source revision: build info first, then the git
// checkout in the working directory, then UnknownRevision.
func DetectRevision(ctx context.Context) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return shorten(setting.Value)
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, "git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return UnknownRevision
	}
	if rev := strings.TrimSpace(string(out)); rev != "" {
		return rev
	}
	return UnknownRevision
}

func shorten(rev string) string {
	if len(rev) > shortHashLength {
		return rev[:shortHashLength]
	}
	return rev
}
