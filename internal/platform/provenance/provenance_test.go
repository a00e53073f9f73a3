package provenance

import (
	"context"
	"testing"
	"time"
)

type row struct {
	Name string `db:"name"`
	Stamp
}

func TestFixedProviderStampsRows(t *testing.T) {
	at := time.Date(2024, 7, 1, 18, 30, 0, 0, time.FixedZone("EDT", -4*3600))
	p := Fixed("abc1234", "1.2.0", at)

	rows := []*row{{Name: "a"}, {Name: "b"}}
	Apply(p, rows...)

	for _, r := range rows {
		if r.WrittenAt != "2024-07-01T22:30:00.000000Z" {
			t.Fatalf("unexpected written at: %s", r.WrittenAt)
		}
		if r.GitHash != "abc1234" || r.Version != "1.2.0" {
			t.Fatalf("unexpected stamp: %+v", r.Stamp)
		}
	}
}

func TestNewProviderDefaults(t *testing.T) {
	p := NewProvider("  ", "", nil)
	if p.Revision() != UnknownRevision {
		t.Fatalf("expected unknown revision, got %q", p.Revision())
	}
	if p.Version() != "dev" {
		t.Fatalf("expected dev version, got %q", p.Version())
	}
	if p.Now().Location() != time.UTC {
		t.Fatalf("expected UTC clock")
	}
}

func TestDetectRevisionNeverEmpty(t *testing.T) {
	if rev := DetectRevision(context.Background()); rev == "" {
		t.Fatalf("expected a revision or %q", UnknownRevision)
	}
}

func TestShorten(t *testing.T) {
	if got := shorten("0123456789abcdef"); got != "0123456" {
		t.Fatalf("unexpected short hash %q", got)
	}
	if got := shorten("abc"); got != "abc" {
		t.Fatalf("unexpected short hash %q", got)
	}
}
