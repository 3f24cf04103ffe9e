package branding

import (
	"errors"
	"testing"

	"github.com/sinholic/epesantren/app/models"
)

type mockSchoolStore struct {
	schools map[string]*models.School
	err     error
}

func (m *mockSchoolStore) FindByDomain(domain string) (*models.School, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.schools[domain], nil
}

func strptr(s string) *string { return &s }

func newResolver(schools map[string]*models.School) *Resolver {
	return &Resolver{Store: &mockSchoolStore{schools: schools}, AppName: "ePesantren"}
}

func TestResolveExactDomain(t *testing.T) {
	r := newResolver(map[string]*models.School{
		"pesantren.example.com": {
			SchoolName:   "Pesantren Al-Hikmah",
			Domain:       "pesantren.example.com",
			LogoURL:      strptr("https://cdn.example.com/logo.png"),
			PrimaryColor: strptr("#1E7A3C"),
		},
	})

	b := r.Resolve("pesantren.example.com:8080")
	if b.SchoolName != "Pesantren Al-Hikmah" {
		t.Fatalf("unexpected school name %q", b.SchoolName)
	}
	if b.AppName != "ePesantren" {
		t.Fatalf("unexpected app name %q", b.AppName)
	}
	if b.LogoURL == nil || *b.LogoURL != "https://cdn.example.com/logo.png" {
		t.Fatalf("unexpected logo url %v", b.LogoURL)
	}
	if b.PrimaryColor == nil || *b.PrimaryColor != "#1e7a3c" {
		t.Fatalf("expected normalized color, got %v", b.PrimaryColor)
	}
}

func TestResolveParentDomainFallback(t *testing.T) {
	r := newResolver(map[string]*models.School{
		"example.com": {SchoolName: "Sekolah Induk", Domain: "example.com"},
	})

	b := r.Resolve("sub.school.example.com")
	if b.SchoolName != "Sekolah Induk" {
		t.Fatalf("expected parent-domain match, got %q", b.SchoolName)
	}
}

func TestResolveCompoundSuffix(t *testing.T) {
	r := newResolver(map[string]*models.School{
		"alhikmah.sch.id": {SchoolName: "Al-Hikmah", Domain: "alhikmah.sch.id"},
	})

	// The registrable parent of portal.alhikmah.sch.id keeps three labels.
	b := r.Resolve("portal.alhikmah.sch.id")
	if b.SchoolName != "Al-Hikmah" {
		t.Fatalf("expected compound-suffix parent match, got %q", b.SchoolName)
	}
}

func TestResolveNoMatchReturnsDefault(t *testing.T) {
	r := newResolver(nil)

	b := r.Resolve("unknown.tld")
	if b != r.Default() {
		t.Fatalf("expected default branding, got %+v", b)
	}
	if b.SchoolName != DefaultSchoolName || b.LogoURL != nil || b.PrimaryColor != nil {
		t.Fatalf("unexpected default branding %+v", b)
	}
}

func TestResolveStoreErrorReturnsDefault(t *testing.T) {
	r := &Resolver{
		Store:   &mockSchoolStore{err: errors.New("connection refused")},
		AppName: "ePesantren",
	}

	if b := r.Resolve("pesantren.example.com"); b != r.Default() {
		t.Fatalf("expected default branding on store failure, got %+v", b)
	}
}

func TestResolveUnsafeTenantValuesDropped(t *testing.T) {
	r := newResolver(map[string]*models.School{
		"evil.example.com": {
			SchoolName:   "Evil",
			Domain:       "evil.example.com",
			LogoURL:      strptr("javascript:alert(1)"),
			PrimaryColor: strptr("red;background:url(x)"),
		},
	})

	b := r.Resolve("evil.example.com")
	if b.LogoURL != nil {
		t.Fatalf("unsafe logo url must be dropped, got %v", *b.LogoURL)
	}
	if b.PrimaryColor != nil {
		t.Fatalf("unsafe color must be dropped, got %v", *b.PrimaryColor)
	}
	if b.SchoolName != "Evil" {
		t.Fatalf("school name should survive, got %q", b.SchoolName)
	}
}

func TestResolveNeverPanics(t *testing.T) {
	r := newResolver(nil)

	for _, host := range []string{"", ".", "...", "no-dots", "a.b", "x:y:z", "host\x00name", ":8080"} {
		if b := r.Resolve(host); b.AppName != "ePesantren" {
			t.Fatalf("Resolve(%q) lost app name", host)
		}
	}
}
