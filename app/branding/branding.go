package branding

import (
	"log"
	"strings"

	"github.com/sinholic/epesantren/app/models"
)

// DefaultSchoolName is the display name used when no tenant matches.
const DefaultSchoolName = "Sekolah"

// Branding is the per-tenant display configuration resolved for one
// request. LogoURL and PrimaryColor are only set when they pass
// sanitization.
type Branding struct {
	AppName      string  `json:"appName"`
	SchoolName   string  `json:"schoolName"`
	LogoURL      *string `json:"logoUrl"`
	PrimaryColor *string `json:"primaryColor"`
}

// SchoolStore looks a tenant up by domain. A miss is (nil, nil).
type SchoolStore interface {
	FindByDomain(domain string) (*models.School, error)
}

type Resolver struct {
	Store   SchoolStore
	AppName string
}

// Default returns the process-wide fallback branding.
func (r *Resolver) Default() Branding {
	return Branding{AppName: r.AppName, SchoolName: DefaultSchoolName}
}

// Resolve maps an inbound hostname to tenant branding. It is total: lookup
// failures and unmatched or malformed hostnames all resolve to the default,
// so branding can never block a page.
func (r *Resolver) Resolve(hostname string) Branding {
	host, _, _ := strings.Cut(hostname, ":")

	school, err := r.Store.FindByDomain(host)
	if err != nil {
		log.Printf("Branding lookup failed for %q: %v", host, err)
		return r.Default()
	}

	if school == nil {
		parent := parentDomain(host)
		if parent == "" {
			return r.Default()
		}
		school, err = r.Store.FindByDomain(parent)
		if err != nil {
			log.Printf("Branding lookup failed for %q: %v", parent, err)
			return r.Default()
		}
		if school == nil {
			return r.Default()
		}
	}

	b := r.Default()
	b.SchoolName = school.SchoolName
	if school.LogoURL != nil {
		if u, ok := ValidateLogoURL(*school.LogoURL); ok {
			b.LogoURL = &u
		}
	}
	if school.PrimaryColor != nil {
		if c, ok := ValidateHexColor(*school.PrimaryColor); ok {
			b.PrimaryColor = &c
		}
	}
	return b
}

// Registrable parts of two-level public suffixes the application is
// deployed under. A tenant registered as school.sch.id must match
// portal.school.sch.id, so the parent of such a host keeps three labels.
var compoundSuffixes = map[string]bool{
	"sch.id":    true,
	"ac.id":     true,
	"co.id":     true,
	"or.id":     true,
	"my.id":     true,
	"ponpes.id": true,
	"co.uk":     true,
	"ac.uk":     true,
	"com.au":    true,
	"com.my":    true,
	"com.sg":    true,
}

// parentDomain strips subdomain labels from a hostname: the last two
// labels, or the last three when the last two form a compound public
// suffix. Returns "" when the host has no parent worth retrying.
func parentDomain(host string) string {
	labels := strings.Split(host, ".")
	if len(labels) < 3 {
		return ""
	}

	keep := 2
	if compoundSuffixes[strings.Join(labels[len(labels)-2:], ".")] {
		keep = 3
	}
	parent := strings.Join(labels[len(labels)-keep:], ".")
	if parent == host {
		return ""
	}
	return parent
}
