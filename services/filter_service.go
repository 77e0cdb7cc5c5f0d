package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// FilterService evaluates content and access requests against the current
// policy snapshot. Every method is stateless: it reads one snapshot up
// front and never observes a configuration swap mid-decision.
type FilterService struct {
	Policies *PolicyService
}

func NewFilterService(policies *PolicyService) *FilterService {
	return &FilterService{Policies: policies}
}

// Classification is the result of scanning a text against the blocklist.
type Classification struct {
	Blocked bool
	Terms   []string
}

// Decision is the outcome of an access check: allowed, or blocked with the
// reason produced by the first rule that failed.
type Decision struct {
	Allowed bool
	Reason  string
}

// ClassifyText scans the text for blocked keywords. Keywords match as
// plain substrings here; IsURLAllowed deliberately uses word-boundary
// matching for the same list instead. If the text looks like a URL or a
// bare host, its registrable domain is also checked and reported as an
// extra blocked term.
func (s *FilterService) ClassifyText(text string) Classification {
	cfg := s.Policies.Current()
	lower := strings.ToLower(text)

	seen := make(map[string]bool)
	var terms []string
	for _, kw := range cfg.BlockedKeywords {
		k := strings.ToLower(kw)
		if k == "" || seen[k] {
			continue
		}
		if strings.Contains(lower, k) {
			seen[k] = true
			terms = append(terms, k)
		}
	}

	if domain, ok := extractDomain(lower); ok && !seen[domain] {
		for _, kw := range cfg.BlockedKeywords {
			k := strings.ToLower(kw)
			if k != "" && strings.Contains(domain, k) {
				seen[domain] = true
				terms = append(terms, domain)
				break
			}
		}
	}

	return Classification{Blocked: len(terms) > 0, Terms: terms}
}

// IsTimeAllowed reports whether access is open on the given day at the
// given "HH:MM" time. Unknown days and malformed times are a deny, never an
// error: bad input must not fail open.
func (s *FilterService) IsTimeAllowed(day, clock string) bool {
	cfg := s.Policies.Current()
	window, ok := cfg.Window(day)
	if !ok {
		return false
	}
	t, ok := minutesOfDay(clock)
	if !ok {
		return false
	}
	start, ok := minutesOfDay(window.StartHour)
	if !ok {
		return false
	}
	end, ok := minutesOfDay(window.EndHour)
	if !ok {
		return false
	}
	return window.Allowed && start <= t && t <= end
}

// IsURLAllowed scans the raw URL string: any blocked domain appearing as a
// substring, or any blocked keyword appearing as a whole word, denies it.
func (s *FilterService) IsURLAllowed(rawURL string) bool {
	cfg := s.Policies.Current()
	lower := strings.ToLower(rawURL)

	for _, domain := range cfg.BlockedDomains {
		d := strings.ToLower(domain)
		if d != "" && strings.Contains(lower, d) {
			return false
		}
	}
	for _, kw := range cfg.BlockedKeywords {
		k := strings.ToLower(kw)
		if k == "" {
			continue
		}
		matched, err := regexp.MatchString(`\b`+regexp.QuoteMeta(k)+`\b`, lower)
		if err == nil && matched {
			return false
		}
	}
	return true
}

// DecideAccess combines the checks in order: time window, then category,
// then URL. The first failing rule supplies the reason. Missing day or
// time is a caller error, not a blocked decision.
func (s *FilterService) DecideAccess(category, rawURL, day, clock string) (Decision, error) {
	if day == "" || clock == "" {
		return Decision{}, ErrMissingDayTime
	}

	if !s.IsTimeAllowed(day, clock) {
		return Decision{Reason: "fora do horário permitido"}, nil
	}

	if category != "" {
		cfg := s.Policies.Current()
		for _, blocked := range cfg.BlockedCategories {
			if strings.EqualFold(category, blocked) {
				return Decision{Reason: fmt.Sprintf("categoria '%s' proibida", category)}, nil
			}
		}
	}

	if rawURL != "" && !s.IsURLAllowed(rawURL) {
		return Decision{Reason: fmt.Sprintf("url '%s' proibida", rawURL)}, nil
	}

	return Decision{Allowed: true}, nil
}

// minutesOfDay parses "HH:MM" into minutes since midnight. Anything that
// does not split into two integers at the first colon is rejected.
func minutesOfDay(clock string) (int, bool) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// extractDomain pulls the registrable domain out of a URL-like string.
// Failure to extract reports ok=false; it is not an error, the caller just
// skips the domain rule.
func extractDomain(text string) (string, bool) {
	candidate := strings.TrimSpace(text)
	if candidate == "" || strings.ContainsAny(candidate, " \t\n") {
		return "", false
	}
	if u, err := url.Parse(candidate); err == nil && u.Host != "" {
		candidate = u.Host
	} else {
		// No scheme: treat the whole string as a host candidate.
		candidate = strings.TrimSuffix(strings.SplitN(candidate, "/", 2)[0], ".")
	}
	if host, _, ok := strings.Cut(candidate, ":"); ok {
		candidate = host
	}
	if !strings.Contains(candidate, ".") {
		return "", false
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(candidate)
	if err != nil {
		return "", false
	}
	return domain, true
}
