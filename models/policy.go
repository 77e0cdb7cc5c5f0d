package models

import "strings"

// ScheduleWindow is a single daily access window. Times are "HH:MM" strings;
// a window with a malformed time never matches, it does not fail.
type ScheduleWindow struct {
	StartHour string `json:"start_hour"`
	EndHour   string `json:"end_hour"`
	Allowed   bool   `json:"allowed"`
}

type Permissions struct {
	AdminOverride   bool `json:"admin_override"`
	TemporaryAccess bool `json:"temporary_access"`
}

type Restrictions struct {
	MaxDailyUsage        string `json:"max_daily_usage"`
	BlockUnapprovedSites bool   `json:"block_unapproved_sites"`
}

// PolicyConfiguration is the full set of parental-control rules. It is
// replaced wholesale by the admin endpoint and read as an immutable snapshot
// by the filter service; nothing mutates a configuration after publication.
type PolicyConfiguration struct {
	BlockedCategories []string                  `json:"blocked_categories"`
	BlockedKeywords   []string                  `json:"blocked_keywords"`
	BlockedDomains    []string                  `json:"blocked_domains"`
	AllowedCategories []string                  `json:"allowed_categories"`
	Schedule          map[string]ScheduleWindow `json:"schedule"`
	Permissions       Permissions               `json:"permissions"`
	Restrictions      Restrictions              `json:"restrictions"`
}

// Window returns the schedule window for a day name, case-insensitive.
// Days absent from the schedule have no window and are fully blocked.
func (c *PolicyConfiguration) Window(day string) (ScheduleWindow, bool) {
	w, ok := c.Schedule[strings.ToLower(day)]
	return w, ok
}

// defaultBlacklist is the built-in Portuguese profanity and adult-site list.
// It is merged into the default configuration's blocked keywords, so an
// admin config replacement overrides it along with everything else.
var defaultBlacklist = []string{
	"sexo", "pornografia", "nudez", "xxx", "putaria",
	"caralho", "porra", "fuder", "buceta", "boquete",
	"transar", "puta", "merda", "corno", "vagabunda",
	"vadia", "prostituta", "vagabundo",
	"xvideos", "pornhub", "redtube", "xnxx", "brazzers",
	"onlyfans", "xhamster", "cam4", "youporn", "bangbros",
	"hentai", "erotico", "camgirls",
}

// DefaultPolicy returns the configuration the service boots with.
func DefaultPolicy() *PolicyConfiguration {
	keywords := append([]string{"sex", "porn", "drugs", "adult"}, defaultBlacklist...)
	return &PolicyConfiguration{
		BlockedCategories: []string{"pornografia", "conteudo_adulto", "drogas"},
		BlockedKeywords:   keywords,
		BlockedDomains:    []string{"exampleporn.com", "drugsales.com"},
		AllowedCategories: []string{"educacao", "entretenimento_infantil", "noticias_gerais"},
		Schedule: map[string]ScheduleWindow{
			"segunda-feira": {StartHour: "07:00", EndHour: "21:00", Allowed: true},
			"sabado":        {StartHour: "09:00", EndHour: "23:00", Allowed: true},
			"domingo":       {StartHour: "09:00", EndHour: "21:00", Allowed: true},
		},
		Permissions:  Permissions{AdminOverride: true, TemporaryAccess: true},
		Restrictions: Restrictions{MaxDailyUsage: "4h", BlockUnapprovedSites: true},
	}
}
