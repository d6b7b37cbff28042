package fetch

import (
	"net/url"
	"strings"
)

// Platform is a known applicant-tracking system that hosts job postings.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformAshby      Platform = "ashby"
	PlatformUnknown    Platform = "unknown"
)

type platformProfile struct {
	hosts    []string
	content  []string
	noise    []string
	rendered bool // posting body is filled in by client-side script
}

var platformProfiles = map[Platform]platformProfile{
	PlatformGreenhouse: {
		hosts:   []string{"greenhouse.io"},
		content: []string{".job__description.body", ".job__description", ".job-description__content", "#content", ".job-post-container"},
		noise:   []string{".application--wrapper", ".voluntary-self-id", ".voluntary-self-id-wrapper", "#usa_self_id_section", ".post-apply"},
	},
	PlatformLever: {
		hosts:   []string{"lever.co"},
		content: []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"},
		noise:   []string{".apply-section", ".lever-application-form", ".posting-apply"},
	},
	PlatformWorkday: {
		hosts:    []string{"workday.com", "myworkdayjobs.com"},
		content:  []string{"[data-automation-id='jobDescription']", ".job-description"},
		noise:    []string{"[data-automation-id='applyButton']", ".application-section"},
		rendered: true,
	},
	PlatformAshby: {
		hosts:    []string{"ashbyhq.com"},
		content:  []string{"._descriptionText", "[class*='descriptionText']", "main"},
		noise:    []string{"[class*='applicationForm']"},
		rendered: true,
	},
}

// commonNoiseSelectors strip application forms, EEO boilerplate and share widgets.
var commonNoiseSelectors = []string{
	"form",
	"#application-form",
	".application-form",
	".apply-button-container",
	"[data-testid='application-form']",
	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	".legal-disclosure",
	".self-identification",
	".social-share",
	".share-buttons",
	".cookie-consent",
	".gdpr-notice",
}

// DetectPlatform identifies the job board platform from a URL's host.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Hostname())

	for platform, profile := range platformProfiles {
		for _, suffix := range profile.hosts {
			if host == suffix || strings.HasSuffix(host, "."+suffix) {
				return platform
			}
		}
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors for a platform, falling back
// to JobPostingSelectors for unknown hosts.
func PlatformContentSelectors(platform Platform) []string {
	if profile, ok := platformProfiles[platform]; ok {
		return append(append([]string{}, profile.content...), JobPostingSelectors()...)
	}
	return JobPostingSelectors()
}

// PlatformNoiseSelectors returns the common noise selectors plus any platform-specific ones.
func PlatformNoiseSelectors(platform Platform) []string {
	selectors := append([]string{}, commonNoiseSelectors...)
	if profile, ok := platformProfiles[platform]; ok {
		selectors = append(selectors, profile.noise...)
	}
	return selectors
}

// IsScriptRendered reports whether postings on the platform are usually empty
// without JavaScript.
func IsScriptRendered(platform Platform) bool {
	return platformProfiles[platform].rendered
}
