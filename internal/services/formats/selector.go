// Package formats picks one downloadable variant out of a provider's format
// list and names the resulting file.
//
// Provider schemas are not contractually fixed, so every predicate treats
// each candidate field as optional.
package formats

import (
	"strings"

	"github.com/denisAlshanov/clipgrab/internal/models"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

// Rule names, reported with every selection.
const (
	RuleAudioMime        = "audio_mime"
	RuleAudioFlags       = "audio_flags"
	RuleVideoOnlyMime    = "video_only_mime"
	RuleVideoOnlyFlags   = "video_only_flags"
	RuleVideoOnlyAnyMime = "video_only_any_mime"
	RuleMuxedMime        = "muxed_mime"
	RuleMuxedFlags       = "muxed_flags"
	RuleAnyVideoMime     = "any_video_mime"
	RuleFirstCandidate   = "first_candidate"
)

type predicate func(c *models.FormatCandidate) bool

type rule struct {
	name  string
	match predicate
}

// Selection is the outcome of Select.
type Selection struct {
	Candidate *models.FormatCandidate
	Index     int
	Rule      string
	// LowConfidence is set when no candidate carried any classification
	// field or when only the unconditional first-candidate fallback matched.
	LowConfidence bool
}

var (
	audioRules = []rule{
		{name: RuleAudioMime, match: mimePrefix("audio/")},
		{name: RuleAudioFlags, match: flags(false, true)},
	}

	videoOnlyRules = []rule{
		{name: RuleVideoOnlyMime, match: func(c *models.FormatCandidate) bool {
			return mimePrefix("video/")(c) && !strings.Contains(*c.MimeType, "audio")
		}},
		{name: RuleVideoOnlyFlags, match: flags(true, false)},
		{name: RuleVideoOnlyAnyMime, match: mimePrefix("video/")},
	}

	// muxedRules also serve as the fallback when the type-specific rules
	// find nothing.
	muxedRules = []rule{
		{name: RuleMuxedMime, match: func(c *models.FormatCandidate) bool {
			return mimePrefix("video/")(c) && (c.HasAudio == nil || *c.HasAudio)
		}},
		{name: RuleMuxedFlags, match: flags(true, true)},
		{name: RuleAnyVideoMime, match: mimePrefix("video/")},
		{name: RuleFirstCandidate, match: func(*models.FormatCandidate) bool { return true }},
	}
)

// Rules returns the ordered rule names evaluated for a download type.
func Rules(downloadType models.DownloadType) []string {
	chain := ruleChain(downloadType)
	names := make([]string, len(chain))
	for i, r := range chain {
		names[i] = r.name
	}
	return names
}

func ruleChain(downloadType models.DownloadType) []rule {
	var chain []rule
	switch downloadType {
	case models.DownloadTypeAudioOnly:
		chain = append(chain, audioRules...)
	case models.DownloadTypeVideoOnly:
		chain = append(chain, videoOnlyRules...)
	}
	return append(chain, muxedRules...)
}

// Select walks the rule chain for downloadType and returns the first match.
// It fails when the list is empty or the chosen candidate has no URL; it
// never substitutes a different candidate in that case.
func Select(candidates []models.FormatCandidate, downloadType models.DownloadType) (*Selection, error) {
	if len(candidates) == 0 {
		return nil, utils.NewNoSuitableFormatError("no formats available")
	}

	for _, r := range ruleChain(downloadType) {
		for i := range candidates {
			if !r.match(&candidates[i]) {
				continue
			}
			if strings.TrimSpace(candidates[i].URL) == "" {
				return nil, utils.NewNoSuitableFormatError("selected format has no URL")
			}
			return &Selection{
				Candidate:     &candidates[i],
				Index:         i,
				Rule:          r.name,
				LowConfidence: r.name == RuleFirstCandidate || !anyClassified(candidates),
			}, nil
		}
	}

	// Unreachable while the chain ends with RuleFirstCandidate.
	return nil, utils.NewNoSuitableFormatError("no format matched")
}

func mimePrefix(prefix string) predicate {
	return func(c *models.FormatCandidate) bool {
		return c.MimeType != nil && strings.HasPrefix(*c.MimeType, prefix)
	}
}

// flags matches only when both flags are present with the given values.
func flags(hasVideo, hasAudio bool) predicate {
	return func(c *models.FormatCandidate) bool {
		return c.HasVideo != nil && c.HasAudio != nil &&
			*c.HasVideo == hasVideo && *c.HasAudio == hasAudio
	}
}

func anyClassified(candidates []models.FormatCandidate) bool {
	for i := range candidates {
		c := &candidates[i]
		if c.MimeType != nil || c.HasVideo != nil || c.HasAudio != nil {
			return true
		}
	}
	return false
}
