package formats

import (
	"testing"

	"github.com/denisAlshanov/clipgrab/internal/models"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

func str(s string) *string { return &s }
func flag(b bool) *bool    { return &b }

func TestSelectScenarios(t *testing.T) {
	testCases := []struct {
		name         string
		candidates   []models.FormatCandidate
		downloadType models.DownloadType
		wantURL      string
		wantRule     string
		wantLow      bool
	}{
		{
			name: "Audio only prefers audio MIME over muxed",
			candidates: []models.FormatCandidate{
				{URL: "a.mp4", MimeType: str("video/mp4"), HasAudio: flag(true), HasVideo: flag(true)},
				{URL: "a.m4a", MimeType: str("audio/mp4")},
			},
			downloadType: models.DownloadTypeAudioOnly,
			wantURL:      "a.m4a",
			wantRule:     RuleAudioMime,
		},
		{
			name: "Audio only falls back to flags",
			candidates: []models.FormatCandidate{
				{URL: "muxed", HasVideo: flag(true), HasAudio: flag(true)},
				{URL: "audio", HasVideo: flag(false), HasAudio: flag(true)},
			},
			downloadType: models.DownloadTypeAudioOnly,
			wantURL:      "audio",
			wantRule:     RuleAudioFlags,
		},
		{
			name: "Audio MIME wins even when a flagged audio comes first",
			candidates: []models.FormatCandidate{
				{URL: "flagged", HasVideo: flag(false), HasAudio: flag(true)},
				{URL: "typed", MimeType: str("audio/webm")},
			},
			downloadType: models.DownloadTypeAudioOnly,
			wantURL:      "typed",
			wantRule:     RuleAudioMime,
		},
		{
			name: "Audio only without audio falls through to muxed rules",
			candidates: []models.FormatCandidate{
				{URL: "v.webm", MimeType: str("video/webm"), HasAudio: flag(false)},
				{URL: "v.mp4", MimeType: str("video/mp4"), HasAudio: flag(true)},
			},
			downloadType: models.DownloadTypeAudioOnly,
			wantURL:      "v.mp4",
			wantRule:     RuleMuxedMime,
		},
		{
			name: "Single video candidate for video only",
			candidates: []models.FormatCandidate{
				{URL: "v.mp4", MimeType: str("video/mp4")},
			},
			downloadType: models.DownloadTypeVideoOnly,
			wantURL:      "v.mp4",
			wantRule:     RuleVideoOnlyMime,
		},
		{
			name: "Video only skips MIME mentioning audio",
			candidates: []models.FormatCandidate{
				{URL: "muxed", MimeType: str(`video/mp4; codecs="avc1, audio"`)},
				{URL: "flagged", HasVideo: flag(true), HasAudio: flag(false)},
			},
			downloadType: models.DownloadTypeVideoOnly,
			wantURL:      "flagged",
			wantRule:     RuleVideoOnlyFlags,
		},
		{
			name: "Video only final video fallback",
			candidates: []models.FormatCandidate{
				{URL: "audio", MimeType: str("audio/mp4")},
				{URL: "muxed", MimeType: str("video/mp4 audio")},
			},
			downloadType: models.DownloadTypeVideoOnly,
			wantURL:      "muxed",
			wantRule:     RuleVideoOnlyAnyMime,
		},
		{
			name: "Video audio skips explicit audio-less MIME",
			candidates: []models.FormatCandidate{
				{URL: "silent", MimeType: str("video/webm"), HasAudio: flag(false)},
				{URL: "sound", MimeType: str("video/mp4")},
			},
			downloadType: models.DownloadTypeVideoAudio,
			wantURL:      "sound",
			wantRule:     RuleMuxedMime,
		},
		{
			name: "Video audio uses flags without MIME",
			candidates: []models.FormatCandidate{
				{URL: "audio", HasVideo: flag(false), HasAudio: flag(true)},
				{URL: "both", HasVideo: flag(true), HasAudio: flag(true)},
			},
			downloadType: models.DownloadTypeVideoAudio,
			wantURL:      "both",
			wantRule:     RuleMuxedFlags,
		},
		{
			name: "Video audio accepts silent video MIME as last typed option",
			candidates: []models.FormatCandidate{
				{URL: "audio", MimeType: str("audio/mp4")},
				{URL: "silent", MimeType: str("video/webm"), HasAudio: flag(false)},
			},
			downloadType: models.DownloadTypeVideoAudio,
			wantURL:      "silent",
			wantRule:     RuleAnyVideoMime,
		},
		{
			name: "Video audio takes first candidate as last resort",
			candidates: []models.FormatCandidate{
				{URL: "first.m4a", MimeType: str("audio/mp4")},
				{URL: "second.m4a", MimeType: str("audio/webm")},
			},
			downloadType: models.DownloadTypeVideoAudio,
			wantURL:      "first.m4a",
			wantRule:     RuleFirstCandidate,
			wantLow:      true,
		},
		{
			name: "Unclassified candidates degrade to first for any type",
			candidates: []models.FormatCandidate{
				{URL: "one"},
				{URL: "two"},
			},
			downloadType: models.DownloadTypeAudioOnly,
			wantURL:      "one",
			wantRule:     RuleFirstCandidate,
			wantLow:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			selection, err := Select(tc.candidates, tc.downloadType)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if selection.Candidate.URL != tc.wantURL {
				t.Errorf("Expected %s, got %s", tc.wantURL, selection.Candidate.URL)
			}
			if selection.Rule != tc.wantRule {
				t.Errorf("Expected rule %s, got %s", tc.wantRule, selection.Rule)
			}
			if selection.LowConfidence != tc.wantLow {
				t.Errorf("Expected low confidence %v, got %v", tc.wantLow, selection.LowConfidence)
			}
			if &tc.candidates[selection.Index] != selection.Candidate {
				t.Error("Expected Index to point at the selected candidate")
			}
		})
	}
}

func TestSelectFailures(t *testing.T) {
	testCases := []struct {
		name       string
		candidates []models.FormatCandidate
	}{
		{name: "Empty list", candidates: nil},
		{
			name: "Chosen candidate has no URL",
			candidates: []models.FormatCandidate{
				{MimeType: str("video/mp4"), HasAudio: flag(true)},
				{URL: "later.mp4", MimeType: str("video/mp4"), HasAudio: flag(true)},
			},
		},
		{
			name:       "Fallback candidate has blank URL",
			candidates: []models.FormatCandidate{{URL: "  "}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			selection, err := Select(tc.candidates, models.DownloadTypeVideoAudio)
			if selection != nil {
				t.Errorf("Expected no selection, got %+v", selection)
			}
			if !utils.IsCode(err, utils.ErrorCodeNoSuitableFormat) {
				t.Errorf("Expected NO_SUITABLE_FORMAT, got %v", err)
			}
		})
	}
}

func TestSelectIsDeterministic(t *testing.T) {
	candidates := []models.FormatCandidate{
		{URL: "a", MimeType: str("video/webm"), HasAudio: flag(false)},
		{URL: "b", MimeType: str("audio/webm")},
		{URL: "c", HasVideo: flag(true), HasAudio: flag(true)},
		{URL: "d", MimeType: str("video/mp4")},
	}

	for _, downloadType := range []models.DownloadType{
		models.DownloadTypeVideoAudio,
		models.DownloadTypeAudioOnly,
		models.DownloadTypeVideoOnly,
	} {
		first, err := Select(candidates, downloadType)
		if err != nil {
			t.Fatalf("Expected no error for %s, got %v", downloadType, err)
		}
		for i := 0; i < 20; i++ {
			again, err := Select(candidates, downloadType)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if again.Index != first.Index || again.Rule != first.Rule {
				t.Fatalf("Expected stable selection for %s, got %d/%s then %d/%s",
					downloadType, first.Index, first.Rule, again.Index, again.Rule)
			}
		}
	}
}

func TestRulesOrder(t *testing.T) {
	got := Rules(models.DownloadTypeAudioOnly)
	want := []string{RuleAudioMime, RuleAudioFlags, RuleMuxedMime, RuleMuxedFlags, RuleAnyVideoMime, RuleFirstCandidate}
	if len(got) != len(want) {
		t.Fatalf("Expected %d rules, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Rule %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	if n := len(Rules(models.DownloadTypeVideoAudio)); n != 4 {
		t.Errorf("Expected 4 rules for video_audio, got %d", n)
	}
}
