package parser

import (
	"reflect"
	"strings"
	"testing"

	"copydesk/internal/domain"
)

func TestParseSEO(t *testing.T) {
	t.Parallel()
	title45 := strings.Repeat("t", 45)
	desc130 := strings.Repeat("d", 130)
	cases := []struct {
		name  string
		input string
		want  domain.SEOContent
	}{
		{
			name:  "markers",
			input: "Title: X\nDescription: Y",
			want:  domain.SEOContent{Title: "X", Description: "Y"},
		},
		{
			name:  "markers_case_insensitive",
			input: "  TITLE: Trail Runner X | Peakline\n\ndescription: Grip every ridge: shop now.",
			want:  domain.SEOContent{Title: "Trail Runner X | Peakline", Description: "Grip every ridge: shop now."},
		},
		{
			name:  "headed_sections",
			input: "# Title\nTrail Runner X\n\n# Description\nGrip every ridge.",
			want:  domain.SEOContent{Title: "Trail Runner X", Description: "Grip every ridge."},
		},
		{
			name:  "length_heuristic",
			input: "Here you go\n" + title45 + "\n" + desc130,
			want:  domain.SEOContent{Title: title45, Description: desc130},
		},
		{
			name:  "heuristic_truncates",
			input: strings.Repeat("a", 90) + "\nshort\nbits",
			want:  domain.SEOContent{Title: strings.Repeat("a", 70), Description: strings.Repeat("a", 90) + " short bits"},
		},
		{
			name:  "title_marker_only",
			input: "Title: Lonely title\n\nsomething else entirely",
			want:  domain.SEOContent{Title: "Title: Lonely title", Description: "something else entirely"},
		},
		{
			name:  "empty",
			input: "  \n\n ",
			want:  domain.SEOContent{},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseSEO(tc.input)
			if got != tc.want {
				t.Fatalf("ParseSEO = %+v, want %+v", got, tc.want)
			}
			if again := ParseSEO(tc.input); again != got {
				t.Fatalf("ParseSEO not idempotent: %+v vs %+v", again, got)
			}
		})
	}
}

func TestParseSEOCountsCharactersNotBytes(t *testing.T) {
	t.Parallel()
	title := strings.Repeat("é", 40)
	desc := strings.Repeat("ü", 200)
	got := ParseSEO(title + "\n" + desc)
	if got.Title != title {
		t.Fatalf("Title = %q, want %q", got.Title, title)
	}
	if got.Description != strings.Repeat("ü", 160) {
		t.Fatalf("Description has %d runes, want 160", len([]rune(got.Description)))
	}
}

func TestParseEmail(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		input string
		want  domain.EmailContent
	}{
		{
			name:  "basic",
			input: "Subject Line: Save Big\nEmail Body: Hello\nMore text",
			want:  domain.EmailContent{Subject: "Save Big", Body: "Hello\nMore text"},
		},
		{
			name:  "body_on_following_lines",
			input: "subject line: Ready: set: go\n\nEMAIL BODY:\n\nHi there,\n\n  - item one\nBye\n",
			want:  domain.EmailContent{Subject: "Ready: set: go", Body: "Hi there,\n\n  - item one\nBye"},
		},
		{
			name:  "no_markers",
			input: "Just some prose about shoes.",
			want:  domain.EmailContent{},
		},
		{
			name:  "subject_only",
			input: "Subject Line: Only this",
			want:  domain.EmailContent{Subject: "Only this"},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseEmail(tc.input)
			if got != tc.want {
				t.Fatalf("ParseEmail = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseSocialHeaders(t *testing.T) {
	t.Parallel()
	raw := "INSTAGRAM:\nLace up and go 🏃 #trail\n\nTWITTER:\nNew shoes, new peaks."
	got := ParseSocial(raw, domain.PlatformConfig{Instagram: true, Twitter: true})
	want := domain.SocialContent{
		domain.PlatformInstagram: "Lace up and go 🏃 #trail",
		domain.PlatformTwitter:   "New shoes, new peaks.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseSocial = %#v, want %#v", got, want)
	}
	for key, text := range got {
		if strings.Contains(text, "INSTAGRAM:") || strings.Contains(text, "TWITTER:") {
			t.Fatalf("%s content leaks a header: %q", key, text)
		}
	}
}

func TestParseSocialSkipsUnrequestedAndMixedCase(t *testing.T) {
	t.Parallel()
	raw := "Instagram: pic post\nFacebook: long post\nLinkedIn: pro post"
	got := ParseSocial(raw, domain.PlatformConfig{Instagram: true, LinkedIn: true})
	want := domain.SocialContent{
		domain.PlatformInstagram: "pic post",
		domain.PlatformLinkedIn:  "pro post",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseSocial = %#v, want %#v", got, want)
	}
}

func TestParseSocialFallback(t *testing.T) {
	t.Parallel()
	three := domain.PlatformConfig{Instagram: true, Facebook: true, Twitter: true}

	single := "One block of copy\nthat spans two lines"
	got := ParseSocial(single, three)
	if len(got) != 3 {
		t.Fatalf("expected 3 platforms, got %d", len(got))
	}
	for key, text := range got {
		if text != single {
			t.Fatalf("%s = %q, want full text", key, text)
		}
	}

	blocks := "first\n\nsecond\nmore\n\n\nthird\n\nfourth"
	got = ParseSocial(blocks, three)
	want := domain.SocialContent{
		domain.PlatformInstagram: "first",
		domain.PlatformFacebook:  "second\nmore",
		domain.PlatformTwitter:   "third",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseSocial = %#v, want %#v", got, want)
	}

	if got := ParseSocial("   ", three); len(got) != 0 {
		t.Fatalf("blank text should yield empty mapping, got %#v", got)
	}
}

func TestParseMissingFieldsJSON(t *testing.T) {
	t.Parallel()
	raw := "```json\n{\"Category\": \"Footwear\", \"features\": [\"Grip\", \" \", \"Light\"], \"price\": 89.5, \"colors\": \"Black, Red\", \"unknown\": \"x\"}\n```"
	got := ParseMissingFields(raw)
	want := domain.FieldValues{
		"category": "Footwear",
		"features": []string{"Grip", "Light"},
		"price":    89.5,
		"colors":   []string{"Black", "Red"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseMissingFields = %#v, want %#v", got, want)
	}
}

func TestParseMissingFieldsColonFallback(t *testing.T) {
	t.Parallel()
	raw := "brand: Peakline\nprice: $49.99\n- materials: Mesh, Rubber\nnot a field line\nsubcategory:\n"
	got := ParseMissingFields(raw)
	want := domain.FieldValues{
		"brand":     "Peakline",
		"price":     49.99,
		"materials": []string{"Mesh", "Rubber"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseMissingFields = %#v, want %#v", got, want)
	}
}

func TestParseMissingFieldsGarbage(t *testing.T) {
	t.Parallel()
	if got := ParseMissingFields("no structure here"); len(got) != 0 {
		t.Fatalf("expected empty mapping, got %#v", got)
	}
	if got := ParseMissingFields(`{"price": -4}`); len(got) != 0 {
		t.Fatalf("negative price must be dropped, got %#v", got)
	}
}
