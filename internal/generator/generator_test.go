package generator

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/johnsonDevMent/trustmebro/internal/model"
)

func testGen() *Generator {
	return New(zerolog.Nop())
}

func baseOpts() Options {
	return Options{
		Claim:      "Eating rice makes you taller",
		Template:   "journal",
		Length:     model.LengthFull,
		Voice:      "global",
		Tone:       "deadpan",
		ChartCount: 2,
	}
}

func TestGenerateLockedSeedIsDeterministic(t *testing.T) {
	opts := baseOpts()
	opts.LockSeed = true

	a := testGen().Generate(context.Background(), opts)
	b := testGen().Generate(context.Background(), opts)

	if a.Title != b.Title {
		t.Errorf("titles differ: %q vs %q", a.Title, b.Title)
	}
	if a.Abstract != b.Abstract {
		t.Errorf("abstracts differ")
	}
	if !reflect.DeepEqual(a.Authors, b.Authors) {
		t.Errorf("authors differ: %v vs %v", a.Authors, b.Authors)
	}
	if !reflect.DeepEqual(a.Charts, b.Charts) {
		t.Errorf("chart data differs")
	}
	if a.Fingerprint != b.Fingerprint {
		t.Errorf("fingerprints differ: %q vs %q", a.Fingerprint, b.Fingerprint)
	}
}

func TestGenerateSectionsByLength(t *testing.T) {
	tests := []struct {
		length         string
		wantIntro      bool
		wantDiscussion bool
		wantRefs       int
	}{
		{model.LengthAbstract, false, false, 4},
		{model.LengthShort, true, false, 6},
		{model.LengthFull, true, true, 8},
	}
	for _, tc := range tests {
		t.Run(tc.length, func(t *testing.T) {
			opts := baseOpts()
			opts.Length = tc.length
			p := testGen().Generate(context.Background(), opts)

			if got := p.Introduction != ""; got != tc.wantIntro {
				t.Errorf("introduction present = %v, want %v", got, tc.wantIntro)
			}
			if got := p.Discussion != ""; got != tc.wantDiscussion {
				t.Errorf("discussion present = %v, want %v", got, tc.wantDiscussion)
			}
			if len(p.References) != tc.wantRefs {
				t.Errorf("got %d references, want %d", len(p.References), tc.wantRefs)
			}
			if p.Abstract == "" || p.Limitations == "" {
				t.Error("abstract and limitations must always be present")
			}
		})
	}
}

func TestGenerateAbstractCarriesDisclaimer(t *testing.T) {
	p := testGen().Generate(context.Background(), baseOpts())
	if !strings.Contains(p.Abstract, "parody") {
		t.Errorf("abstract missing parody disclaimer: %q", p.Abstract)
	}
}

func TestGenerateChartCount(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		opts := baseOpts()
		opts.ChartCount = n
		p := testGen().Generate(context.Background(), opts)
		if len(p.Charts) != n {
			t.Errorf("chart_count %d: got %d charts", n, len(p.Charts))
		}
	}
}

func TestGeneratePieChartsSumNear100(t *testing.T) {
	opts := baseOpts()
	opts.ChartCount = 3
	p := testGen().Generate(context.Background(), opts)
	for _, c := range p.Charts {
		if c.Type != "pie" {
			continue
		}
		var sum float64
		for _, v := range c.Data {
			sum += v
		}
		if sum < 99 || sum > 101 {
			t.Errorf("pie shares sum to %.1f, want ~100", sum)
		}
	}
}

func TestGenerateVoiceSelectsCorpus(t *testing.T) {
	opts := baseOpts()
	opts.Voice = "naija"
	opts.Tone = "comedic"
	p := testGen().Generate(context.Background(), opts)

	if !strings.Contains(p.Limitations, "sha") {
		t.Errorf("naija voice limitations missing addendum: %q", p.Limitations)
	}
	found := false
	for _, inst := range institutionsNaija {
		for _, aff := range p.Affiliations {
			if aff == inst {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("affiliations %v not drawn from naija corpus", p.Affiliations)
	}
}

func TestNormalizePercent(t *testing.T) {
	tests := []struct{ in, want string }{
		{"85 per cent of subjects", "85% of subjects"},
		{"85 percent of subjects", "85% of subjects"},
		{"85 Per Cent", "85%"},
		{"already 85%", "already 85%"},
		{"no numbers percent here", "no numbers percent here"},
	}
	for _, tc := range tests {
		if got := normalizePercent(tc.in); got != tc.want {
			t.Errorf("normalizePercent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAnalyzeTopic(t *testing.T) {
	tests := []struct{ claim, domain string }{
		{"Glucose cures sadness", "biochemistry"},
		{"Gravity is optional on Tuesdays", "physics"},
		{"Eating rice makes you taller", "nutrition"},
		{"People think better upside down", "psychology"},
		{"My phone listens to my dreams", "technology"},
		{"Money grows when ignored", "economics"},
		{"Clouds are government lies", "general"},
	}
	for _, tc := range tests {
		if got := AnalyzeTopic(tc.claim).Domain; got != tc.domain {
			t.Errorf("AnalyzeTopic(%q) = %q, want %q", tc.claim, got, tc.domain)
		}
	}
}

func TestMakeAuthorsFormat(t *testing.T) {
	rng := newRNG("fixed claim", true)
	authors := makeAuthors(rng, firstNamesGlobal, surnamesGlobal, 3)
	if len(authors) != 3 {
		t.Fatalf("got %d authors", len(authors))
	}
	seen := map[string]bool{}
	for _, a := range authors {
		parts := strings.SplitN(a, ", ", 2)
		if len(parts) != 2 || len(parts[1]) != 5 {
			t.Errorf("author %q not in 'Surname, F. M.' format", a)
		}
		if seen[parts[0]] {
			t.Errorf("duplicate surname %q", parts[0])
		}
		seen[parts[0]] = true
	}
}

func TestGenerateUnknownTemplateFallsBack(t *testing.T) {
	opts := baseOpts()
	opts.Template = "zine"

	paper := testGen().Generate(context.Background(), opts)
	if paper.Title == "" {
		t.Fatal("expected a title for an unknown template")
	}

	want := prefixesFor("zine")
	if !reflect.DeepEqual(want, titlePrefixes["journal"]) {
		t.Errorf("prefixesFor(zine) = %v, want journal set", want)
	}
}
