package generator

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/johnsonDevMent/trustmebro/internal/groq"
	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/pkg/ident"
)

const disclaimer = "This is a parody. All data is fabricated."

// Generator fabricates parody papers. A nil Groq client is fine; the
// template path covers everything the enhanced path does, just less
// convincingly.
type Generator struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Generator {
	return &Generator{log: log}
}

// Options are the validated generation inputs. GroqClient is per-request
// because the API key travels with the caller's session, not the server.
type Options struct {
	Claim      string
	Template   string
	Length     string
	Voice      string
	Tone       string
	ChartCount int
	LockSeed   bool
	GroqClient *groq.Client
}

// newRNG returns the generation RNG. With LockSeed the stream is derived
// from the claim alone, so identical claims reproduce identical papers.
func newRNG(claim string, lockSeed bool) *rand.Rand {
	if lockSeed {
		sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(claim))))
		return rand.New(rand.NewPCG(binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// Generate assembles a complete paper from the options. Groq failures are
// logged and fall back to the templated text; generation never errors on
// the enhancement path.
func (g *Generator) Generate(ctx context.Context, opts Options) *model.Paper {
	rng := newRNG(opts.Claim, opts.LockSeed)
	topic := AnalyzeTopic(opts.Claim)

	firstNames, surnamePool, institutions := corpusFor(opts.Voice)
	authorCount := between(rng, 2, 4)
	authors := makeAuthors(rng, firstNames, surnamePool, authorCount)
	affiliations := sampleN(rng, institutions, min(authorCount, 3))

	sampleSize := between(rng, 500, 5000)
	percent := between(rng, 45, 85)
	pValue := fmt.Sprintf("0.0%d", between(rng, 1, 4))
	duration := pick(rng, studyDurations)
	method := pick(rng, topic.Methods)
	jargon1 := pick(rng, topic.Jargon)
	jargon2 := pick(rng, topic.Jargon)

	p := &model.Paper{
		PaperID:      ident.NewPaperID(),
		Fingerprint:  ident.Fingerprint(opts.Claim, opts.Template, opts.Length, opts.Voice, opts.Tone, opts.ChartCount, opts.LockSeed),
		Claim:        opts.Claim,
		Template:     opts.Template,
		Length:       opts.Length,
		Voice:        opts.Voice,
		Tone:         opts.Tone,
		ChartCount:   opts.ChartCount,
		LockSeed:     opts.LockSeed,
		Authors:      authors,
		Affiliations: affiliations,
		CreatedAt:    time.Now().UTC(),
	}

	p.Title = g.title(ctx, rng, opts)
	p.Abstract = g.abstract(ctx, rng, opts, topic, sampleSize, percent, pValue, duration)

	if opts.Length != model.LengthAbstract {
		p.Introduction = introduction(rng, opts.Claim, topic, jargon1)
		p.Methods = methodsSection(rng, opts.Claim, topic, sampleSize, duration, method)
		p.Results = results(rng, opts.Claim, topic, percent, pValue, jargon2)
		if opts.Length == model.LengthFull {
			p.Discussion = discussion(rng, opts.Claim, topic, jargon1)
		}
	}
	p.Limitations = limitations(opts)
	p.References = references(rng, opts.Length)
	p.Charts = chartData(rng, topic, opts.ChartCount)
	return p
}

func corpusFor(voice string) (firstNames, surnames, institutions []string) {
	if voice == "naija" {
		return firstNamesNaija, surnamesNaija, institutionsNaija
	}
	return firstNamesGlobal, surnamesGlobal, institutionsGlobal
}

// makeAuthors formats "Surname, F. M." entries with distinct surnames.
func makeAuthors(rng *rand.Rand, firstNames, surnamePool []string, n int) []string {
	surnames := sampleN(rng, surnamePool, n)
	authors := make([]string, n)
	for i := range authors {
		first := pick(rng, firstNames)
		middle := pick(rng, firstNames)
		authors[i] = fmt.Sprintf("%s, %c. %c.", surnames[i], first[0], middle[0])
	}
	return authors
}

func sampleN[T any](rng *rand.Rand, items []T, n int) []T {
	idx := rng.Perm(len(items))
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = items[idx[i]]
	}
	return out
}

func (g *Generator) title(ctx context.Context, rng *rand.Rand, opts Options) string {
	fallback := fmt.Sprintf("%s %s", pick(rng, prefixesFor(opts.Template)), titleCase(opts.Claim))
	if opts.GroqClient == nil {
		return fallback
	}
	prompt := fmt.Sprintf(
		"Write a single satirical academic paper title for the claim: %q. "+
			"It must sound like a real %s title. Respond with the title only, no quotes.",
		opts.Claim, opts.Template)
	out, err := opts.GroqClient.Complete(ctx, []groq.Message{
		{Role: "system", Content: "You write parody academic titles. Output one line."},
		{Role: "user", Content: prompt},
	}, 60, 0.9)
	if err != nil {
		g.log.Warn().Err(err).Msg("groq title generation failed, using template")
		return fallback
	}
	out = strings.Trim(strings.TrimSpace(out), `"`)
	if out == "" || strings.Count(out, "\n") > 0 {
		return fallback
	}
	return out
}

func (g *Generator) abstract(ctx context.Context, rng *rand.Rand, opts Options, topic Topic, sampleSize, percent int, pValue, duration string) string {
	fallback := fmt.Sprintf(
		"This study investigates the claim that %s. Over %s, we surveyed %d participants using %s. "+
			"Our analysis of %s revealed that %d%% of subjects exhibited outcomes consistent with the hypothesis "+
			"(p < %s, 95%% CI). These findings, while entirely fabricated, strongly suggest that further funding is warranted. %s",
		lowerFirst(opts.Claim), duration, sampleSize, pick(rng, topic.Methods),
		pick(rng, topic.Jargon), percent, pValue, disclaimer)
	if opts.GroqClient == nil {
		return fallback
	}
	prompt := fmt.Sprintf(
		"Write a satirical academic abstract (120-180 words) for a %s-domain paper claiming: %q. "+
			"Voice: %s. Tone: %s. Invent a sample size near %d, a success rate near %d%%, and p < %s. "+
			"End with the exact sentence: %q",
		topic.Domain, opts.Claim, opts.Voice, opts.Tone, sampleSize, percent, pValue, disclaimer)
	out, err := opts.GroqClient.Complete(ctx, []groq.Message{
		{Role: "system", Content: "You write parody academic abstracts. Plain prose, no headings."},
		{Role: "user", Content: prompt},
	}, 400, 0.8)
	if err != nil {
		g.log.Warn().Err(err).Msg("groq abstract generation failed, using template")
		return fallback
	}
	out = normalizePercent(strings.TrimSpace(out))
	if out == "" {
		return fallback
	}
	if !strings.Contains(out, disclaimer) {
		out += " " + disclaimer
	}
	return out
}

func introduction(rng *rand.Rand, claim string, topic Topic, jargon string) string {
	return fmt.Sprintf(
		"The question of whether %s has long divided group chats and family gatherings alike. "+
			"Prior work in %s has been hampered by an overreliance on verifiable evidence. "+
			"This paper addresses that gap by dispensing with evidence entirely and focusing on %s. "+
			"We hypothesize, with total confidence, that the claim holds (see %s).",
		lowerFirst(claim), topic.Domain, jargon, pick(rng, topic.Formulas))
}

func methodsSection(rng *rand.Rand, claim string, topic Topic, sampleSize int, duration, method string) string {
	return fmt.Sprintf(
		"We recruited %d participants who already agreed that %s, ensuring a clean signal. "+
			"Data was collected over %s via %s and recorded in units of %s. "+
			"No control group was used, as controls tend to disagree with our conclusions. "+
			"All measurements were taken once and never repeated.",
		sampleSize, lowerFirst(claim), duration, method, pick(rng, topic.Units))
}

func results(rng *rand.Rand, claim string, topic Topic, percent int, pValue, jargon string) string {
	return fmt.Sprintf(
		"A striking %d%% of participants confirmed that %s (p < %s). "+
			"Measured %s exceeded expectations in every trial we chose to report. "+
			"Figure references throughout this section correspond to charts whose data was generated by the same process as these sentences. "+
			"Secondary analysis using %s produced whatever result we needed.",
		percent, lowerFirst(claim), pValue, jargon, pick(rng, topic.Methods))
}

func discussion(rng *rand.Rand, claim string, topic Topic, jargon string) string {
	return fmt.Sprintf(
		"Our findings decisively settle the matter: %s. Attempts at replication are discouraged "+
			"as they may produce contradictory data. The observed effect on %s aligns with %s, "+
			"which we did not derive but enjoy citing. Future work should focus on defending these results on social media.",
		lowerFirst(claim), jargon, pick(rng, topic.Formulas))
}

func limitations(opts Options) string {
	base := "Limitations of this study include the complete absence of data, methodology, peer review, and shame. " +
		"All participants, institutions, and findings are fictional."
	switch {
	case opts.Voice == "naija" && opts.Tone == "comedic":
		return base + " Also, who born you to doubt this research? The evidence is because we said so, sha."
	case opts.Template == "thesis":
		return base + " The committee has approved this work without reading it, in keeping with tradition."
	default:
		return base
	}
}

func references(rng *rand.Rand, length string) []string {
	count := 4
	switch length {
	case model.LengthShort:
		count = 6
	case model.LengthFull:
		count = 8
	}
	titles := sampleN(rng, referenceTitles, min(count, len(referenceTitles)))
	refs := make([]string, len(titles))
	for i, t := range titles {
		year := between(rng, 1987, 2024)
		refs[i] = fmt.Sprintf("[%d] Anonymous et al. (%d). %s. %s, %d(%d), %d-%d.",
			i+1, year, t, pick(rng, journals),
			between(rng, 1, 40), between(rng, 1, 12),
			between(rng, 1, 200), between(rng, 201, 400))
	}
	return refs
}

var (
	perCentRe   = regexp.MustCompile(`(?i)(\d+)\s*per\s*cent`)
	percentWdRe = regexp.MustCompile(`(?i)(\d+)\s+percent`)
)

// normalizePercent folds LLM spellings like "85 per cent" into "85%".
func normalizePercent(s string) string {
	s = perCentRe.ReplaceAllString(s, "$1%")
	return percentWdRe.ReplaceAllString(s, "$1%")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func titleCase(s string) string {
	words := strings.Fields(s)
	minor := map[string]bool{"a": true, "an": true, "the": true, "of": true, "in": true, "on": true, "is": true, "to": true, "and": true, "or": true}
	for i, w := range words {
		lw := strings.ToLower(w)
		if i > 0 && minor[lw] {
			words[i] = lw
			continue
		}
		words[i] = strings.ToUpper(lw[:1]) + lw[1:]
	}
	return strings.Join(words, " ")
}
