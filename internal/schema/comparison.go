package schema

import (
	"strings"

	"aihub/internal/model"
)

var winners = []model.Winner{model.WinnerA, model.WinnerB, model.WinnerTie}

type rawComparison struct {
	Slug        string  `yaml:"slug"`
	Title       *string `yaml:"title"`
	ModelA      *string `yaml:"modelA"`
	ModelB      *string `yaml:"modelB"`
	Verdict     *string `yaml:"verdict"`
	Winner      *string `yaml:"winner"`
	SEO         rawSEO  `yaml:"seo"`
	PublishedAt string  `yaml:"publishedAt"`
}

// DecodeComparison parses a comparison record. Markdown input with a YAML front
// matter block is accepted; the markdown body is kept verbatim in Body.
func DecodeComparison(data []byte, defaultSlug string) (model.Comparison, error) {
	fm, body := splitFrontMatter(string(data))
	var raw rawComparison
	d, err := decode([]byte(fm), &raw)
	if err != nil {
		return model.Comparison{}, err
	}
	if raw.Slug == "" {
		raw.Slug = defaultSlug
	}

	var p problems
	c := model.Comparison{
		Slug: raw.Slug,
		SEO:  model.SEO(raw.SEO),
		Body: body,
	}
	if !slugPattern.MatchString(c.Slug) {
		p.add("slug", "must match [a-z0-9-]+ (got %q)", c.Slug)
	}
	c.Title = requiredString(&p, "title", raw.Title)
	c.ModelA = requiredString(&p, "modelA", raw.ModelA)
	c.ModelB = requiredString(&p, "modelB", raw.ModelB)
	c.Verdict = requiredString(&p, "verdict", raw.Verdict)
	if raw.ModelA != nil && raw.ModelB != nil && c.ModelA == c.ModelB {
		p.add("modelB", "must differ from modelA (both %q)", c.ModelA)
	}
	if raw.Winner != nil {
		c.Winner, _ = enumValue(&p, "winner", *raw.Winner, winners)
	}
	c.PublishedAt = optionalDate(&p, "publishedAt", raw.PublishedAt)

	if err := d.finish(p.err()); err != nil {
		return model.Comparison{}, err
	}
	return c, nil
}

// splitFrontMatter separates a leading "---" delimited block from the rest.
// Input without front matter is returned whole as the front matter so plain
// YAML files decode the same way.
func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return input, ""
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return input, ""
}
