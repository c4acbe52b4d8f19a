package main

import (
	"fmt"
	"time"

	"github.com/alnah/go-html2md/internal/extract"
	"github.com/alnah/go-html2md/internal/yamlutil"
)

// frontMatterDate is the layout of the converted field.
const frontMatterDate = "2006-01-02"

// frontMatter is the YAML block written before the Markdown.
type frontMatter struct {
	Title       string `yaml:"title,omitempty"`
	Lang        string `yaml:"lang,omitempty"`
	Description string `yaml:"description,omitempty"`
	Source      string `yaml:"source,omitempty"`
	Converted   string `yaml:"converted"`
}

// buildFrontMatter renders page metadata, the job source and the
// conversion date as a "---" delimited YAML block.
func buildFrontMatter(meta extract.Meta, job Job, now time.Time) (string, error) {
	fm := frontMatter{
		Title:       meta.Title,
		Lang:        meta.Lang,
		Description: meta.Description,
		Converted:   now.Format(frontMatterDate),
	}
	if job.Kind != sourceStdin {
		fm.Source = job.Source
	}

	out, err := yamlutil.FrontMatter(fm)
	if err != nil {
		return "", fmt.Errorf("building front matter: %w", err)
	}
	return out, nil
}
