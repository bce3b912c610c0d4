// Package config loads extractor configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/rake/pkg/rake"
	"github.com/cognicore/rake/pkg/rake/rank"
)

// File mirrors the extractor configuration schema.
type File struct {
	Language            string   `yaml:"language"`
	Stopwords           []string `yaml:"stopwords"`
	Punctuations        []string `yaml:"punctuations"`
	RankingMetric       string   `yaml:"ranking_metric"`
	MinLength           int      `yaml:"min_length"`
	MaxLength           int      `yaml:"max_length"`
	OmitRepeatedPhrases bool     `yaml:"omit_repeated_phrases"`
}

// Load reads a YAML configuration file and converts it to extractor options.
// Tokenizers are code, not configuration; callers set them on the returned
// options if needed.
func Load(path string) (rake.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return rake.Options{}, fmt.Errorf("load config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return rake.Options{}, fmt.Errorf("parse config: %w", err)
	}

	return f.Options(), nil
}

// Options converts the parsed file to extractor options.
func (f File) Options() rake.Options {
	return rake.Options{
		Stopwords:           f.Stopwords,
		Punctuations:        f.Punctuations,
		Language:            f.Language,
		RankingMetric:       MetricByName(f.RankingMetric),
		MinLength:           f.MinLength,
		MaxLength:           f.MaxLength,
		OmitRepeatedPhrases: f.OmitRepeatedPhrases,
	}
}

// MetricByName maps a configuration name to a ranking metric. Unrecognized
// names fall back to the default degree/frequency ratio, mirroring how
// out-of-range metric values are handled.
func MetricByName(name string) rank.Metric {
	switch name {
	case "word_degree":
		return rank.WordDegree
	case "word_frequency":
		return rank.WordFrequency
	default:
		return rank.DegreeToFrequencyRatio
	}
}
