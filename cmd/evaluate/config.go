package main

import (
	"flag"
	"path/filepath"

	"github.com/Rigediduu/tool-evaluation-kit-demo/internal/pipeline"
	"github.com/Rigediduu/tool-evaluation-kit-demo/pkg/config/env"
)

type cliConfig struct {
	CriteriaPath string
	ScoresPath   string
	OutputDir    string
	JSONPath     string
}

func parseFlags() cliConfig {
	env.LoadDotEnv(".env")

	cfg := cliConfig{}

	flag.StringVar(&cfg.CriteriaPath, "criteria",
		env.GetOrDefault("EVAL_CRITERIA_PATH", "criteria.yaml"),
		"Path to the rubric definition YAML")
	flag.StringVar(&cfg.ScoresPath, "scores",
		env.GetOrDefault("EVAL_SCORES_PATH", "scores.csv"),
		"Path to the raw scores CSV")
	flag.StringVar(&cfg.OutputDir, "output",
		env.GetOrDefault("EVAL_OUTPUT_DIR", "output"),
		"Directory for results.csv and results.md")
	flag.StringVar(&cfg.JSONPath, "json", "",
		"Optional path for a JSON report")

	flag.Parse()
	return cfg
}

func (c cliConfig) pipelineConfig() pipeline.Config {
	return pipeline.Config{
		CriteriaPath: c.CriteriaPath,
		ScoresPath:   c.ScoresPath,
		CSVPath:      filepath.Join(c.OutputDir, "results.csv"),
		MarkdownPath: filepath.Join(c.OutputDir, "results.md"),
	}
}
