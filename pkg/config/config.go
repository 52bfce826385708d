package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Column roles understood by the pipeline.
const (
	RoleQuestion = "question"
	RoleCorrect  = "correct"
	RoleSubject  = "subject"
	RoleUse      = "use"
	RoleRemark   = "remark"
	RoleResponse = "response"
)

// Config describes where a run reads and writes, and how source columns map to roles.
type Config struct {
	DataDir    string       `yaml:"dataDir"`
	Input      string       `yaml:"input"`
	OutputCSV  string       `yaml:"outputCsv"`
	OutputJSON string       `yaml:"outputJson"`
	Columns    []ColumnRole `yaml:"columns"`
}

// ColumnRole binds a source column to a role. Index orders response columns
// and is ignored for the other roles.
type ColumnRole struct {
	Column string `yaml:"column"`
	Role   string `yaml:"role"`
	Index  int    `yaml:"index"`
}

// Default returns the fixed layout: data/questions.csv in,
// data/questions_clean.csv and data/quiz.json out, roles detected from the header.
func Default() *Config {
	return &Config{
		DataDir:    "data",
		Input:      "questions.csv",
		OutputCSV:  "questions_clean.csv",
		OutputJSON: "quiz.json",
	}
}

// Load reads a YAML config file on top of the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := decode(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

// Validate checks that every path is set and that column roles are well formed.
// Whether the columns exist in the input is checked when the table is loaded.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Input) == "" {
		problems = append(problems, "input is required")
	}
	if strings.TrimSpace(c.OutputCSV) == "" {
		problems = append(problems, "outputCsv is required")
	}
	if strings.TrimSpace(c.OutputJSON) == "" {
		problems = append(problems, "outputJson is required")
	}
	for i, col := range c.Columns {
		prefix := fmt.Sprintf("columns[%d]", i)
		if strings.TrimSpace(col.Column) == "" {
			problems = append(problems, prefix+".column is required")
		}
		if !KnownRole(col.Role) {
			problems = append(problems, fmt.Sprintf("%s.role %q is not one of question|correct|subject|use|remark|response", prefix, col.Role))
		}
		if col.Index < 0 {
			problems = append(problems, prefix+".index must not be negative")
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// KnownRole reports whether role is a supported column role.
func KnownRole(role string) bool {
	switch role {
	case RoleQuestion, RoleCorrect, RoleSubject, RoleUse, RoleRemark, RoleResponse:
		return true
	default:
		return false
	}
}

// InputPath returns the input file path resolved against DataDir.
func (c *Config) InputPath() string { return c.resolve(c.Input) }

// CSVPath returns the flat output path resolved against DataDir.
func (c *Config) CSVPath() string { return c.resolve(c.OutputCSV) }

// JSONPath returns the structured output path resolved against DataDir.
func (c *Config) JSONPath() string { return c.resolve(c.OutputJSON) }

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) || c.DataDir == "" {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
