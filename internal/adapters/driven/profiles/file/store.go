// Package file loads tool profiles from per-tool YAML files.
//
// Each supported tool may have a <tool>.yaml file in the profiles
// directory. Files are user-editable; on first load the store writes
// starter profiles for a few tools so users have something to copy.
// A tool without a file is served a synthesised default by the
// registry, never an error.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driven"
	"github.com/promptsmith/promptsmith-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.ProfileStore = (*Store)(nil)

// Store loads tool profiles from a directory of YAML files.
type Store struct {
	profileDir string
	initOnce   sync.Once
	initErr    error
}

// NewStore creates a profile store over the given directory.
// If profileDir is empty, defaults to ~/.promptsmith/profiles.
//
// The constructor does not perform any I/O - directory creation and
// starter files happen lazily on first LoadAll.
func NewStore(profileDir string) (*Store, error) {
	if profileDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		profileDir = filepath.Join(home, ".promptsmith", "profiles")
	}

	return &Store{profileDir: profileDir}, nil
}

// Dir returns the profile directory path.
func (s *Store) Dir() string {
	return s.profileDir
}

// LoadAll parses every recognised profile file in the directory.
// Files whose name is not a supported tool, or that fail to parse, are
// skipped with a warning: a broken profile degrades to the synthesised
// default rather than blocking startup.
func (s *Store) LoadAll() (map[domain.SupportedTool]domain.ToolProfile, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		return nil, s.initErr
	}

	entries, err := os.ReadDir(s.profileDir)
	if err != nil {
		return nil, fmt.Errorf("read profile directory: %w", err)
	}

	profiles := make(map[domain.SupportedTool]domain.ToolProfile)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		tool, err := domain.ParseTool(stem)
		if err != nil {
			logger.Warn("profile %s: not a supported tool, ignoring", entry.Name())
			continue
		}

		profile, err := s.loadFile(filepath.Join(s.profileDir, entry.Name()), tool)
		if err != nil {
			logger.Warn("profile %s: %v (falling back to default)", entry.Name(), err)
			continue
		}
		profiles[tool] = profile
	}

	logger.Debug("loaded %d tool profiles from %s", len(profiles), s.profileDir)
	return profiles, nil
}

// yamlProfile is the on-disk schema. Required: tool_name, format, tone.
type yamlProfile struct {
	ToolName          string            `yaml:"tool_name"`
	Format            string            `yaml:"format"`
	Tone              string            `yaml:"tone"`
	PreferredUseCases []string          `yaml:"preferred_use_cases"`
	FewShotExamples   []yamlExample     `yaml:"few_shot_examples"`
	Strategies        []yamlStrategy    `yaml:"prompting_strategies"`
	StageTemplates    map[string]string `yaml:"stage_templates"`
	Constraints       []string          `yaml:"constraints"`
	OptimizationTips  []string          `yaml:"optimization_tips"`
	CommonPitfalls    []string          `yaml:"common_pitfalls"`
	VectorNamespace   string            `yaml:"vector_namespace"`
}

type yamlExample struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type yamlStrategy struct {
	Type          string   `yaml:"type"`
	Template      string   `yaml:"template"`
	UseCases      []string `yaml:"use_cases"`
	Effectiveness float64  `yaml:"effectiveness"`
}

// loadFile parses one profile file.
func (s *Store) loadFile(path string, tool domain.SupportedTool) (domain.ToolProfile, error) {
	var zero domain.ToolProfile

	data, err := os.ReadFile(path)
	if err != nil {
		return zero, err
	}

	var raw yamlProfile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return zero, fmt.Errorf("parse: %w", err)
	}

	if raw.ToolName == "" || raw.Format == "" || raw.Tone == "" {
		return zero, fmt.Errorf("%w: tool_name, format and tone are required", domain.ErrInvalidInput)
	}

	profile := domain.ToolProfile{
		Tool:              tool,
		DisplayName:       raw.ToolName,
		Tone:              raw.Tone,
		Format:            raw.Format,
		PreferredUseCases: raw.PreferredUseCases,
		Constraints:       raw.Constraints,
		OptimizationTips:  raw.OptimizationTips,
		CommonPitfalls:    raw.CommonPitfalls,
		VectorNamespace:   raw.VectorNamespace,
	}

	for _, ex := range raw.FewShotExamples {
		profile.FewShotExamples = append(profile.FewShotExamples, domain.FewShotExample{
			Input:  ex.Input,
			Output: ex.Output,
		})
	}

	for _, st := range raw.Strategies {
		profile.Strategies = append(profile.Strategies, domain.PromptingStrategy{
			Type:          st.Type,
			Template:      st.Template,
			UseCases:      st.UseCases,
			Effectiveness: st.Effectiveness,
		})
	}

	if len(raw.StageTemplates) > 0 {
		profile.StageTemplates = make(map[domain.Stage]string, len(raw.StageTemplates))
		for name, tmpl := range raw.StageTemplates {
			stage, err := domain.ParseStage(name)
			if err != nil {
				logger.Warn("profile %s: unknown stage %q in stage_templates", tool, name)
				continue
			}
			profile.StageTemplates[stage] = tmpl
		}
	}

	return profile, nil
}

// initialise creates the profile directory and starter files.
// Called once via sync.Once on first LoadAll.
func (s *Store) initialise() {
	if err := os.MkdirAll(s.profileDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create profile directory: %w", err)
		return
	}

	for tool, content := range starterProfiles {
		path := filepath.Join(s.profileDir, string(tool)+".yaml")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("write starter profile %s: %w", tool, err)
				return
			}
		}
	}
}
