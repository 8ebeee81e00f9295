package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
)

// contentMarkers identify an existing content directory.
var contentMarkers = []string{"tutorial.yaml", "tutorial.yml"}

// detectContentDir returns the first candidate directory that already holds
// a tutorial document, or "content".
func detectContentDir() string {
	for _, dir := range []string{"content", "src/content", "data"} {
		for _, marker := range contentMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
	}
	return "content"
}

func required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func basePath(s string) error {
	if s != "" && !strings.HasPrefix(s, "/") {
		return errors.New("base path must start with /")
	}
	return nil
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to tutorsite! Let's configure your tutorial website.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:    "Site name",
		Default:  cfg.SiteName,
		Validate: required("site name"),
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}

	// 2. Content directory.
	contentPrompt := promptui.Prompt{
		Label:    "Content directory (tutorial.yaml, program.yaml, ...)",
		Default:  detectContentDir(),
		Validate: required("content directory"),
	}
	contentDir, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:    "Output directory for the generated site",
		Default:  cfg.OutputDir,
		Validate: required("output directory"),
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Base path.
	basePrompt := promptui.Prompt{
		Label:    "Base path when hosted under a sub-path (blank for root)",
		Default:  "",
		Validate: basePath,
	}
	base, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base path: %w", err)
	}

	cfg.SiteName = strings.TrimSpace(name)
	cfg.ContentDir = strings.TrimSpace(contentDir)
	cfg.OutputDir = strings.TrimSpace(outputDir)
	cfg.BasePath = strings.TrimRight(strings.TrimSpace(base), "/")

	if _, err := os.Stat(cfg.ContentDir); os.IsNotExist(err) {
		fmt.Printf("\nNote: %s does not exist yet. Create tutorial.yaml and the other documents there before running tutorsite build.\n", cfg.ContentDir)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
