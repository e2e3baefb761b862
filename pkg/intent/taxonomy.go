package intent

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var defaultTaxonomyYAML []byte

// Taxonomy is the versioned intent catalogue the classifier prompt is built
// from. It ships embedded and can be overridden with INTENT_TAXONOMY_PATH so
// new intent types are added without touching code.
type Taxonomy struct {
	Version  int       `yaml:"version"`
	Groups   []Group   `yaml:"groups"`
	Rules    []string  `yaml:"rules"`
	Examples []Example `yaml:"examples"`
}

type Group struct {
	Name  string `yaml:"name"`
	Types []Type `yaml:"types"`
}

type Type struct {
	Tag         string `yaml:"tag"`
	Description string `yaml:"description"`
}

type Example struct {
	User   string `yaml:"user"`
	Output string `yaml:"output"`
}

func LoadTaxonomy() (*Taxonomy, error) {
	data := defaultTaxonomyYAML

	if path := os.Getenv("INTENT_TAXONOMY_PATH"); path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
		}
		data = fileData
	}

	var taxonomy Taxonomy
	if err := yaml.Unmarshal(data, &taxonomy); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}

	if len(taxonomy.Groups) == 0 {
		return nil, errors.New("taxonomy has no intent groups")
	}
	for _, group := range taxonomy.Groups {
		if len(group.Types) == 0 {
			return nil, fmt.Errorf("taxonomy group %q has no types", group.Name)
		}
	}

	return &taxonomy, nil
}

// HasType reports whether tag is a known intent type.
func (t *Taxonomy) HasType(tag string) bool {
	for _, group := range t.Groups {
		for _, typ := range group.Types {
			if typ.Tag == tag {
				return true
			}
		}
	}
	return false
}

// BuildPrompt renders the classification prompt for one command.
func (t *Taxonomy) BuildPrompt(command, assistantName, userName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %q, a sophisticated virtual assistant created by %s.\n", assistantName, userName)
	b.WriteString("Your task is to understand user intent and return structured JSON.\n\n")
	b.WriteString("CRITICAL: You MUST return ONLY valid JSON. No other text before or after.\n\n")
	b.WriteString("Return JSON in this EXACT structure:\n")
	b.WriteString(`{
  "type": "<intent_type>",
  "userInput": "<exact_user_input>",
  "response": "<friendly_spoken_response>",
  "searchQuery": "<extracted_search_terms_if_applicable>",
  "action": "<specific_action_if_needed>",
  "parameters": {
    "url": "<url_if_applicable>",
    "app": "<app_name_if_applicable>",
    "location": "<location_if_needed>",
    "time": "<time_if_scheduling>"
  }
}` + "\n\n")

	b.WriteString("AVAILABLE TYPES (choose the MOST specific one):\n")
	for _, group := range t.Groups {
		fmt.Fprintf(&b, "\n--- %s TYPES ---\n", group.Name)
		for _, typ := range group.Types {
			fmt.Fprintf(&b, "%q: %s\n", typ.Tag, typ.Description)
		}
	}

	b.WriteString("\nRULES:\n")
	for i, rule := range t.Rules {
		rule = strings.ReplaceAll(rule, "the user by name", fmt.Sprintf("the user as %q", userName))
		fmt.Fprintf(&b, "%d. %s\n", i+1, rule)
	}

	if len(t.Examples) > 0 {
		b.WriteString("\nEXAMPLES:\n")
		for _, example := range t.Examples {
			fmt.Fprintf(&b, "User: %q\nOutput: %s\n", example.User, strings.TrimSpace(example.Output))
		}
	}

	fmt.Fprintf(&b, "\nNow process: %q\n", command)

	return b.String()
}
