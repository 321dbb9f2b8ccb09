// Package rulesconfig loads the FraudGuard rules document: the scoring
// categories, the response-action table and the reference catalog.
package rulesconfig

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/valueobject"
)

//go:embed default_rules.yaml
var defaultRules []byte

//go:embed rules.schema.json
var rulesSchema string

const schemaURL = "https://fraudguard.schemas.local/rules.schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, strings.NewReader(rulesSchema)); err != nil {
		return nil, fmt.Errorf("rules schema load failed: %w", err)
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("rules schema compile failed: %w", err)
	}
	return schema, nil
})

// Rules is everything loaded from one rules document. All parts are immutable.
type Rules struct {
	RuleSet *model.RuleSet
	Catalog *model.Catalog
	Actions model.ActionTable
}

// DefaultDocument returns a copy of the embedded default rules document.
func DefaultDocument() []byte {
	out := make([]byte, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// Default parses the embedded rules document.
func Default() (*Rules, error) {
	return Parse(defaultRules)
}

// Load reads a YAML or JSON rules document from path. An empty path loads
// the embedded default.
func Load(path string) (*Rules, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	rules, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load rules %s: %w", path, err)
	}
	return rules, nil
}

// Parse validates a YAML or JSON rules document against the schema and
// builds the domain objects. Every failure is a *model.ConfigurationError.
func Parse(data []byte) (*Rules, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &model.ConfigurationError{Reason: fmt.Sprintf("decode rules document: %v", err)}
	}

	categories := make([]*model.Category, 0, len(doc.DetectionRules))
	for _, cd := range doc.DetectionRules {
		defs := make([]model.IndicatorDefinition, 0, len(cd.Indicators))
		for _, ind := range cd.Indicators {
			defs = append(defs, model.IndicatorDefinition{
				Name:      ind.Name,
				Weight:    ind.Weight,
				Critical:  ind.Critical,
				Threshold: ind.Threshold,
			})
		}
		c, err := model.NewCategory(cd.Name, defs)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	ruleSet, err := model.NewRuleSet(categories...)
	if err != nil {
		return nil, err
	}

	actions, err := model.NewActionTable(map[valueobject.RiskTier][]string{
		valueobject.RiskTierHigh:   doc.ResponseActions["high_risk"],
		valueobject.RiskTierMedium: doc.ResponseActions["medium_risk"],
		valueobject.RiskTierLow:    doc.ResponseActions["low_risk"],
	})
	if err != nil {
		return nil, err
	}

	return &Rules{
		RuleSet: ruleSet,
		Actions: actions,
		Catalog: doc.catalog(),
	}, nil
}

// validate checks the document against the embedded JSON Schema. YAML is
// decoded generically and round-tripped through JSON so the validator sees
// JSON-native types.
func validate(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return &model.ConfigurationError{Reason: err.Error()}
	}

	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return &model.ConfigurationError{Reason: fmt.Sprintf("parse rules document: %v", err)}
	}
	if generic == nil {
		return &model.ConfigurationError{Reason: "rules document is empty"}
	}
	encoded, err := json.Marshal(generic)
	if err != nil {
		return &model.ConfigurationError{Reason: fmt.Sprintf("rules document is not JSON-compatible: %v", err)}
	}
	var instance any
	if err := json.Unmarshal(encoded, &instance); err != nil {
		return &model.ConfigurationError{Reason: fmt.Sprintf("rules document is not JSON-compatible: %v", err)}
	}
	if err := schema.Validate(instance); err != nil {
		return &model.ConfigurationError{Reason: fmt.Sprintf("rules document failed schema validation: %v", err)}
	}
	return nil
}

type document struct {
	FraudTypes            map[string]fraudTypeDoc      `yaml:"fraud_types"`
	DetectionTechnologies map[string]technologyDoc     `yaml:"detection_technologies"`
	RegulatoryFramework   map[string]map[string]string `yaml:"regulatory_framework"`
	RiskScoring           map[string]string            `yaml:"risk_scoring"`
	ResponseActions       map[string][]string          `yaml:"response_actions"`
	DetectionRules        orderedRules                 `yaml:"detection_rules"`
}

type fraudTypeDoc struct {
	Description      string   `yaml:"description"`
	Impact           string   `yaml:"impact"`
	DetectionMethods []string `yaml:"detection_methods"`
	RedFlags         []string `yaml:"red_flags"`
}

type technologyDoc struct {
	Capabilities []string `yaml:"capabilities"`
	Applications []string `yaml:"applications"`
}

type indicatorDoc struct {
	Name      string  `yaml:"-"`
	Threshold string  `yaml:"threshold"`
	Weight    float64 `yaml:"weight"`
	Critical  bool    `yaml:"critical"`
}

type categoryDoc struct {
	Name       string
	Indicators []indicatorDoc
}

// orderedRules keeps detection_rules in document order; Go maps would lose it.
type orderedRules []categoryDoc

func (r *orderedRules) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: detection_rules must be a mapping", node.Line)
	}
	rules := make(orderedRules, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, body := node.Content[i], node.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: category %q must be a mapping", body.Line, name.Value)
		}
		cat := categoryDoc{Name: name.Value, Indicators: make([]indicatorDoc, 0, len(body.Content)/2)}
		for j := 0; j+1 < len(body.Content); j += 2 {
			var ind indicatorDoc
			if err := body.Content[j+1].Decode(&ind); err != nil {
				return fmt.Errorf("category %q indicator %q: %w", name.Value, body.Content[j].Value, err)
			}
			ind.Name = body.Content[j].Value
			cat.Indicators = append(cat.Indicators, ind)
		}
		rules = append(rules, cat)
	}
	*r = rules
	return nil
}

func (d document) catalog() *model.Catalog {
	fraudTypes := make([]model.FraudType, 0, len(d.FraudTypes))
	for _, key := range sortedKeys(d.FraudTypes) {
		ft := d.FraudTypes[key]
		fraudTypes = append(fraudTypes, model.FraudType{
			Key:              key,
			Description:      ft.Description,
			Impact:           ft.Impact,
			DetectionMethods: ft.DetectionMethods,
			RedFlags:         ft.RedFlags,
		})
	}

	technologies := make([]model.DetectionTechnology, 0, len(d.DetectionTechnologies))
	for _, key := range sortedKeys(d.DetectionTechnologies) {
		dt := d.DetectionTechnologies[key]
		technologies = append(technologies, model.DetectionTechnology{
			Key:          key,
			Capabilities: dt.Capabilities,
			Applications: dt.Applications,
		})
	}

	areas := make([]model.RegulatoryArea, 0, len(d.RegulatoryFramework))
	for _, key := range sortedKeys(d.RegulatoryFramework) {
		areas = append(areas, model.RegulatoryArea{Key: key, References: d.RegulatoryFramework[key]})
	}

	return model.NewCatalog(fraudTypes, technologies, areas, d.RiskScoring)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
