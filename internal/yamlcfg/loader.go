package yamlcfg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/sumgridgo/internal/config"
	"github.com/vk/sumgridgo/internal/ctxlog"
	"github.com/vk/sumgridgo/internal/fsutil"
	sumhcl "github.com/vk/sumgridgo/internal/hcl"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML implementation of the config.Loader interface. YAML
// arguments are literal values only; they are wrapped in static expressions
// so the shared converter can treat both formats uniformly.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the top-level YAML document shape.
type fileRoot struct {
	Runners []*runnerDefinition `yaml:"runners"`
	Steps   []*step             `yaml:"steps"`
}

type runnerDefinition struct {
	Type        string              `yaml:"type"`
	Description string              `yaml:"description"`
	Lifecycle   *lifecycle          `yaml:"lifecycle"`
	Inputs      []*inputDefinition  `yaml:"inputs"`
	Outputs     []*outputDefinition `yaml:"outputs"`
}

type lifecycle struct {
	OnRun string `yaml:"on_run"`
}

type inputDefinition struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Default     any    `yaml:"default"`
}

type outputDefinition struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

type step struct {
	Runner    string         `yaml:"runner"`
	Name      string         `yaml:"name"`
	Arguments map[string]any `yaml:"arguments"`
}

// Load reads all .yaml/.yml files under the given paths and translates them
// into the format-agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	model := config.NewModel()

	files, err := l.findAllYAMLFiles(paths)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}

		var root fileRoot
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, nil, fmt.Errorf("failed to parse YAML file %s: %w", file, err)
		}

		for _, runner := range root.Runners {
			def, err := l.translateRunnerDefinition(runner, file)
			if err != nil {
				return nil, nil, err
			}
			model.Runners[def.Type] = def
		}
		for _, s := range root.Steps {
			translated, err := l.translateStep(s, file)
			if err != nil {
				return nil, nil, err
			}
			model.Grid.Steps = append(model.Grid.Steps, translated)
		}
	}

	logger.Debug("YAML loading complete.", "runners", len(model.Runners), "steps", len(model.Grid.Steps))
	return model, sumhcl.NewConverter(), nil
}

// findAllYAMLFiles resolves the given paths to a flat, de-duplicated list of
// YAML files. Directories are searched recursively; missing paths are
// skipped rather than treated as errors.
func (l *Loader) findAllYAMLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".yaml", ".yml")
			if err != nil {
				return nil, err
			}
			for _, p := range found {
				if _, wasSeen := seen[p]; !wasSeen {
					allFiles = append(allFiles, p)
					seen[p] = struct{}{}
				}
			}
		} else if ext := filepath.Ext(path); ext == ".yaml" || ext == ".yml" {
			if _, wasSeen := seen[path]; !wasSeen {
				allFiles = append(allFiles, path)
				seen[path] = struct{}{}
			}
		}
	}
	return allFiles, nil
}

func (l *Loader) translateRunnerDefinition(r *runnerDefinition, file string) (*config.RunnerDefinition, error) {
	if r.Type == "" {
		return nil, fmt.Errorf("runner definition in %s is missing a type", file)
	}

	def := &config.RunnerDefinition{
		Type:        r.Type,
		Description: r.Description,
		Inputs:      make(map[string]*config.InputDefinition),
		Outputs:     make(map[string]*config.OutputDefinition),
	}
	if r.Lifecycle != nil {
		def.Lifecycle = &config.Lifecycle{OnRun: r.Lifecycle.OnRun}
	}

	for _, in := range r.Inputs {
		if in.Name == "" {
			return nil, fmt.Errorf("in runner '%s' (%s): input is missing a name", r.Type, file)
		}
		parsedType, err := typeNameToCtyType(in.Type)
		if err != nil {
			return nil, fmt.Errorf("in runner '%s', input '%s': %w", r.Type, in.Name, err)
		}

		var defaultVal *cty.Value
		var isOptional bool
		if in.Default != nil {
			val, err := goValueToCty(in.Default)
			if err != nil {
				return nil, fmt.Errorf("invalid default value for input '%s' in runner '%s': %w", in.Name, r.Type, err)
			}
			defaultVal = &val
			isOptional = true
		}

		def.Inputs[in.Name] = &config.InputDefinition{
			Name:        in.Name,
			Type:        parsedType,
			Description: in.Description,
			Default:     defaultVal,
			Optional:    isOptional,
		}
	}

	for _, out := range r.Outputs {
		if out.Name == "" {
			return nil, fmt.Errorf("in runner '%s' (%s): output is missing a name", r.Type, file)
		}
		parsedType, err := typeNameToCtyType(out.Type)
		if err != nil {
			return nil, fmt.Errorf("in runner '%s', output '%s': %w", r.Type, out.Name, err)
		}
		def.Outputs[out.Name] = &config.OutputDefinition{
			Name:        out.Name,
			Type:        parsedType,
			Description: out.Description,
		}
	}

	return def, nil
}

func (l *Loader) translateStep(s *step, file string) (*config.Step, error) {
	if s.Runner == "" || s.Name == "" {
		return nil, fmt.Errorf("step in %s must set both 'runner' and 'name'", file)
	}

	var exprs map[string]hcl.Expression
	if len(s.Arguments) > 0 {
		exprs = make(map[string]hcl.Expression, len(s.Arguments))
		rng := hcl.Range{Filename: file}
		for name, raw := range s.Arguments {
			val, err := goValueToCty(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid argument '%s' for step '%s' in %s: %w", name, s.Name, file, err)
			}
			exprs[name] = hcl.StaticExpr(val, rng)
		}
	}

	return &config.Step{
		RunnerType: s.Runner,
		Name:       s.Name,
		Arguments:  exprs,
	}, nil
}

// typeNameToCtyType maps a YAML type keyword to its cty equivalent. YAML
// manifests support primitive types only; an empty keyword means any.
func typeNameToCtyType(name string) (cty.Type, error) {
	switch name {
	case "", "any":
		return cty.DynamicPseudoType, nil
	case "string":
		return cty.String, nil
	case "number":
		return cty.Number, nil
	case "bool":
		return cty.Bool, nil
	default:
		return cty.DynamicPseudoType, fmt.Errorf("unknown primitive type %q", name)
	}
}

// goValueToCty converts a decoded YAML scalar or collection into a cty value.
func goValueToCty(v any) (cty.Value, error) {
	switch val := v.(type) {
	case bool:
		return cty.BoolVal(val), nil
	case int:
		return cty.NumberIntVal(int64(val)), nil
	case int64:
		return cty.NumberIntVal(val), nil
	case float64:
		return cty.NumberFloatVal(val), nil
	case string:
		return cty.StringVal(val), nil
	case map[string]any:
		if len(val) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(val))
		for k, elem := range val {
			converted, err := goValueToCty(elem)
			if err != nil {
				return cty.NilVal, err
			}
			attrs[k] = converted
		}
		return cty.ObjectVal(attrs), nil
	case []any:
		if len(val) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(val))
		for _, elem := range val {
			converted, err := goValueToCty(elem)
			if err != nil {
				return cty.NilVal, err
			}
			elems = append(elems, converted)
		}
		return cty.TupleVal(elems), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported YAML value of type %T", v)
	}
}
