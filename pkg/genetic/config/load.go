package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/genetic-optimizer/apis/config/v1alpha1"
	"github.com/mihai-snyk/genetic-optimizer/pkg/genetic/framework"
)

// Load decodes a YAML or JSON GeneticAlgorithmArgs document, applies defaults
// and validates the result.
func Load(data []byte) (Config, error) {
	args := &v1alpha1.GeneticAlgorithmArgs{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return Config{}, fmt.Errorf("%w: decoding arguments: %w", framework.ErrConfiguration, err)
	}
	if args.Kind != "" && args.Kind != v1alpha1.Kind {
		return Config{}, fmt.Errorf("%w: want kind %s, got %s", framework.ErrConfiguration, v1alpha1.Kind, args.Kind)
	}
	v1alpha1.SetDefaults_GeneticAlgorithmArgs(args)

	c := FromArgs(args)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile reads and loads the configuration file at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Load(data)
}
