package testutils

import (
	"fmt"
	"reflect"

	"github.com/onsi/gomega/types"
	"sigs.k8s.io/yaml"
)

// YAMLEqual succeeds if the actual string and the expected document
// describe the same YAML data, independent of formatting.
func YAMLEqual(expected string) types.GomegaMatcher {
	return &yamlEqualMatcher{expected: expected}
}

type yamlEqualMatcher struct {
	expected string
}

func (m *yamlEqualMatcher) Match(actual interface{}) (bool, error) {
	s, ok := actual.(string)
	if !ok {
		return false, fmt.Errorf("YAMLEqual requires a string, got %T", actual)
	}
	var a, e interface{}
	if err := yaml.Unmarshal([]byte(s), &a); err != nil {
		return false, fmt.Errorf("invalid actual document: %w", err)
	}
	if err := yaml.Unmarshal([]byte(m.expected), &e); err != nil {
		return false, fmt.Errorf("invalid expected document: %w", err)
	}
	return reflect.DeepEqual(a, e), nil
}

func (m *yamlEqualMatcher) FailureMessage(actual interface{}) string {
	return fmt.Sprintf("Expected\n%s\nto equal\n%s", actual, m.expected)
}

func (m *yamlEqualMatcher) NegatedFailureMessage(actual interface{}) string {
	return fmt.Sprintf("Expected\n%s\nnot to equal\n%s", actual, m.expected)
}
