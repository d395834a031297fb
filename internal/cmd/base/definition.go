package base

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ekey-bionyx/pkg/bionyx"
)

// ReadWebhookData reads a webhook definition from a YAML or JSON file. Keys use
// the API's camelCase names.
func ReadWebhookData(path string) (bionyx.WebhookData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return bionyx.WebhookData{}, fmt.Errorf("read %s: %w", path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return bionyx.WebhookData{}, fmt.Errorf("parse %s: %w", path, err)
	}

	// Round-trip through JSON so the enum and field rules of the wire types apply.
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return bionyx.WebhookData{}, fmt.Errorf("convert %s: %w", path, err)
	}

	var data bionyx.WebhookData
	if err := json.Unmarshal(asJSON, &data); err != nil {
		return bionyx.WebhookData{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return data, nil
}
