package categories

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultSeed is the classifieds board's fixture set, used when no seed file
// is configured.
var DefaultSeed = []Category{
	{ID: "electronics", Name: "Electronics", Icon: "devices"},
	{ID: "vehicles", Name: "Vehicles", Icon: "directions_car"},
	{ID: "furniture", Name: "Furniture", Icon: "chair"},
	{ID: "general", Name: "General", Icon: "category"},
}

// LoadSeedFile reads a JSON array of categories from path.
// The file format matches the Category wire shape: [{"id","name","icon"}].
func LoadSeedFile(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category seed file: %w", err)
	}

	var seed []Category
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse category seed file: %w", err)
	}

	return seed, nil
}
