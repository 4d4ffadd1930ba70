// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	_ "embed"
	"fmt"
)

//go:embed factory.json
var factoryData []byte

// Factory returns the seed catalog restored by a reset, parents before
// children.
func Factory() ([]Category, error) {
	records, shape, err := Decode(factoryData)
	if err != nil {
		return nil, fmt.Errorf("category: factory data: %w", err)
	}
	if shape == ShapeUnknown || len(records) == 0 {
		return nil, fmt.Errorf("category: factory data has no categories")
	}
	return records, nil
}
