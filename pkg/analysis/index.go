package analysis

import (
	"github.com/eth-easl/brachistochrone/pkg/common"
)

// firstMatches maps every configuration to its earliest record in dataset
// order. Callers filter the dataset first.
func firstMatches(dataset common.Dataset) map[common.ConfigKey]common.Record {
	index := make(map[common.ConfigKey]common.Record)

	for _, record := range dataset {
		if _, ok := index[record.Key()]; !ok {
			index[record.Key()] = record
		}
	}

	return index
}
