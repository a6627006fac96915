package analysis

import (
	"testing"

	"github.com/eth-easl/brachistochrone/pkg/common"
	"github.com/stretchr/testify/assert"
)

func TestFindValley(t *testing.T) {
	dataset := common.Dataset{
		baseline(400, 10, 6.0),
		baseline(100, 50, 2.0),
		baseline(100, 10, 1.0),
		faulty(100, 20, 0.5, 1, 0.5),
		baseline(400, 20, 5.0),
		baseline(400, 40, 5.0),
		baseline(100, 10, 3.0),
	}

	assert.Equal(t, []ValleyPoint{
		{MatrixSize: 100, Granularity: 10, Time: 1.0},
		{MatrixSize: 400, Granularity: 20, Time: 5.0},
	}, FindValley(dataset))

	assert.Empty(t, FindValley(common.Dataset{faulty(100, 10, 0.1, 1, 1.0)}))
}
